package validators

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/client-registry/internal/dto"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newValidator() *ClientValidator {
	return NewClientValidator(func() time.Time { return fixedNow })
}

func datePtr(y int, m time.Month, d int) *dto.Date {
	date := dto.NewDate(y, m, d)
	return &date
}

func messages(t *testing.T, err error) []string {
	t.Helper()
	var ve *ValidationError
	require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)
	return ve.Messages
}

func TestValidateCreate(t *testing.T) {
	t.Parallel()
	v := newValidator()

	t.Run("valid input", func(t *testing.T) {
		err := v.ValidateCreate(dto.CreateClientDTO{
			Name:        "Ana",
			PhoneNumber: "912345678",
			BirthDate:   datePtr(1990, 5, 17),
		})
		require.NoError(t, err)
	})

	t.Run("birth date today is allowed", func(t *testing.T) {
		err := v.ValidateCreate(dto.CreateClientDTO{
			Name:        "Ana",
			PhoneNumber: "1",
			BirthDate:   datePtr(2026, 10, 19),
		})
		require.NoError(t, err)
	})

	t.Run("future birth date", func(t *testing.T) {
		err := v.ValidateCreate(dto.CreateClientDTO{
			Name:        "Ana",
			PhoneNumber: "1",
			BirthDate:   datePtr(2026, 10, 20),
		})
		require.Equal(t, []string{"A data de nascimento não pode ser maior que a data atual."}, messages(t, err))
	})

	t.Run("accumulates every violation", func(t *testing.T) {
		err := v.ValidateCreate(dto.CreateClientDTO{BirthDate: datePtr(2030, 1, 1)})
		require.Equal(t, []string{
			"O campo 'Nome do Cliente' não pode estar vazio.",
			"O campo 'Número do Cliente' não pode estar vazio.",
			"A data de nascimento não pode ser maior que a data atual.",
		}, messages(t, err))
	})

	t.Run("missing birth date", func(t *testing.T) {
		err := v.ValidateCreate(dto.CreateClientDTO{Name: "Ana", PhoneNumber: "1"})
		require.Equal(t, []string{"O campo 'Data de Nascimento' é obrigatório."}, messages(t, err))
	})
}

func TestValidateUpdate(t *testing.T) {
	t.Parallel()
	v := newValidator()

	t.Run("birth date is optional", func(t *testing.T) {
		err := v.ValidateUpdate(dto.UpdateClientDTO{
			Name:             "Ana",
			PhoneNumber:      "1",
			ConcurrencyToken: "AAAAAAAAAAAAAAAAAAAAAA==",
		})
		require.NoError(t, err)
	})

	t.Run("token must be base64", func(t *testing.T) {
		err := v.ValidateUpdate(dto.UpdateClientDTO{
			Name:             "Ana",
			PhoneNumber:      "1",
			ConcurrencyToken: "not base64!",
		})
		require.Equal(t, []string{"O campo 'ConcurrencyToken' não é um base64 válido."}, messages(t, err))
	})

	t.Run("token and future date reported together", func(t *testing.T) {
		err := v.ValidateUpdate(dto.UpdateClientDTO{
			Name:        "Ana",
			PhoneNumber: "1",
			BirthDate:   datePtr(2027, 1, 1),
		})
		require.Equal(t, []string{
			"A data de nascimento não pode ser maior que a data atual.",
			"O campo 'ConcurrencyToken' é obrigatório.",
		}, messages(t, err))
	})
}

func TestValidateList(t *testing.T) {
	t.Parallel()
	v := newValidator()

	require.NoError(t, v.ValidateList(dto.ListClientsQuery{PageNumber: 1, PageSize: 1}))

	err := v.ValidateList(dto.ListClientsQuery{PageNumber: 0, PageSize: 5})
	require.Len(t, messages(t, err), 1)

	err = v.ValidateList(dto.ListClientsQuery{PageNumber: 0, PageSize: -3})
	require.Equal(t, []string{
		"O valor do número da página não pode ser menor que 1. Número informado: 0",
		"O valor do número de registros por página não pode ser menor que 1. Número informado: -3",
	}, messages(t, err))
}

func TestValidateDelete(t *testing.T) {
	t.Parallel()
	v := newValidator()

	require.NoError(t, v.ValidateDelete(dto.DeleteClientDTO{ConcurrencyToken: "AAAAAAAAAAAAAAAAAAAAAA=="}))
	require.Equal(t, []string{"O campo 'ConcurrencyToken' é obrigatório."},
		messages(t, v.ValidateDelete(dto.DeleteClientDTO{})))
}
