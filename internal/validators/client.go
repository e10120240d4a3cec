package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/client-registry/internal/dto"
)

// ValidationError acumula todas as regras violadas, na ordem dos campos.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// ClientValidator valida os DTOs de entrada. Sem I/O: o "hoje" vem de um relógio injetado.
type ClientValidator struct {
	v     *validator.Validate
	today func() time.Time
}

func NewClientValidator(today func() time.Time) *ClientValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(dto.Date); ok {
			return d.Time
		}
		return nil
	}, dto.Date{})

	cv := &ClientValidator{v: v, today: today}
	_ = v.RegisterValidation("notfuture", cv.notFuture)
	return cv
}

func (cv *ClientValidator) notFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	y, m, d := cv.today().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	y, m, d = t.Date()
	return !time.Date(y, m, d, 0, 0, 0, 0, time.UTC).After(today)
}

// ======================================================
// REGRAS
// ======================================================

func (cv *ClientValidator) ValidateCreate(in dto.CreateClientDTO) error {
	return cv.run(in)
}

func (cv *ClientValidator) ValidateUpdate(in dto.UpdateClientDTO) error {
	return cv.run(in)
}

func (cv *ClientValidator) ValidateDelete(in dto.DeleteClientDTO) error {
	return cv.run(in)
}

func (cv *ClientValidator) ValidateList(q dto.ListClientsQuery) error {
	return cv.run(q)
}

func (cv *ClientValidator) run(in any) error {
	err := cv.v.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := &ValidationError{Messages: make([]string, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Messages = append(out.Messages, message(fe))
	}
	return out
}

// ======================================================
// MENSAGENS
// ======================================================

func message(fe validator.FieldError) string {
	switch fe.Field() + "." + fe.Tag() {
	case "Name.required":
		return "O campo 'Nome do Cliente' não pode estar vazio."
	case "PhoneNumber.required":
		return "O campo 'Número do Cliente' não pode estar vazio."
	case "BirthDate.required":
		return "O campo 'Data de Nascimento' é obrigatório."
	case "BirthDate.notfuture":
		return "A data de nascimento não pode ser maior que a data atual."
	case "ConcurrencyToken.required":
		return "O campo 'ConcurrencyToken' é obrigatório."
	case "ConcurrencyToken.base64":
		return "O campo 'ConcurrencyToken' não é um base64 válido."
	case "PageNumber.min":
		return fmt.Sprintf("O valor do número da página não pode ser menor que 1. Número informado: %v", fe.Value())
	case "PageSize.min":
		return fmt.Sprintf("O valor do número de registros por página não pode ser menor que 1. Número informado: %v", fe.Value())
	}
	return fmt.Sprintf("O campo '%s' é inválido (%s).", fe.Field(), fe.Tag())
}
