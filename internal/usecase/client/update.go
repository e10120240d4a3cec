package client

import (
	"context"

	"github.com/BruksfildServices01/client-registry/internal/audit"
	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/dto"
	"github.com/BruksfildServices01/client-registry/internal/logging"
	"github.com/BruksfildServices01/client-registry/internal/validators"
)

type UpdateClient struct {
	repo      domain.Repository
	validator *validators.ClientValidator
	audit     *audit.Dispatcher
}

func NewUpdateClient(
	repo domain.Repository,
	validator *validators.ClientValidator,
	audit *audit.Dispatcher,
) *UpdateClient {
	return &UpdateClient{
		repo:      repo,
		validator: validator,
		audit:     audit,
	}
}

// Execute grava com o token que o chamador leu por último, não com o token
// atual: uma edição feita sobre dados velhos falha com ErrVersionConflict.
func (uc *UpdateClient) Execute(
	ctx context.Context,
	id int64,
	in dto.UpdateClientDTO,
) (dto.ClientDTO, error) {

	if err := uc.validator.ValidateUpdate(in); err != nil {
		return dto.ClientDTO{}, err
	}

	token, err := domain.ParseConcurrencyToken(in.ConcurrencyToken)
	if err != nil {
		return dto.ClientDTO{}, &validators.ValidationError{
			Messages: []string{"O campo 'ConcurrencyToken' não é um base64 válido."},
		}
	}

	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ClientDTO{}, err
	}

	changes := domain.Changes{
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
	}
	if in.BirthDate != nil {
		changes.BirthDate = &in.BirthDate.Time
	}
	domain.Merge(c, changes)

	if err := uc.repo.Update(ctx, c, token); err != nil {
		return dto.ClientDTO{}, err
	}

	uc.audit.Dispatch(auditEvent(logging.RequestID(ctx), "client_updated", *c))

	return ToDTO(*c), nil
}
