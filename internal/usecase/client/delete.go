package client

import (
	"context"

	"github.com/BruksfildServices01/client-registry/internal/audit"
	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/dto"
	"github.com/BruksfildServices01/client-registry/internal/logging"
	"github.com/BruksfildServices01/client-registry/internal/validators"
)

// DeleteClient faz a remoção lógica; a linha continua acessível por id.
type DeleteClient struct {
	repo      domain.Repository
	validator *validators.ClientValidator
	audit     *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	validator *validators.ClientValidator,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		repo:      repo,
		validator: validator,
		audit:     audit,
	}
}

func (uc *DeleteClient) Execute(
	ctx context.Context,
	id int64,
	in dto.DeleteClientDTO,
) (dto.ClientDTO, error) {

	if err := uc.validator.ValidateDelete(in); err != nil {
		return dto.ClientDTO{}, err
	}

	token, err := domain.ParseConcurrencyToken(in.ConcurrencyToken)
	if err != nil {
		return dto.ClientDTO{}, &validators.ValidationError{
			Messages: []string{"O campo 'ConcurrencyToken' não é um base64 válido."},
		}
	}

	c, err := uc.repo.Delete(ctx, id, token)
	if err != nil {
		return dto.ClientDTO{}, err
	}

	uc.audit.Dispatch(auditEvent(logging.RequestID(ctx), "client_removed", *c))

	return ToDTO(*c), nil
}
