package client

import (
	"context"

	"github.com/BruksfildServices01/client-registry/internal/audit"
	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/dto"
	"github.com/BruksfildServices01/client-registry/internal/logging"
	"github.com/BruksfildServices01/client-registry/internal/validators"
)

type CreateClient struct {
	repo      domain.Repository
	validator *validators.ClientValidator
	audit     *audit.Dispatcher
}

func NewCreateClient(
	repo domain.Repository,
	validator *validators.ClientValidator,
	audit *audit.Dispatcher,
) *CreateClient {
	return &CreateClient{
		repo:      repo,
		validator: validator,
		audit:     audit,
	}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	in dto.CreateClientDTO,
) (dto.ClientDTO, error) {

	// --------------------------------------------------
	// 1️⃣ Validação (nada é gravado se falhar)
	// --------------------------------------------------
	if err := uc.validator.ValidateCreate(in); err != nil {
		return dto.ClientDTO{}, err
	}

	// --------------------------------------------------
	// 2️⃣ Persistência: id e token vêm do banco
	// --------------------------------------------------
	c := domain.New(in.Name, in.PhoneNumber, in.BirthDate.Time)
	if err := uc.repo.Insert(ctx, c); err != nil {
		return dto.ClientDTO{}, err
	}

	// --------------------------------------------------
	// 3️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(auditEvent(logging.RequestID(ctx), "client_created", *c))

	return ToDTO(*c), nil
}
