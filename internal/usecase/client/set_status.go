package client

import (
	"context"

	"github.com/BruksfildServices01/client-registry/internal/audit"
	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/dto"
	"github.com/BruksfildServices01/client-registry/internal/logging"
)

type SetClientStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetClientStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SetClientStatus {
	return &SetClientStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute usa o token recém-lido: ativar/inativar não exige token do chamador.
// Só há conflito se outra escrita cair entre a leitura e a gravação.
func (uc *SetClientStatus) Execute(
	ctx context.Context,
	id int64,
	active bool,
) (dto.ClientDTO, error) {

	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ClientDTO{}, err
	}

	domain.SetStatus(c, active)

	if err := uc.repo.Update(ctx, c, c.ConcurrencyToken); err != nil {
		return dto.ClientDTO{}, err
	}

	action := "client_disabled"
	if active {
		action = "client_enabled"
	}
	uc.audit.Dispatch(auditEvent(logging.RequestID(ctx), action, *c))

	return ToDTO(*c), nil
}
