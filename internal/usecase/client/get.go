package client

import (
	"context"

	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/dto"
)

type GetClient struct {
	repo domain.Repository
}

func NewGetClient(repo domain.Repository) *GetClient {
	return &GetClient{repo: repo}
}

func (uc *GetClient) Execute(
	ctx context.Context,
	id int64,
) (dto.ClientDTO, error) {

	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ClientDTO{}, err
	}

	return ToDTO(*c), nil
}
