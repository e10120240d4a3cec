package client

import (
	"context"

	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/dto"
	"github.com/BruksfildServices01/client-registry/internal/validators"
)

type ListClients struct {
	repo      domain.Repository
	validator *validators.ClientValidator
}

func NewListClients(
	repo domain.Repository,
	validator *validators.ClientValidator,
) *ListClients {
	return &ListClients{
		repo:      repo,
		validator: validator,
	}
}

func (uc *ListClients) Execute(
	ctx context.Context,
	q dto.ListClientsQuery,
) (dto.Page[dto.ClientDTO], error) {

	if err := uc.validator.ValidateList(q); err != nil {
		return dto.Page[dto.ClientDTO]{}, err
	}

	clients, err := uc.repo.ListPage(ctx, q.PageNumber, q.PageSize)
	if err != nil {
		return dto.Page[dto.ClientDTO]{}, err
	}

	total, err := uc.repo.CountActive(ctx)
	if err != nil {
		return dto.Page[dto.ClientDTO]{}, err
	}

	items := make([]dto.ClientDTO, 0, len(clients))
	for _, c := range clients {
		items = append(items, ToDTO(c))
	}

	return dto.Page[dto.ClientDTO]{
		Items:        items,
		CurrentPage:  q.PageNumber,
		PageSize:     q.PageSize,
		TotalRecords: total,
	}, nil
}
