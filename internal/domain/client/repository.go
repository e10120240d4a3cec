package client

import "context"

type Repository interface {
	// -------- Leitura --------

	// CountActive conta as mesmas linhas que ListPage pagina.
	CountActive(ctx context.Context) (int64, error)

	ListPage(
		ctx context.Context,
		pageNumber int,
		pageSize int,
	) ([]Client, error)

	// GetByID não filtra por status: inativos e removidos continuam visíveis.
	GetByID(
		ctx context.Context,
		id int64,
	) (*Client, error)

	// -------- Escrita --------

	Insert(
		ctx context.Context,
		c *Client,
	) error

	// Update só grava se o token persistido ainda for expected.
	Update(
		ctx context.Context,
		c *Client,
		expected ConcurrencyToken,
	) error

	Delete(
		ctx context.Context,
		id int64,
		expected ConcurrencyToken,
	) (*Client, error)
}
