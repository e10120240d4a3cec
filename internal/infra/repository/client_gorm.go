package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/client-registry/internal/domain/client"
	"github.com/BruksfildServices01/client-registry/internal/models"
)

type ClientGormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db, now: time.Now}
}

// listable é o filtro único de listagem: removidos e inativos ficam de fora.
// CountActive usa o mesmo escopo, então o total bate com as páginas.
func listable(db *gorm.DB) *gorm.DB {
	return db.Where("is_removed = ? AND is_active = ?", false, true)
}

// --------------------------------------------------
// Leitura
// --------------------------------------------------

func (r *ClientGormRepository) CountActive(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Scopes(listable).
		Count(&total).Error; err != nil {
		return 0, storageError("count clients", err)
	}
	return total, nil
}

func (r *ClientGormRepository) ListPage(
	ctx context.Context,
	pageNumber int,
	pageSize int,
) ([]domain.Client, error) {

	// offset além de MaxInt: página necessariamente vazia
	if pageNumber < 1 || pageSize < 1 || pageNumber-1 > math.MaxInt/pageSize {
		return []domain.Client{}, nil
	}

	var rows []models.Client
	if err := r.db.WithContext(ctx).
		Scopes(listable).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}).
		Offset((pageNumber - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error; err != nil {
		return nil, storageError("list clients", err)
	}

	out := make([]domain.Client, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out, nil
}

func (r *ClientGormRepository) GetByID(
	ctx context.Context,
	id int64,
) (*domain.Client, error) {

	var row models.Client
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: id %d", domain.ErrClientNotFound, id)
		}
		return nil, storageError("get client", err)
	}

	c := toDomain(row)
	return &c, nil
}

// --------------------------------------------------
// Escrita
// --------------------------------------------------

func (r *ClientGormRepository) Insert(
	ctx context.Context,
	c *domain.Client,
) error {

	row := toModel(*c)
	row.ConcurrencyToken = []byte(domain.NewConcurrencyToken())

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return storageError("insert client", err)
	}

	*c = toDomain(row)
	return nil
}

// Update compara e grava numa única instrução; não existe janela entre a
// leitura do token e a escrita.
func (r *ClientGormRepository) Update(
	ctx context.Context,
	c *domain.Client,
	expected domain.ConcurrencyToken,
) error {

	next := domain.NewConcurrencyToken()

	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ? AND concurrency_token = ?", c.ID, []byte(expected)).
		Updates(map[string]any{
			"name":              c.Name,
			"phone_number":      c.PhoneNumber,
			"birth_date":        c.BirthDate,
			"is_active":         c.IsActive,
			"concurrency_token": []byte(next),
		})
	if res.Error != nil {
		return storageError("update client", res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missOrConflict(ctx, c.ID)
	}

	c.ConcurrencyToken = next
	return nil
}

func (r *ClientGormRepository) Delete(
	ctx context.Context,
	id int64,
	expected domain.ConcurrencyToken,
) (*domain.Client, error) {

	next := domain.NewConcurrencyToken()

	var removed domain.Client
	domain.Remove(&removed, r.now())

	res := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ? AND concurrency_token = ? AND is_removed = ?", id, []byte(expected), false).
		Updates(map[string]any{
			"is_removed":        removed.IsRemoved,
			"removed_at":        removed.RemovedAt,
			"concurrency_token": []byte(next),
		})
	if res.Error != nil {
		return nil, storageError("delete client", res.Error)
	}
	if res.RowsAffected == 0 {
		// já removido conta como inexistente; remoção nunca é refeita
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if current.IsRemoved {
			return nil, fmt.Errorf("%w: id %d", domain.ErrClientNotFound, id)
		}
		return nil, fmt.Errorf("%w: id %d", domain.ErrVersionConflict, id)
	}

	return r.GetByID(ctx, id)
}

// missOrConflict explica um UPDATE condicional que não afetou linhas.
func (r *ClientGormRepository) missOrConflict(ctx context.Context, id int64) error {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", id).
		Count(&n).Error; err != nil {
		return storageError("check client", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrClientNotFound, id)
	}
	return fmt.Errorf("%w: id %d", domain.ErrVersionConflict, id)
}

// --------------------------------------------------
// Mapeamento
// --------------------------------------------------

func toDomain(row models.Client) domain.Client {
	return domain.Client{
		ID:               row.ID,
		Name:             row.Name,
		PhoneNumber:      row.PhoneNumber,
		BirthDate:        domain.DateOnly(row.BirthDate),
		IsActive:         row.IsActive,
		ConcurrencyToken: domain.ConcurrencyToken(row.ConcurrencyToken),
		IsRemoved:        row.IsRemoved,
		RemovedAt:        row.RemovedAt,
	}
}

func toModel(c domain.Client) models.Client {
	return models.Client{
		ID:               c.ID,
		Name:             c.Name,
		PhoneNumber:      c.PhoneNumber,
		BirthDate:        c.BirthDate,
		IsActive:         c.IsActive,
		ConcurrencyToken: []byte(c.ConcurrencyToken),
		IsRemoved:        c.IsRemoved,
		RemovedAt:        c.RemovedAt,
	}
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
