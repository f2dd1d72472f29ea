package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.ProductCategory) error {
	query := `
		INSERT INTO product_categories (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Description, c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.ProductCategory, error) {
	query := `SELECT id, name, COALESCE(description, ''), created_at FROM product_categories WHERE id = $1`
	var c entity.ProductCategory
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// ListAll lista todas las categorías ordenadas por nombre.
func (r *CategoryRepo) ListAll(ctx context.Context) ([]*entity.ProductCategory, error) {
	query := `SELECT id, name, COALESCE(description, ''), created_at FROM product_categories ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductCategory
	for rows.Next() {
		var c entity.ProductCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza una categoría existente.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.ProductCategory) error {
	query := `UPDATE product_categories SET name = $2, description = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, c.ID, c.Name, c.Description)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría por ID.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM product_categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
