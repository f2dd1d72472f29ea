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

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, category_id, gsm, COALESCE(size1, ''), COALESCE(size2, ''), COALESCE(size3, ''), COALESCE(target_per_hour, 0), created_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (id, name, category_id, gsm, size1, size2, size3, target_per_hour, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.CategoryID, p.GSM, p.Size1, p.Size2, p.Size3, p.TargetPerHour, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.CategoryID, &p.GSM, &p.Size1, &p.Size2, &p.Size3, &p.TargetPerHour, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListAll lista todos los productos ordenados por nombre.
func (r *ProductRepo) ListAll(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.CategoryID, &p.GSM, &p.Size1, &p.Size2, &p.Size3, &p.TargetPerHour, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET name = $2, category_id = $3, gsm = $4, size1 = $5, size2 = $6, size3 = $7, target_per_hour = $8
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.CategoryID, p.GSM, p.Size1, p.Size2, p.Size3, p.TargetPerHour,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
