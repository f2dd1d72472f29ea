package repository

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	ListAll(ctx context.Context) ([]*entity.Product, error) // ordenado por nombre
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
}

// CategoryRepository puerto de persistencia para ProductCategory.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.ProductCategory) error
	GetByID(ctx context.Context, id string) (*entity.ProductCategory, error)
	ListAll(ctx context.Context) ([]*entity.ProductCategory, error) // ordenado por nombre
	Update(ctx context.Context, category *entity.ProductCategory) error
	Delete(ctx context.Context, id string) error
}
