package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Produccion-api/internal/application/audit"
	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos fabricados.
type ProductUseCase struct {
	repo     repository.ProductRepository
	recorder *audit.Recorder
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, recorder *audit.Recorder) *ProductUseCase {
	return &ProductUseCase{repo: repo, recorder: recorder}
}

// Create crea un producto.
func (uc *ProductUseCase) Create(ctx context.Context, userID *string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.TargetPerHour < 0 {
		return nil, domain.ErrInvalidInput
	}

	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		CategoryID:    in.CategoryID,
		GSM:           in.GSM,
		Size1:         in.Size1,
		Size2:         in.Size2,
		Size3:         in.Size3,
		TargetPerHour: in.TargetPerHour,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, userID, entity.ActionCreate, entity.KindProduct, &product.ID, map[string]any{
		"name": product.Name,
	})
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista todos los productos ordenados por nombre.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update edición parcial de producto.
func (uc *ProductUseCase) Update(ctx context.Context, userID *string, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.CategoryID != nil {
		if *in.CategoryID == "" {
			product.CategoryID = nil
		} else {
			product.CategoryID = in.CategoryID
		}
	}
	if in.GSM != nil {
		product.GSM = in.GSM
	}
	if in.Size1 != nil {
		product.Size1 = *in.Size1
	}
	if in.Size2 != nil {
		product.Size2 = *in.Size2
	}
	if in.Size3 != nil {
		product.Size3 = *in.Size3
	}
	if in.TargetPerHour != nil {
		if *in.TargetPerHour < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.TargetPerHour = *in.TargetPerHour
	}

	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, userID, entity.ActionUpdate, entity.KindProduct, &product.ID, map[string]any{
		"name": product.Name,
	})
	return toProductResponse(product), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(ctx context.Context, userID *string, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.recorder.Record(ctx, userID, entity.ActionDelete, entity.KindProduct, &id, nil)
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		CategoryID:    p.CategoryID,
		GSM:           p.GSM,
		Size1:         p.Size1,
		Size2:         p.Size2,
		Size3:         p.Size3,
		TargetPerHour: p.TargetPerHour,
		CreatedAt:     p.CreatedAt,
	}
}
