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

// CategoryUseCase casos de uso CRUD para categorías de producto.
type CategoryUseCase struct {
	repo     repository.CategoryRepository
	recorder *audit.Recorder
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository, recorder *audit.Recorder) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, recorder: recorder}
}

// Create crea una categoría.
func (uc *CategoryUseCase) Create(ctx context.Context, userID *string, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	category := &entity.ProductCategory{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, userID, entity.ActionCreate, entity.KindCategory, &category.ID, map[string]any{
		"name": category.Name,
	})
	return toCategoryResponse(category), nil
}

// GetByID obtiene una categoría por ID.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return toCategoryResponse(category), nil
}

// List lista todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items, nil
}

// Update edición parcial de categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, userID *string, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}

	if err := uc.repo.Update(ctx, category); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, userID, entity.ActionUpdate, entity.KindCategory, &category.ID, map[string]any{
		"name": category.Name,
	})
	return toCategoryResponse(category), nil
}

// Delete elimina una categoría por ID.
func (uc *CategoryUseCase) Delete(ctx context.Context, userID *string, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.recorder.Record(ctx, userID, entity.ActionDelete, entity.KindCategory, &id, nil)
	return nil
}

func toCategoryResponse(c *entity.ProductCategory) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
