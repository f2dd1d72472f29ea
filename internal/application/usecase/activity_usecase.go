package usecase

import (
	"context"

	"github.com/jhoicas/Produccion-api/internal/application/dto"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

const defaultActivityLimit = 20

// ActivityUseCase lectura de la bitácora de actividad.
type ActivityUseCase struct {
	repo repository.ActivityLogRepository
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(repo repository.ActivityLogRepository) *ActivityUseCase {
	return &ActivityUseCase{repo: repo}
}

// GetRecent devuelve la actividad más reciente, más nueva primero.
// Con limit <= 0 se usan 20 filas.
func (uc *ActivityUseCase) GetRecent(ctx context.Context, limit int) (*dto.ActivityListResponse, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	logs, err := uc.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ActivityLogDTO, 0, len(logs))
	for _, l := range logs {
		items = append(items, dto.ActivityLogDTO{
			ID:         l.ID,
			UserID:     l.UserID,
			ActionType: string(l.ActionType),
			EntityType: string(l.EntityType),
			EntityID:   l.EntityID,
			Details:    l.Details,
			CreatedAt:  l.CreatedAt,
		})
	}
	return &dto.ActivityListResponse{Items: items}, nil
}
