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

// HospitalUseCase casos de uso CRUD para hospitales.
type HospitalUseCase struct {
	repo     repository.HospitalRepository
	recorder *audit.Recorder
}

// NewHospitalUseCase construye el caso de uso.
func NewHospitalUseCase(repo repository.HospitalRepository, recorder *audit.Recorder) *HospitalUseCase {
	return &HospitalUseCase{repo: repo, recorder: recorder}
}

// Create crea un hospital. Status ACTIVE por defecto.
func (uc *HospitalUseCase) Create(ctx context.Context, userID *string, in dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	status, err := parseLifecycleStatus(in.Status)
	if err != nil {
		return nil, err
	}

	hospital := &entity.Hospital{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Location:      in.Location,
		ContactPerson: in.ContactPerson,
		Phone:         in.Phone,
		Email:         in.Email,
		Status:        status,
		CreatedAt:     time.Now(),
	}
	if err := uc.repo.Create(ctx, hospital); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, userID, entity.ActionCreate, entity.KindHospital, &hospital.ID, map[string]any{
		"name": hospital.Name,
	})
	return toHospitalResponse(hospital), nil
}

// GetByID obtiene un hospital por ID.
func (uc *HospitalUseCase) GetByID(ctx context.Context, id string) (*dto.HospitalResponse, error) {
	hospital, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, nil
	}
	return toHospitalResponse(hospital), nil
}

// List lista todos los hospitales ordenados por nombre.
func (uc *HospitalUseCase) List(ctx context.Context) ([]dto.HospitalResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HospitalResponse, 0, len(list))
	for _, h := range list {
		items = append(items, *toHospitalResponse(h))
	}
	return items, nil
}

// Update edición parcial de hospital.
func (uc *HospitalUseCase) Update(ctx context.Context, userID *string, id string, in dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	hospital, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, nil
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		hospital.Name = *in.Name
	}
	if in.Location != nil {
		hospital.Location = *in.Location
	}
	if in.ContactPerson != nil {
		hospital.ContactPerson = *in.ContactPerson
	}
	if in.Phone != nil {
		hospital.Phone = *in.Phone
	}
	if in.Email != nil {
		hospital.Email = *in.Email
	}
	if in.Status != nil {
		status, err := parseLifecycleStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		hospital.Status = status
	}

	if err := uc.repo.Update(ctx, hospital); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, userID, entity.ActionUpdate, entity.KindHospital, &hospital.ID, map[string]any{
		"name": hospital.Name,
	})
	return toHospitalResponse(hospital), nil
}

// Delete elimina un hospital por ID.
func (uc *HospitalUseCase) Delete(ctx context.Context, userID *string, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.recorder.Record(ctx, userID, entity.ActionDelete, entity.KindHospital, &id, nil)
	return nil
}

// parseLifecycleStatus valida el estado de alta/baja; vacío significa ACTIVE.
func parseLifecycleStatus(s string) (entity.LifecycleStatus, error) {
	switch entity.LifecycleStatus(s) {
	case "":
		return entity.StatusActive, nil
	case entity.StatusActive:
		return entity.StatusActive, nil
	case entity.StatusInactive:
		return entity.StatusInactive, nil
	default:
		return "", domain.ErrInvalidInput
	}
}

func toHospitalResponse(h *entity.Hospital) *dto.HospitalResponse {
	if h == nil {
		return nil
	}
	return &dto.HospitalResponse{
		ID:            h.ID,
		Name:          h.Name,
		Location:      h.Location,
		ContactPerson: h.ContactPerson,
		Phone:         h.Phone,
		Email:         h.Email,
		Status:        string(h.Status),
		CreatedAt:     h.CreatedAt,
	}
}
