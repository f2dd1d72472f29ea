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

// EmployeeUseCase casos de uso CRUD para empleados de planta.
type EmployeeUseCase struct {
	repo     repository.EmployeeRepository
	recorder *audit.Recorder
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, recorder *audit.Recorder) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, recorder: recorder}
}

// Create crea un empleado. Status ACTIVE por defecto.
func (uc *EmployeeUseCase) Create(ctx context.Context, userID *string, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.Name == "" || in.Role == "" {
		return nil, domain.ErrInvalidInput
	}
	status, err := parseLifecycleStatus(in.Status)
	if err != nil {
		return nil, err
	}

	employee := &entity.Employee{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Role:      in.Role,
		Email:     in.Email,
		Phone:     in.Phone,
		Status:    status,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, userID, entity.ActionCreate, entity.KindEmployee, &employee.ID, map[string]any{
		"name": employee.Name,
		"role": employee.Role,
	})
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}
	return toEmployeeResponse(employee), nil
}

// List lista todos los empleados ordenados por nombre.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return items, nil
}

// Update edición parcial de empleado.
func (uc *EmployeeUseCase) Update(ctx context.Context, userID *string, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, nil
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		employee.Name = *in.Name
	}
	if in.Role != nil {
		if *in.Role == "" {
			return nil, domain.ErrInvalidInput
		}
		employee.Role = *in.Role
	}
	if in.Email != nil {
		employee.Email = *in.Email
	}
	if in.Phone != nil {
		employee.Phone = *in.Phone
	}
	if in.Status != nil {
		status, err := parseLifecycleStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		employee.Status = status
	}

	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, userID, entity.ActionUpdate, entity.KindEmployee, &employee.ID, map[string]any{
		"name": employee.Name,
	})
	return toEmployeeResponse(employee), nil
}

// Delete elimina un empleado por ID.
func (uc *EmployeeUseCase) Delete(ctx context.Context, userID *string, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.recorder.Record(ctx, userID, entity.ActionDelete, entity.KindEmployee, &id, nil)
	return nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:        e.ID,
		Name:      e.Name,
		Role:      e.Role,
		Email:     e.Email,
		Phone:     e.Phone,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}
