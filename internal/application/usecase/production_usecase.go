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

const dateLayout = "2006-01-02"

// Destinos de producción aceptados en el alta.
const (
	destinationHospital  = "HOSPITAL"
	destinationWarehouse = "WAREHOUSE"
)

// ProductionUseCase casos de uso CRUD para registros de producción.
// La eficiencia jamás se acepta del cliente: se deriva de las cantidades en
// cada escritura, de modo que la columna persistida nunca queda obsoleta.
type ProductionUseCase struct {
	repo     repository.ProductionEntryRepository
	recorder *audit.Recorder
}

// NewProductionUseCase construye el caso de uso.
func NewProductionUseCase(repo repository.ProductionEntryRepository, recorder *audit.Recorder) *ProductionUseCase {
	return &ProductionUseCase{repo: repo, recorder: recorder}
}

// Create crea un registro de producción. DRAFT por defecto; destino HOSPITAL
// exige hospital_id, destino WAREHOUSE lo deja nulo.
func (uc *ProductionUseCase) Create(ctx context.Context, userID *string, in dto.CreateEntryRequest) (*dto.EntryResponse, error) {
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	shift := entity.Shift(in.Shift)
	if !shift.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if in.PlannedQty < 0 || in.ActualQty < 0 || in.RejectedQty < 0 {
		return nil, domain.ErrInvalidInput
	}

	var hospitalID *string
	switch in.DestinationType {
	case destinationHospital:
		if in.HospitalID == nil || *in.HospitalID == "" {
			return nil, domain.ErrInvalidInput
		}
		hospitalID = in.HospitalID
	case destinationWarehouse, "":
		hospitalID = nil
	default:
		return nil, domain.ErrInvalidInput
	}

	status := entity.EntryStatus(in.Status)
	if in.Status == "" {
		status = entity.StatusDraft
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}

	entry := &entity.ProductionEntry{
		ID:                 uuid.New().String(),
		Date:               date,
		Shift:              shift,
		HospitalID:         hospitalID,
		ProductionCategory: in.ProductionCategory,
		ProductID:          in.ProductID,
		CategoryID:         in.CategoryID,
		EmployeeID:         in.EmployeeID,
		StartTime:          in.StartTime,
		EndTime:            in.EndTime,
		PlannedQty:         in.PlannedQty,
		ActualQty:          in.ActualQty,
		RejectedQty:        in.RejectedQty,
		Efficiency:         entity.ComputeEfficiency(in.PlannedQty, in.ActualQty),
		DisciplineScore:    in.DisciplineScore,
		ChecklistData:      in.ChecklistData,
		Remarks:            in.Remarks,
		AdditionalNotes:    in.AdditionalNotes,
		Status:             status,
		CreatedAt:          time.Now(),
	}
	if err := uc.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, userID, entity.ActionCreate, entity.KindEntry, &entry.ID, map[string]any{
		"date":        in.Date,
		"shift":       in.Shift,
		"planned_qty": in.PlannedQty,
		"actual_qty":  in.ActualQty,
	})
	return toEntryResponse(entry), nil
}

// GetByID obtiene un registro por ID.
func (uc *ProductionUseCase) GetByID(ctx context.Context, id string) (*dto.EntryResponse, error) {
	entry, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}
	return toEntryResponse(entry), nil
}

// Update edición parcial. CreatedAt es inmutable y la eficiencia se recalcula
// siempre con las cantidades resultantes, se hayan tocado o no.
func (uc *ProductionUseCase) Update(ctx context.Context, userID *string, id string, in dto.UpdateEntryRequest) (*dto.EntryResponse, error) {
	entry, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	if in.Date != nil {
		date, err := time.Parse(dateLayout, *in.Date)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		entry.Date = date
	}
	if in.Shift != nil {
		shift := entity.Shift(*in.Shift)
		if !shift.Valid() {
			return nil, domain.ErrInvalidInput
		}
		entry.Shift = shift
	}
	if in.HospitalID != nil {
		if *in.HospitalID == "" {
			entry.HospitalID = nil
		} else {
			entry.HospitalID = in.HospitalID
		}
	}
	if in.ProductionCategory != nil {
		entry.ProductionCategory = *in.ProductionCategory
	}
	if in.ProductID != nil {
		entry.ProductID = in.ProductID
	}
	if in.CategoryID != nil {
		entry.CategoryID = in.CategoryID
	}
	if in.EmployeeID != nil {
		entry.EmployeeID = in.EmployeeID
	}
	if in.StartTime != nil {
		entry.StartTime = in.StartTime
	}
	if in.EndTime != nil {
		entry.EndTime = in.EndTime
	}
	if in.PlannedQty != nil {
		if *in.PlannedQty < 0 {
			return nil, domain.ErrInvalidInput
		}
		entry.PlannedQty = *in.PlannedQty
	}
	if in.ActualQty != nil {
		if *in.ActualQty < 0 {
			return nil, domain.ErrInvalidInput
		}
		entry.ActualQty = *in.ActualQty
	}
	if in.RejectedQty != nil {
		if *in.RejectedQty < 0 {
			return nil, domain.ErrInvalidInput
		}
		entry.RejectedQty = *in.RejectedQty
	}
	if in.DisciplineScore != nil {
		entry.DisciplineScore = *in.DisciplineScore
	}
	if len(in.ChecklistData) > 0 {
		entry.ChecklistData = in.ChecklistData
	}
	if in.Remarks != nil {
		entry.Remarks = *in.Remarks
	}
	if in.AdditionalNotes != nil {
		entry.AdditionalNotes = *in.AdditionalNotes
	}
	if in.Status != nil {
		status := entity.EntryStatus(*in.Status)
		if !status.Valid() {
			return nil, domain.ErrInvalidInput
		}
		entry.Status = status
	}

	entry.Efficiency = entity.ComputeEfficiency(entry.PlannedQty, entry.ActualQty)

	if err := uc.repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	uc.recorder.Record(ctx, userID, entity.ActionUpdate, entity.KindEntry, &entry.ID, map[string]any{
		"planned_qty": entry.PlannedQty,
		"actual_qty":  entry.ActualQty,
		"status":      string(entry.Status),
	})
	return toEntryResponse(entry), nil
}

// List lista registros con filtros opcionales.
func (uc *ProductionUseCase) List(ctx context.Context, in dto.EntryFiltersRequest) (*dto.EntryListResponse, error) {
	views, err := uc.repo.List(ctx, repository.EntryFilters{
		Date:               in.Date,
		Shift:              in.Shift,
		HospitalID:         in.HospitalID,
		ProductionCategory: in.ProductionCategory,
	})
	if err != nil {
		return nil, err
	}
	items := make([]dto.EntryViewResponse, 0, len(views))
	for _, v := range views {
		items = append(items, toEntryViewResponse(v))
	}
	return &dto.EntryListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina un registro por ID.
func (uc *ProductionUseCase) Delete(ctx context.Context, userID *string, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.recorder.Record(ctx, userID, entity.ActionDelete, entity.KindEntry, &id, nil)
	return nil
}

func toEntryResponse(e *entity.ProductionEntry) *dto.EntryResponse {
	if e == nil {
		return nil
	}
	return &dto.EntryResponse{
		ID:                 e.ID,
		Date:               e.Date.Format(dateLayout),
		Shift:              string(e.Shift),
		HospitalID:         e.HospitalID,
		ProductionCategory: e.ProductionCategory,
		ProductID:          e.ProductID,
		CategoryID:         e.CategoryID,
		EmployeeID:         e.EmployeeID,
		StartTime:          e.StartTime,
		EndTime:            e.EndTime,
		PlannedQty:         e.PlannedQty,
		ActualQty:          e.ActualQty,
		RejectedQty:        e.RejectedQty,
		Efficiency:         e.Efficiency,
		DisciplineScore:    e.DisciplineScore,
		ChecklistData:      e.ChecklistData,
		Remarks:            e.Remarks,
		AdditionalNotes:    e.AdditionalNotes,
		Status:             string(e.Status),
		CreatedAt:          e.CreatedAt,
	}
}

func toEntryViewResponse(v repository.ProductionEntryView) dto.EntryViewResponse {
	return dto.EntryViewResponse{
		ID:                 v.ID,
		Date:               v.Date.Format(dateLayout),
		Shift:              v.Shift,
		ProductionCategory: v.ProductionCategory,
		HospitalID:         v.HospitalID,
		HospitalName:       v.HospitalName,
		ProductID:          v.ProductID,
		ProductName:        v.ProductName,
		EmployeeID:         v.EmployeeID,
		EmployeeName:       v.EmployeeName,
		PlannedQty:         v.PlannedQty,
		ActualQty:          v.ActualQty,
		RejectedQty:        v.RejectedQty,
		Efficiency:         v.Efficiency,
		DisciplineScore:    v.DisciplineScore,
		Status:             v.Status,
	}
}
