package handler

import (
	"net/http"

	"github.com/gtpayroll/horas-extras/backend/internal/classifier"
	"github.com/gtpayroll/horas-extras/backend/internal/domain"
	"github.com/gtpayroll/horas-extras/backend/internal/utils"
)

// shiftRequest es el cuerpo común de crear, actualizar y previsualizar un
// registro. DoubleDayRate es un puntero: nil significa "sin tarifa propia,
// usar la de configuración".
type shiftRequest struct {
	ScheduleID    string   `json:"scheduleID" validate:"required"`
	StartDate     string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	StartTime     string   `json:"startTime" validate:"required,datetime=15:04"`
	EndDate       string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	EndTime       string   `json:"endTime" validate:"required,datetime=15:04"`
	Location      string   `json:"location" validate:"required"`
	Description   string   `json:"description"`
	IsHoliday     bool     `json:"isHoliday"`
	DoubleDay     bool     `json:"doubleDay"`
	DoubleDayRate *float64 `json:"doubleDayRate" validate:"omitempty,gte=0"`
}

// classifyRequest valida las reglas de dominio del turno y lo clasifica.
// Cualquier error devuelto es de validación y se reporta al usuario.
func (h *Handler) classifyRequest(req *shiftRequest) (classifier.Rates, domain.ClassifiedResult, error) {
	if req.EndDate == "" {
		req.EndDate = req.StartDate
	}

	rule, shift, err := utils.ResolveShift(
		req.ScheduleID,
		req.StartDate, req.StartTime,
		req.EndDate, req.EndTime,
		req.IsHoliday, req.DoubleDay,
		domain.GuatemalaHolidays,
	)
	if err != nil {
		return classifier.Rates{}, domain.ClassifiedResult{}, err
	}

	rates := classifier.Rates{
		NormalOvertime:  h.config.Payroll.NormalOvertimeRate,
		SpecialOvertime: h.config.Payroll.SpecialOvertimeRate,
		DoubleDay:       h.config.Payroll.DefaultDoubleDayRate,
		DoubleDayHours:  h.config.Payroll.DoubleDayHours,
	}
	if req.DoubleDayRate != nil {
		rates.DoubleDay = *req.DoubleDayRate
	}

	res := classifier.Classify(shift, *rule, domain.GuatemalaHolidays, rates)
	return rates, res, nil
}

func (h *Handler) CreateShiftRecord(w http.ResponseWriter, r *http.Request) {
	var req shiftRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	rates, res, err := h.classifyRequest(&req)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	sr := &domain.ShiftRecord{
		ScheduleID:    req.ScheduleID,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		Location:      req.Location,
		Description:   req.Description,
		IsHoliday:     req.IsHoliday,
		DoubleDay:     req.DoubleDay,
		DoubleDayRate: rates.DoubleDay,
	}
	sr.ApplyResult(res)

	if err := h.repository.CreateShiftRecord(sr); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateSummaryCache(r)

	h.successResponse(w, r, "Registro guardado correctamente", sr)
}

func (h *Handler) GetAllShiftRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.repository.GetAllShiftRecords()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "Registros obtenidos correctamente", records)
}

func (h *Handler) GetShiftRecord(w http.ResponseWriter, r *http.Request) {
	sr := r.Context().Value(ShiftRecordCtx).(*domain.ShiftRecord)

	h.successResponse(w, r, "Registro obtenido correctamente", sr)
}

func (h *Handler) PreviewShiftRecord(w http.ResponseWriter, r *http.Request) {
	var req shiftRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	_, res, err := h.classifyRequest(&req)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	h.successResponse(w, r, "Cálculo realizado correctamente", res)
}

func (h *Handler) UpdateShiftRecord(w http.ResponseWriter, r *http.Request) {
	sr := r.Context().Value(ShiftRecordCtx).(*domain.ShiftRecord)

	var req shiftRequest

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	rates, res, err := h.classifyRequest(&req)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	sr.ScheduleID = req.ScheduleID
	sr.StartDate = req.StartDate
	sr.EndDate = req.EndDate
	sr.StartTime = req.StartTime
	sr.EndTime = req.EndTime
	sr.Location = req.Location
	sr.Description = req.Description
	sr.IsHoliday = req.IsHoliday
	sr.DoubleDay = req.DoubleDay
	sr.DoubleDayRate = rates.DoubleDay
	sr.ApplyResult(res)

	if err := h.repository.UpdateShiftRecord(sr); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateSummaryCache(r)

	h.successResponse(w, r, "Registro actualizado correctamente", sr)
}

func (h *Handler) DeleteShiftRecord(w http.ResponseWriter, r *http.Request) {
	sr := r.Context().Value(ShiftRecordCtx).(*domain.ShiftRecord)

	if err := h.repository.DeleteShiftRecord(sr.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateSummaryCache(r)

	h.successResponse(w, r, "Registro eliminado correctamente", nil)
}

func (h *Handler) ClearShiftRecords(w http.ResponseWriter, r *http.Request) {
	if err := h.repository.DeleteAllShiftRecords(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.invalidateSummaryCache(r)

	h.successResponse(w, r, "Historial limpiado correctamente", nil)
}
