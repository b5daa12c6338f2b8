package handler

import (
	"net/http"

	"github.com/gtpayroll/horas-extras/backend/internal/domain"
)

func (h *Handler) GetWorkSchedules(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "Grupos de trabajo obtenidos correctamente", domain.WorkSchedules)
}

func (h *Handler) GetHolidays(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "Días festivos obtenidos correctamente", domain.GuatemalaHolidays.Dates())
}
