package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gtpayroll/horas-extras/backend/internal/report"
	"github.com/gtpayroll/horas-extras/backend/internal/utils"
)

// Los endpoints de exportación devuelven el archivo directamente, sin el
// sobre JSON: son descargas.

func (h *Handler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	records, err := h.repository.GetAllShiftRecords()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if len(records) == 0 {
		h.errorResponse(w, r, "No hay datos para exportar")
		return
	}

	filename := utils.ExportFilename("horas_extras", "csv", time.Now())
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := report.WriteCSV(w, records); err != nil {
		h.logInternalServerError(r, err)
	}
}

func (h *Handler) ExportText(w http.ResponseWriter, r *http.Request) {
	records, err := h.repository.GetAllShiftRecords()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if len(records) == 0 {
		h.errorResponse(w, r, "No hay datos para exportar")
		return
	}

	filename := utils.ExportFilename("horas_extras", "txt", time.Now())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := w.Write([]byte(report.Text(records, time.Now()))); err != nil {
		h.logInternalServerError(r, err)
	}
}

func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	records, err := h.repository.GetAllShiftRecords()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if len(records) == 0 {
		h.errorResponse(w, r, "No hay datos para exportar")
		return
	}

	f, err := report.BuildXLSX(records)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	defer f.Close()

	filename := utils.ExportFilename("horas_extras", "xlsx", time.Now())
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := f.Write(w); err != nil {
		h.logInternalServerError(r, err)
	}
}
