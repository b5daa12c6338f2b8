package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gtpayroll/horas-extras/backend/internal/report"
)

const summaryCacheKey = "overtime_summary"

func (h *Handler) GetOvertimeSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.ConnectTimeout)*time.Second)
	defer cancel()

	// Primero la caché; si falla por lo que sea, se recalcula sin más
	if cached, err := h.redisClient.Get(ctx, summaryCacheKey).Result(); err == nil {
		var s report.Summary
		if err := json.Unmarshal([]byte(cached), &s); err == nil {
			h.successResponse(w, r, "Resumen obtenido correctamente", s)
			return
		}
	}

	records, err := h.repository.GetAllShiftRecords()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	s := report.Summarize(records)

	if payload, err := json.Marshal(s); err == nil {
		if err := h.redisClient.Set(ctx, summaryCacheKey, payload, time.Duration(h.config.Redis.SummaryExpiration)*time.Second).Err(); err != nil {
			slog.Warn("no se pudo guardar el resumen en caché", "error", err)
		}
	}

	h.successResponse(w, r, "Resumen obtenido correctamente", s)
}

// invalidateSummaryCache borra el resumen cacheado tras cualquier mutación
// de registros. Si redis no está disponible solo se registra la advertencia:
// el resumen expira solo.
func (h *Handler) invalidateSummaryCache(r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.ConnectTimeout)*time.Second)
	defer cancel()

	if err := h.redisClient.Del(ctx, summaryCacheKey).Err(); err != nil {
		slog.Warn("no se pudo invalidar la caché del resumen", "error", err)
	}
}
