package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/gtpayroll/horas-extras/backend/internal/domain"
	"github.com/gtpayroll/horas-extras/backend/internal/report"
)

func (h *Handler) SendOvertimeReport(w http.ResponseWriter, r *http.Request) {
	var req struct {
		To string `json:"to" validate:"required,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	records, err := h.repository.GetAllShiftRecords()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if len(records) == 0 {
		h.errorResponse(w, r, "No hay datos para exportar")
		return
	}

	now := time.Now()

	// Preparar el mensaje para el worker de correo
	reportMessage := domain.ReportMessage{
		Type: "overtime_report",
		To:   req.To,
		Data: domain.OvertimeReportMailData{
			Body:        report.Text(records, now),
			GeneratedAt: now.Format("2006-01-02 15:04"),
		},
	}

	body, err := json.Marshal(reportMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.reportChannel.PublishWithContext(
		ctx,
		"",
		"report_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "El reporte se enviará por correo electrónico", nil)
}
