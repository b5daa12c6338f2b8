package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	es_translations "github.com/go-playground/validator/v10/translations/es"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/gtpayroll/horas-extras/backend/internal/config"
	"github.com/gtpayroll/horas-extras/backend/internal/repository"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	translator    ut.Translator
	reportChannel *amqp.Channel
	redisClient   *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, reportCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	es := es.New()
	uni := ut.New(es, es)
	trans, _ := uni.GetTranslator("es")
	if err := es_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		translator:    trans,
		reportChannel: reportCh,
		redisClient:   rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/shift-records", func(r chi.Router) {
		r.Post("/", h.CreateShiftRecord)
		r.Get("/", h.GetAllShiftRecords)
		r.Delete("/", h.ClearShiftRecords)
		r.Post("/preview", h.PreviewShiftRecord)
		r.Route("/{id}", func(r chi.Router) {
			r.Use(h.shiftRecord)
			r.Get("/", h.GetShiftRecord)
			r.Patch("/", h.UpdateShiftRecord)
			r.Delete("/", h.DeleteShiftRecord)
		})
	})

	h.Mux.Get("/summary", h.GetOvertimeSummary)

	h.Mux.Route("/export", func(r chi.Router) {
		r.Get("/csv", h.ExportCSV)
		r.Get("/text", h.ExportText)
		r.Get("/xlsx", h.ExportXLSX)
	})

	h.Mux.Post("/reports/send", h.SendOvertimeReport)

	// Datos de configuración estáticos para que el formulario los muestre
	h.Mux.Get("/schedules", h.GetWorkSchedules)
	h.Mux.Get("/holidays", h.GetHolidays)
}
