package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/gtpayroll/horas-extras/backend/internal/config"
	"github.com/gtpayroll/horas-extras/backend/internal/domain"
)

func main() {
	/**********************************************
	 * Crear el logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * Cargar la configuración
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * Crear el cliente de correo
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("no se pudo crear el cliente de correo", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// Verificar que el cliente conecta antes de ponerse a consumir
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("no se pudo conectar al servidor de correo", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * Conectar a RabbitMQ
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("no se pudo conectar a RabbitMQ", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("no se pudo abrir el canal", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		"report_queue", // nombre de la cola
		true,           // durable
		false,          // no auto-borrar aunque no haya consumidores
		false,          // no exclusiva
		false,          // esperar confirmación del broker
		nil,
	)
	if err != nil {
		logger.Error("no se pudo declarar la cola", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // etiqueta de consumidor asignada por el broker
		false, // sin auto-ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("no se pudo consumir mensajes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("mensaje recibido", slog.String("message", string(msg.Body)))

				reportMessage := domain.ReportMessage{}
				if err := json.Unmarshal(msg.Body, &reportMessage); err != nil {
					logger.Error("no se pudo deserializar el mensaje", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("no se pudo fijar el remitente", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(reportMessage.To); err != nil {
					logger.Error("no se pudo fijar el destinatario", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				switch reportMessage.Type {
				case "overtime_report":
					// Data llega como map genérico; se vuelve a serializar
					// para decodificarlo en el tipo concreto
					raw, err := json.Marshal(reportMessage.Data)
					if err != nil {
						logger.Error("no se pudo reserializar los datos del reporte", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					data := domain.OvertimeReportMailData{}
					if err := json.Unmarshal(raw, &data); err != nil {
						logger.Error("no se pudo decodificar los datos del reporte", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}

					m.Subject("Resumen de Horas Extras - " + data.GeneratedAt)
					m.SetBodyString(mail.TypeTextPlain, data.Body)
				default:
					logger.Error("tipo de mensaje no soportado", slog.String("type", reportMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					logger.Error("falló el envío del correo", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // reencolar el mensaje
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("esperando mensajes... (CTRL+C para salir)")
	<-sigChan

	slog.Info("apagando el worker de correo...")
	cancel()
	wg.Wait()
	slog.Info("worker de correo apagado correctamente")
}
