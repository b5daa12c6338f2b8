package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Database struct {
		DSN                string `env:"DSN,required"`
		ConnectTimeout     int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		QueryTimeout       int    `env:"QUERY_TIMEOUT" envDefault:"10"`
		TransactionTimeout int    `env:"TRANSACTION_TIMEOUT" envDefault:"20"`
		MaxOpenConns       int    `env:"MAX_OPEN_CONNS" envDefault:"10"`
		MaxIdleConns       int    `env:"MAX_IDLE_CONNS" envDefault:"10"`
		MaxIdleTime        int    `env:"MAX_IDLE_TIME" envDefault:"60"`
	} `envPrefix:"DATABASE_"`
	// Tarifas fijas de la planilla. Solo se cambian por despliegue, nunca
	// desde la API.
	Payroll struct {
		NormalOvertimeRate   float64 `env:"NORMAL_OVERTIME_RATE" envDefault:"23.00"`
		SpecialOvertimeRate  float64 `env:"SPECIAL_OVERTIME_RATE" envDefault:"31.00"`
		DefaultDoubleDayRate float64 `env:"DEFAULT_DOUBLE_DAY_RATE" envDefault:"250.00"`
		DoubleDayHours       int     `env:"DOUBLE_DAY_HOURS" envDefault:"9"`
	} `envPrefix:"PAYROLL_"`
	Email struct {
		SMTP struct {
			Username    string `env:"USERNAME,required"`
			Password    string `env:"PASSWORD,required"`
			Host        string `env:"HOST,required"`
			Port        int    `env:"PORT" envDefault:"465"`
			DialTimeout int    `env:"DIAL_TIMEOUT" envDefault:"10"`
		} `envPrefix:"SMTP_"`
	} `envPrefix:"EMAIL_"`
	RabbitMQ struct {
		DSN            string `env:"DSN,required"`
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
	} `envPrefix:"RABBITMQ_"`
	Redis struct {
		Host              string `env:"HOST" envDefault:"localhost"`
		Port              int    `env:"PORT" envDefault:"6379"`
		Password          string `env:"PASSWORD" envDefault:""`
		ConnectTimeout    int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
		SummaryExpiration int    `env:"SUMMARY_EXPIRATION" envDefault:"300"` // segundos
	} `envPrefix:"REDIS_"`
	Seed struct {
		Records int `env:"RECORDS" envDefault:"30"`
	} `envPrefix:"SEED_"`
}

func LoadConfig() (*Config, error) {
	// En desarrollo las variables viven en un .env; si no existe no pasa nada.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// Solo devolvemos el primer error para que el log quede claro
			return nil, aggErr.Errors[0]
		}
	}

	return cfg, nil
}
