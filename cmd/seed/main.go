package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/gtpayroll/horas-extras/backend/internal/config"
	"github.com/gtpayroll/horas-extras/backend/internal/repository"
	"github.com/gtpayroll/horas-extras/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int

	flag.IntVar(&op, "op", 0, "operación a ejecutar (1: insertar registros aleatorios, 2: limpiar registros)")
	flag.IntVar(&n, "n", 0, "cantidad de registros a insertar (0 usa el valor de configuración)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Cargar la configuración
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Crear el pool de conexiones
	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("no se pudo crear el pool de conexiones", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open solo crea el pool, no conecta; hay que hacer ping explícito
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("no se pudo conectar a la base de datos", "error", err)
		return
	}

	// Crear el repository
	repo := repository.NewRepository(cfg, dbpool)

	if err := repo.EnsureSchema(); err != nil {
		logger.Error("no se pudo preparar el esquema", "error", err)
		return
	}

	if n <= 0 {
		n = cfg.Seed.Records
	}

	switch op {
	case 0:
		slog.Error("no se indicó ninguna operación")
	case 1:
		cnt := seed.SeedRandomRecords(repo, cfg, n)
		slog.Info("registros insertados", slog.Int("count", cnt))
	case 2:
		if err := repo.DeleteAllShiftRecords(); err != nil {
			slog.Error("no se pudieron borrar los registros", slog.String("error", err.Error()))
			return
		}
		slog.Info("registros borrados")
	default:
		slog.Error("la operación indicada es inválida")
	}
}
