package repository

import (
	"context"
	"time"
)

// EnsureSchema crea la tabla de registros si todavía no existe. Se llama al
// arrancar cada binario que toca la base de datos.
func (r *Repository) EnsureSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		CREATE TABLE IF NOT EXISTS shift_records (
			id bigserial PRIMARY KEY,
			schedule_id text NOT NULL,
			start_date text NOT NULL,
			end_date text NOT NULL,
			start_time text NOT NULL,
			end_time text NOT NULL,
			location text NOT NULL,
			description text NOT NULL DEFAULT '',
			is_holiday boolean NOT NULL DEFAULT false,
			double_day boolean NOT NULL DEFAULT false,
			double_day_rate double precision NOT NULL DEFAULT 0,
			total_hours double precision NOT NULL,
			normal_hours double precision NOT NULL,
			overtime_normal_hours double precision NOT NULL,
			overtime_special_hours double precision NOT NULL,
			double_day_applied boolean NOT NULL DEFAULT false,
			normal_amount double precision NOT NULL,
			special_amount double precision NOT NULL,
			double_day_amount double precision NOT NULL,
			total_amount double precision NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now(),
			version integer NOT NULL DEFAULT 1
		)
	`

	_, err := r.dbpool.ExecContext(ctx, query)
	return err
}
