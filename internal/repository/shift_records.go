package repository

import (
	"context"
	"time"

	"github.com/gtpayroll/horas-extras/backend/internal/domain"
)

func (r *Repository) CreateShiftRecord(sr *domain.ShiftRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO shift_records (
			schedule_id, start_date, end_date, start_time, end_time,
			location, description, is_holiday, double_day, double_day_rate,
			total_hours, normal_hours, overtime_normal_hours, overtime_special_hours,
			double_day_applied, normal_amount, special_amount, double_day_amount, total_amount
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING id, created_at, version
	`

	params := []any{
		sr.ScheduleID, sr.StartDate, sr.EndDate, sr.StartTime, sr.EndTime,
		sr.Location, sr.Description, sr.IsHoliday, sr.DoubleDay, sr.DoubleDayRate,
		sr.TotalHours, sr.NormalHours, sr.OvertimeNormalHours, sr.OvertimeSpecialHours,
		sr.DoubleDayApplied, sr.NormalAmount, sr.SpecialAmount, sr.DoubleDayAmount, sr.TotalAmount,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&sr.ID, &sr.CreatedAt, &sr.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllShiftRecords() ([]*domain.ShiftRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			id, schedule_id, start_date, end_date, start_time, end_time,
			location, description, is_holiday, double_day, double_day_rate,
			total_hours, normal_hours, overtime_normal_hours, overtime_special_hours,
			double_day_applied, normal_amount, special_amount, double_day_amount, total_amount,
			created_at, version
		FROM shift_records
		ORDER BY id
	`

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*domain.ShiftRecord, 0)
	for rows.Next() {
		sr := &domain.ShiftRecord{}
		dst := []any{
			&sr.ID, &sr.ScheduleID, &sr.StartDate, &sr.EndDate, &sr.StartTime, &sr.EndTime,
			&sr.Location, &sr.Description, &sr.IsHoliday, &sr.DoubleDay, &sr.DoubleDayRate,
			&sr.TotalHours, &sr.NormalHours, &sr.OvertimeNormalHours, &sr.OvertimeSpecialHours,
			&sr.DoubleDayApplied, &sr.NormalAmount, &sr.SpecialAmount, &sr.DoubleDayAmount, &sr.TotalAmount,
			&sr.CreatedAt, &sr.Version,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		records = append(records, sr)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *Repository) GetShiftRecordByID(id int64) (*domain.ShiftRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			id, schedule_id, start_date, end_date, start_time, end_time,
			location, description, is_holiday, double_day, double_day_rate,
			total_hours, normal_hours, overtime_normal_hours, overtime_special_hours,
			double_day_applied, normal_amount, special_amount, double_day_amount, total_amount,
			created_at, version
		FROM shift_records
		WHERE id = $1
	`

	sr := &domain.ShiftRecord{}
	dst := []any{
		&sr.ID, &sr.ScheduleID, &sr.StartDate, &sr.EndDate, &sr.StartTime, &sr.EndTime,
		&sr.Location, &sr.Description, &sr.IsHoliday, &sr.DoubleDay, &sr.DoubleDayRate,
		&sr.TotalHours, &sr.NormalHours, &sr.OvertimeNormalHours, &sr.OvertimeSpecialHours,
		&sr.DoubleDayApplied, &sr.NormalAmount, &sr.SpecialAmount, &sr.DoubleDayAmount, &sr.TotalAmount,
		&sr.CreatedAt, &sr.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return sr, nil
}

func (r *Repository) UpdateShiftRecord(sr *domain.ShiftRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE shift_records
		SET
			schedule_id = $1,
			start_date = $2,
			end_date = $3,
			start_time = $4,
			end_time = $5,
			location = $6,
			description = $7,
			is_holiday = $8,
			double_day = $9,
			double_day_rate = $10,
			total_hours = $11,
			normal_hours = $12,
			overtime_normal_hours = $13,
			overtime_special_hours = $14,
			double_day_applied = $15,
			normal_amount = $16,
			special_amount = $17,
			double_day_amount = $18,
			total_amount = $19,
			version = version + 1
		WHERE id = $20 AND version = $21
		RETURNING version
	`

	params := []any{
		sr.ScheduleID, sr.StartDate, sr.EndDate, sr.StartTime, sr.EndTime,
		sr.Location, sr.Description, sr.IsHoliday, sr.DoubleDay, sr.DoubleDayRate,
		sr.TotalHours, sr.NormalHours, sr.OvertimeNormalHours, sr.OvertimeSpecialHours,
		sr.DoubleDayApplied, sr.NormalAmount, sr.SpecialAmount, sr.DoubleDayAmount, sr.TotalAmount,
		sr.ID, sr.Version,
	}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&sr.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteShiftRecord(id int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM shift_records WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteAllShiftRecords() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM shift_records
	`

	_, err := r.dbpool.ExecContext(ctx, query)
	if err != nil {
		return err
	}

	return nil
}
