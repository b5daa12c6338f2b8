package seed

import (
	"log/slog"

	"github.com/gtpayroll/horas-extras/backend/internal/classifier"
	"github.com/gtpayroll/horas-extras/backend/internal/config"
	"github.com/gtpayroll/horas-extras/backend/internal/domain"
	"github.com/gtpayroll/horas-extras/backend/internal/repository"
	"github.com/gtpayroll/horas-extras/backend/internal/utils"
)

// SeedRandomRecords inserta n registros de turnos aleatorios. Cada registro
// pasa por el clasificador real, así que los datos sembrados cumplen los
// mismos invariantes que los capturados por el formulario.
func SeedRandomRecords(r *repository.Repository, cfg *config.Config, n int) int {
	rates := classifier.Rates{
		NormalOvertime:  cfg.Payroll.NormalOvertimeRate,
		SpecialOvertime: cfg.Payroll.SpecialOvertimeRate,
		DoubleDay:       cfg.Payroll.DefaultDoubleDayRate,
		DoubleDayHours:  cfg.Payroll.DoubleDayHours,
	}

	cnt := 0
	for i := 0; i < n; i++ {
		sr := utils.GenerateRandomShiftRecord(domain.GuatemalaHolidays, rates)
		if err := r.CreateShiftRecord(sr); err != nil {
			slog.Error("no se pudo insertar el registro", slog.String("error", err.Error()))
			continue
		}
		cnt++
	}

	return cnt
}
