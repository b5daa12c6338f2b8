package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/gtpayroll/horas-extras/backend/internal/domain"
)

// CSVHeader son las columnas del formato de exportación, en el orden que
// siempre ha usado el reporte.
var CSVHeader = []string{
	"Grupo",
	"Fecha Inicio",
	"Fecha Fin",
	"Hora Inicio",
	"Hora Fin",
	"Horas Totales",
	"Horas Normales",
	"Horas Extras Normales",
	"Horas Extras Especiales",
	"Día Doble",
	"Monto Día Doble",
	"Monto Extras Normales",
	"Monto Extras Especiales",
	"Total",
	"Ubicación",
	"Es Festivo",
	"Descripción",
}

// WriteCSV escribe todos los registros en formato CSV.
func WriteCSV(w io.Writer, records []*domain.ShiftRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}

	for _, sr := range records {
		row := []string{
			domain.ScheduleName(sr.ScheduleID),
			sr.StartDate,
			sr.EndDate,
			sr.StartTime,
			sr.EndTime,
			formatHours(sr.TotalHours),
			formatHours(sr.NormalHours),
			formatHours(sr.OvertimeNormalHours),
			formatHours(sr.OvertimeSpecialHours),
			yesNo(sr.DoubleDayApplied),
			formatAmount(sr.DoubleDayAmount),
			formatAmount(sr.NormalAmount),
			formatAmount(sr.SpecialAmount),
			formatAmount(sr.TotalAmount),
			sr.Location,
			yesNo(sr.IsHoliday),
			sr.Description,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

func formatAmount(a float64) string {
	return strconv.FormatFloat(a, 'f', 2, 64)
}

func yesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}
