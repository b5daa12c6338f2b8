package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/gtpayroll/horas-extras/backend/internal/domain"
)

// WriteText genera el reporte de texto plano: un bloque legible por registro
// y el resumen al pie. Es el mismo contenido que la vista de impresión.
func WriteText(sb *strings.Builder, records []*domain.ShiftRecord, generatedAt time.Time) {
	sb.WriteString("RESUMEN DE HORAS EXTRAS\n")
	sb.WriteString("Generado el: " + generatedAt.Format("2006-01-02 15:04") + "\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n\n")

	for i, sr := range records {
		fmt.Fprintf(sb, "Registro #%d\n", i+1)
		fmt.Fprintf(sb, "  Grupo:            %s\n", domain.ScheduleName(sr.ScheduleID))
		fmt.Fprintf(sb, "  Inicio:           %s %s\n", sr.StartDate, sr.StartTime)
		fmt.Fprintf(sb, "  Fin:              %s %s\n", sr.EndDate, sr.EndTime)
		fmt.Fprintf(sb, "  Ubicación:        %s\n", sr.Location)
		fmt.Fprintf(sb, "  Horas totales:    %.2f\n", sr.TotalHours)
		fmt.Fprintf(sb, "  Horas normales:   %.2f\n", sr.NormalHours)
		fmt.Fprintf(sb, "  Extras normales:  %.2f (Q%.2f)\n", sr.OvertimeNormalHours, sr.NormalAmount)
		fmt.Fprintf(sb, "  Extras especiales: %.2f (Q%.2f)\n", sr.OvertimeSpecialHours, sr.SpecialAmount)
		fmt.Fprintf(sb, "  Día doble:        %s", yesNo(sr.DoubleDayApplied))
		if sr.DoubleDayApplied {
			fmt.Fprintf(sb, " (Q%.2f)", sr.DoubleDayAmount)
		}
		sb.WriteString("\n")
		if sr.IsHoliday {
			sb.WriteString("  Festivo:          Sí\n")
		}
		if sr.Description != "" {
			fmt.Fprintf(sb, "  Descripción:      %s\n", sr.Description)
		}
		fmt.Fprintf(sb, "  Total del turno:  Q%.2f\n\n", sr.TotalAmount)
	}

	s := Summarize(records)
	sb.WriteString(strings.Repeat("-", 40) + "\n")
	fmt.Fprintf(sb, "Registros:               %d\n", s.Records)
	fmt.Fprintf(sb, "Horas normales:          %.2f\n", s.TotalNormalHours)
	fmt.Fprintf(sb, "Horas extras normales:   %.2f (Q%.2f)\n", s.TotalOvertimeNormalHours, s.NormalAmount)
	fmt.Fprintf(sb, "Horas extras especiales: %.2f (Q%.2f)\n", s.TotalOvertimeSpecialHours, s.SpecialAmount)
	fmt.Fprintf(sb, "Días dobles:             %d (Q%.2f)\n", s.DoubleDayCount, s.DoubleDayAmount)
	fmt.Fprintf(sb, "TOTAL A PAGAR:           Q%.2f\n", s.TotalAmount)
}

// Text es la versión de conveniencia de WriteText.
func Text(records []*domain.ShiftRecord, generatedAt time.Time) string {
	var sb strings.Builder
	WriteText(&sb, records, generatedAt)
	return sb.String()
}
