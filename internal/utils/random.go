package utils

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gtpayroll/horas-extras/backend/internal/classifier"
	"github.com/gtpayroll/horas-extras/backend/internal/domain"
)

var seedLocations = []string{
	"Planta Central",
	"Bodega Zona 12",
	"Oficinas Zona 10",
	"Planta Mixco",
	"Centro de Distribución Villa Nueva",
	"Sucursal Quetzaltenango",
}

var seedDescriptions = []string{
	"",
	"",
	"Cierre de inventario",
	"Mantenimiento de maquinaria",
	"Cobertura de turno",
	"Despacho urgente",
	"Corte de fin de mes",
}

// GenerateRandomShiftRecord produce un registro aleatorio pero siempre
// válido: el turno pasa por el clasificador real, así los datos de prueba
// cumplen los mismos invariantes que los datos reales.
func GenerateRandomShiftRecord(holidays domain.HolidayCalendar, rates classifier.Rates) *domain.ShiftRecord {
	rule := domain.WorkSchedules[rand.Intn(len(domain.WorkSchedules))]

	// Fecha aleatoria dentro de 2024
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day := base.AddDate(0, 0, rand.Intn(365))

	startHour := rand.Intn(18)   // 0~17
	startMinute := rand.Intn(4) * 15
	durationMinutes := 240 + rand.Intn(600) // entre 4 y 14 horas

	start := time.Date(day.Year(), day.Month(), day.Day(), startHour, startMinute, 0, 0, time.UTC)
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	isHoliday := rand.Intn(10) == 0

	doubleDay := false
	if classifier.IsEligibleDoubleDay(start, isHoliday, holidays) {
		doubleDay = rand.Intn(2) == 0
	}

	shift := classifier.Shift{
		Start:       start,
		End:         end,
		HolidayFlag: isHoliday,
		DoubleDay:   doubleDay,
	}
	res := classifier.Classify(shift, rule, holidays, rates)

	sr := &domain.ShiftRecord{
		ScheduleID:    rule.ID,
		StartDate:     start.Format("2006-01-02"),
		EndDate:       end.Format("2006-01-02"),
		StartTime:     start.Format("15:04"),
		EndTime:       end.Format("15:04"),
		Location:      seedLocations[rand.Intn(len(seedLocations))],
		Description:   seedDescriptions[rand.Intn(len(seedDescriptions))],
		IsHoliday:     isHoliday,
		DoubleDay:     doubleDay,
		DoubleDayRate: rates.DoubleDay,
	}
	sr.ApplyResult(res)

	return sr
}

// ExportFilename arma el nombre de descarga con la fecha del día, como
// siempre lo ha hecho el exportador.
func ExportFilename(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s_%s.%s", prefix, now.Format("2006-01-02"), ext)
}
