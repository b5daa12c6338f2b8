package domain

import (
	"sort"
	"time"
)

// HolidayCalendar es el conjunto de fechas festivas en formato YYYY-MM-DD.
// Es dato de configuración estática: se carga una vez y no cambia durante la
// vida del proceso.
type HolidayCalendar map[string]struct{}

func NewHolidayCalendar(dates []string) HolidayCalendar {
	cal := make(HolidayCalendar, len(dates))
	for _, d := range dates {
		cal[d] = struct{}{}
	}
	return cal
}

func (c HolidayCalendar) Contains(date string) bool {
	_, ok := c[date]
	return ok
}

func (c HolidayCalendar) ContainsTime(t time.Time) bool {
	return c.Contains(t.Format("2006-01-02"))
}

// Dates devuelve las fechas del calendario en orden ascendente.
func (c HolidayCalendar) Dates() []string {
	dates := make([]string, 0, len(c))
	for d := range c {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// GuatemalaHolidays son los días festivos oficiales de Guatemala. Agregar
// los años siguientes es un cambio de configuración, no una operación de la
// API.
var GuatemalaHolidays = NewHolidayCalendar([]string{
	"2023-01-01", // Año Nuevo
	"2023-04-06", // Jueves Santo
	"2023-04-07", // Viernes Santo
	"2023-05-01", // Día del Trabajo
	"2023-06-30", // Día del Ejército
	"2023-09-15", // Día de la Independencia
	"2023-10-20", // Día de la Revolución
	"2023-11-01", // Día de Todos los Santos
	"2023-12-24", // Nochebuena (medio día)
	"2023-12-25", // Navidad
	"2023-12-31", // Víspera de Año Nuevo (medio día)
	"2024-01-01",
	"2024-03-28",
	"2024-03-29",
	"2024-05-01",
	"2024-06-30",
	"2024-09-15",
	"2024-10-20",
	"2024-11-01",
	"2024-12-24",
	"2024-12-25",
	"2024-12-31",
})
