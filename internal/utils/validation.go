package utils

import (
	"errors"

	"github.com/gtpayroll/horas-extras/backend/internal/classifier"
	"github.com/gtpayroll/horas-extras/backend/internal/domain"
)

var (
	ErrUnknownSchedule      = errors.New("el grupo de trabajo seleccionado no existe")
	ErrDoubleDayNotEligible = errors.New("el día doble solo aplica para domingos y días festivos")
)

// ResolveShift aplica las reglas de dominio que las etiquetas del validador
// de estructuras no cubren: que el grupo exista, que el fin quede después
// del inicio tras el ajuste de medianoche, y que el día doble solo se elija
// en fechas elegibles. Devuelve la regla del grupo y el turno ya resuelto,
// listo para clasificar.
func ResolveShift(scheduleID, startDate, startTime, endDate, endTime string, isHoliday, doubleDay bool, holidays domain.HolidayCalendar) (*domain.ScheduleRule, classifier.Shift, error) {
	rule, ok := domain.LookupScheduleRule(scheduleID)
	if !ok {
		return nil, classifier.Shift{}, ErrUnknownSchedule
	}

	// Si no se indica fecha de fin, el turno termina el mismo día que empieza
	if endDate == "" {
		endDate = startDate
	}

	start, end, err := classifier.ResolveInstants(startDate, startTime, endDate, endTime)
	if err != nil {
		return nil, classifier.Shift{}, err
	}

	if doubleDay && !classifier.IsEligibleDoubleDay(start, isHoliday, holidays) {
		return nil, classifier.Shift{}, ErrDoubleDayNotEligible
	}

	return rule, classifier.Shift{
		Start:       start,
		End:         end,
		HolidayFlag: isHoliday,
		DoubleDay:   doubleDay,
	}, nil
}
