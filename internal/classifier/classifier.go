package classifier

import (
	"fmt"
	"math"
	"time"

	"github.com/gtpayroll/horas-extras/backend/internal/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ResolveInstants construye los instantes de inicio y fin a partir de los
// componentes de fecha y hora. Si el fin literal no es posterior al inicio,
// el turno cruzó la medianoche y la fecha de fin se adelanta exactamente un
// día; cualquier otro caso de fin anterior al inicio es un error de
// validación.
func ResolveInstants(startDate, startTime, endDate, endTime string) (time.Time, time.Time, error) {
	start, err := parseInstant(startDate, startTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("la fecha u hora de inicio es inválida")
	}
	end, err := parseInstant(endDate, endTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("la fecha u hora de fin es inválida")
	}

	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("la fecha/hora de fin debe ser posterior a la de inicio")
	}

	return start, end, nil
}

func parseInstant(date, clock string) (time.Time, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(timeLayout, clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

// IsEligibleDoubleDay indica si un turno puede pagarse como día doble: su
// fecha de inicio cae en domingo, el usuario la marcó como festivo, o la
// fecha está en el calendario de festivos.
func IsEligibleDoubleDay(start time.Time, holidayFlag bool, holidays domain.HolidayCalendar) bool {
	return start.Weekday() == time.Sunday || holidayFlag || holidays.ContainsTime(start)
}

// Classify reparte la duración de un turno entre horas normales, extras
// normales y extras especiales, y calcula los montos por categoría. Es una
// función pura: mismo turno, misma regla y mismo calendario producen siempre
// el mismo resultado.
//
// Las horas ordinarias (dentro del horario del grupo) no generan pago aquí:
// son horas de salario base que solo se registran para los reportes.
func Classify(shift Shift, rule domain.ScheduleRule, holidays domain.HolidayCalendar, rates Rates) domain.ClassifiedResult {
	totalHours := round2(shift.End.Sub(shift.Start).Hours())

	applied := shift.DoubleDay && IsEligibleDoubleDay(shift.Start, shift.HolidayFlag, holidays)

	var normal, otNormal, otSpecial float64
	if applied {
		// En día doble no se acumulan horas ordinarias: la tarifa fija
		// sustituye al primer bloque de horas.
		otSpecial, otNormal = doubleDaySplit(shift.Start, shift.End, rates.DoubleDayHours)
	} else {
		normal, otNormal, otSpecial = walkHours(shift.Start, shift.End, rule, holidays)
	}

	res := domain.ClassifiedResult{
		TotalHours:           totalHours,
		NormalHours:          round2(normal),
		OvertimeNormalHours:  round2(otNormal),
		OvertimeSpecialHours: round2(otSpecial),
		DoubleDayApplied:     applied,
	}

	res.NormalAmount = res.OvertimeNormalHours * rates.NormalOvertime
	res.SpecialAmount = res.OvertimeSpecialHours * rates.SpecialOvertime
	if applied {
		res.DoubleDayAmount = rates.DoubleDay
	}
	res.TotalAmount = res.NormalAmount + res.SpecialAmount + res.DoubleDayAmount

	return res
}

// walkHours recorre el turno en subintervalos que nunca cruzan un límite de
// hora del reloj, de modo que el día de la semana y la hora usados para la
// clasificación son constantes dentro de cada subintervalo.
func walkHours(start, end time.Time, rule domain.ScheduleRule, holidays domain.HolidayCalendar) (normal, otNormal, otSpecial float64) {
	cur := start
	for cur.Before(end) {
		hourEnd := cur.Truncate(time.Hour).Add(time.Hour)
		if hourEnd.After(end) {
			hourEnd = end
		}
		d := hourEnd.Sub(cur).Hours()
		day := cur.Weekday()
		hour := cur.Hour()

		switch {
		case holidays.ContainsTime(cur) || day == time.Sunday:
			// festivo o domingo: nunca son horas ordinarias, sin importar
			// la hora del reloj
			otSpecial += d
		default:
			window := rule.Weekday
			if day == time.Saturday {
				window = rule.Saturday
			}

			switch {
			case window.Contains(hour):
				normal += d
			case day == time.Saturday:
				if hour < window.StartHour {
					otNormal += d
				} else {
					otSpecial += d
				}
			case day == time.Monday && hour == 0:
				// la hora 0 del lunes continúa el trato especial del
				// domingo al cruzar la medianoche
				otSpecial += d
			default:
				otNormal += d
			}
		}

		cur = hourEnd
	}
	return normal, otNormal, otSpecial
}

// doubleDaySplit calcula el excedente de un turno de día doble. Las primeras
// coverHours horas quedan cubiertas por la tarifa fija; el resto se paga
// como extra especial hasta la medianoche siguiente al inicio y como extra
// normal después de ella.
func doubleDaySplit(start, end time.Time, coverHours int) (otSpecial, otNormal float64) {
	cutoff := start.Add(time.Duration(coverHours) * time.Hour)
	if !end.After(cutoff) {
		return 0, 0
	}

	midnight := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location()).AddDate(0, 0, 1)

	specialEnd := end
	if midnight.Before(end) {
		specialEnd = midnight
	}
	if specialEnd.After(cutoff) {
		otSpecial = specialEnd.Sub(cutoff).Hours()
	}
	if end.After(midnight) {
		otNormal = end.Sub(midnight).Hours()
	}

	return otSpecial, otNormal
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
