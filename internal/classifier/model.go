package classifier

import "time"

// Shift: un turno ya resuelto a instantes. Los instantes son hora de pared
// sin zona horaria (se cargan en UTC solo como portador neutro, nunca se
// convierten). End siempre es posterior a Start; ResolveInstants es la única
// forma prevista de construirlo.
type Shift struct {
	Start       time.Time
	End         time.Time
	HolidayFlag bool // marcado como festivo por el usuario, aparte del calendario
	DoubleDay   bool // el trabajador eligió día doble
}

// Rates: tarifas ya resueltas para una clasificación. DoubleDay es la tarifa
// efectiva (la indicada por el usuario o la de configuración por defecto).
type Rates struct {
	NormalOvertime  float64
	SpecialOvertime float64
	DoubleDay       float64
	DoubleDayHours  int // horas que cubre el día doble
}
