package domain

// WorkWindow es el horario ordinario de un día: intervalo semiabierto
// [StartHour, EndHour) en horas del reloj de 24 horas.
type WorkWindow struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

func (w WorkWindow) Contains(hour int) bool {
	return hour >= w.StartHour && hour < w.EndHour
}

// ScheduleRule define el horario laboral de un grupo de trabajo: una ventana
// para lunes a viernes y otra para el sábado. El domingo nunca tiene horario
// ordinario.
type ScheduleRule struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Weekday  WorkWindow `json:"weekday"`
	Saturday WorkWindow `json:"saturday"`
}

// WorkSchedules es la tabla fija de grupos de trabajo. Los horarios vienen
// del reglamento interno y solo cambian por despliegue.
var WorkSchedules = []ScheduleRule{
	{
		ID:       "group1",
		Name:     "Grupo 1",
		Weekday:  WorkWindow{StartHour: 7, EndHour: 16}, // L-V: 7:00 - 16:00
		Saturday: WorkWindow{StartHour: 7, EndHour: 11}, // Sábado: 7:00 - 11:00
	},
	{
		ID:       "group2",
		Name:     "Grupo 2",
		Weekday:  WorkWindow{StartHour: 8, EndHour: 17}, // L-V: 8:00 - 17:00
		Saturday: WorkWindow{StartHour: 8, EndHour: 12}, // Sábado: 8:00 - 12:00
	},
}

func LookupScheduleRule(id string) (*ScheduleRule, bool) {
	for i := range WorkSchedules {
		if WorkSchedules[i].ID == id {
			return &WorkSchedules[i], true
		}
	}
	return nil, false
}

// ScheduleName devuelve el nombre para mostrar de un grupo, o el id crudo si
// el grupo ya no existe en la tabla.
func ScheduleName(id string) string {
	if rule, ok := LookupScheduleRule(id); ok {
		return rule.Name
	}
	return id
}
