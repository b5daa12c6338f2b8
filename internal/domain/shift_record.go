package domain

import "time"

// ClassifiedResult es la salida del motor de clasificación: la partición de
// las horas del turno más los montos derivados. Las horas van redondeadas a
// 2 decimales.
type ClassifiedResult struct {
	TotalHours           float64 `json:"totalHours"`
	NormalHours          float64 `json:"normalHours"`
	OvertimeNormalHours  float64 `json:"overtimeNormalHours"`
	OvertimeSpecialHours float64 `json:"overtimeSpecialHours"`
	DoubleDayApplied     bool    `json:"doubleDayApplied"`
	NormalAmount         float64 `json:"normalAmount"`
	SpecialAmount        float64 `json:"specialAmount"`
	DoubleDayAmount      float64 `json:"doubleDayAmount"`
	TotalAmount          float64 `json:"totalAmount"`
}

// ShiftRecord es un turno clasificado tal como se persiste: los campos de la
// solicitud original aplanados junto al resultado. El orden de inserción
// (id serial) es el orden de presentación.
type ShiftRecord struct {
	ID            int64   `json:"id"`
	ScheduleID    string  `json:"scheduleID"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Location      string  `json:"location"`
	Description   string  `json:"description"`
	IsHoliday     bool    `json:"isHoliday"`
	DoubleDay     bool    `json:"doubleDay"`
	DoubleDayRate float64 `json:"doubleDayRate"`

	TotalHours           float64 `json:"totalHours"`
	NormalHours          float64 `json:"normalHours"`
	OvertimeNormalHours  float64 `json:"overtimeNormalHours"`
	OvertimeSpecialHours float64 `json:"overtimeSpecialHours"`
	DoubleDayApplied     bool    `json:"doubleDayApplied"`
	NormalAmount         float64 `json:"normalAmount"`
	SpecialAmount        float64 `json:"specialAmount"`
	DoubleDayAmount      float64 `json:"doubleDayAmount"`
	TotalAmount          float64 `json:"totalAmount"`

	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

// ApplyResult copia un resultado de clasificación sobre el registro.
func (sr *ShiftRecord) ApplyResult(res ClassifiedResult) {
	sr.TotalHours = res.TotalHours
	sr.NormalHours = res.NormalHours
	sr.OvertimeNormalHours = res.OvertimeNormalHours
	sr.OvertimeSpecialHours = res.OvertimeSpecialHours
	sr.DoubleDayApplied = res.DoubleDayApplied
	sr.NormalAmount = res.NormalAmount
	sr.SpecialAmount = res.SpecialAmount
	sr.DoubleDayAmount = res.DoubleDayAmount
	sr.TotalAmount = res.TotalAmount
}
