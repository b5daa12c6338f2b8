package report

import "github.com/gtpayroll/horas-extras/backend/internal/domain"

// Summary son los acumulados de todos los registros guardados: lo que la
// pantalla de resumen y el pie de los reportes muestran.
type Summary struct {
	Records                   int     `json:"records"`
	TotalNormalHours          float64 `json:"totalNormalHours"`
	TotalOvertimeNormalHours  float64 `json:"totalOvertimeNormalHours"`
	TotalOvertimeSpecialHours float64 `json:"totalOvertimeSpecialHours"`
	DoubleDayCount            int     `json:"doubleDayCount"`
	NormalAmount              float64 `json:"normalAmount"`
	SpecialAmount             float64 `json:"specialAmount"`
	DoubleDayAmount           float64 `json:"doubleDayAmount"`
	TotalAmount               float64 `json:"totalAmount"`
}

// Summarize recorre los registros una sola vez y acumula horas y montos por
// categoría.
func Summarize(records []*domain.ShiftRecord) Summary {
	s := Summary{Records: len(records)}

	for _, sr := range records {
		s.TotalNormalHours += sr.NormalHours
		s.TotalOvertimeNormalHours += sr.OvertimeNormalHours
		s.TotalOvertimeSpecialHours += sr.OvertimeSpecialHours
		if sr.DoubleDayApplied {
			s.DoubleDayCount++
		}
		s.NormalAmount += sr.NormalAmount
		s.SpecialAmount += sr.SpecialAmount
		s.DoubleDayAmount += sr.DoubleDayAmount
		s.TotalAmount += sr.TotalAmount
	}

	return s
}
