package utils

import (
	"errors"
	"testing"

	"github.com/gtpayroll/horas-extras/backend/internal/domain"
)

func TestResolveShift(t *testing.T) {
	tests := []struct {
		name       string
		scheduleID string
		startDate  string
		startTime  string
		endDate    string
		endTime    string
		isHoliday  bool
		doubleDay  bool
		wantErr    error
		wantHours  float64
	}{
		{
			name:       "turno válido entre semana",
			scheduleID: "group1",
			startDate:  "2024-01-02", startTime: "08:00",
			endDate: "2024-01-02", endTime: "17:00",
			wantHours: 9,
		},
		{
			name:       "fecha de fin vacía usa la de inicio",
			scheduleID: "group2",
			startDate:  "2024-01-02", startTime: "08:00",
			endDate: "", endTime: "17:00",
			wantHours: 9,
		},
		{
			name:       "fin antes del inicio con la misma fecha cruza medianoche",
			scheduleID: "group1",
			startDate:  "2024-01-02", startTime: "22:00",
			endDate: "", endTime: "06:00",
			wantHours: 8,
		},
		{
			name:       "grupo desconocido",
			scheduleID: "group9",
			startDate:  "2024-01-02", startTime: "08:00",
			endDate: "2024-01-02", endTime: "17:00",
			wantErr: ErrUnknownSchedule,
		},
		{
			name:       "día doble en martes común rechazado",
			scheduleID: "group1",
			startDate:  "2024-01-02", startTime: "08:00",
			endDate: "2024-01-02", endTime: "17:00",
			doubleDay: true,
			wantErr:   ErrDoubleDayNotEligible,
		},
		{
			name:       "día doble en domingo aceptado",
			scheduleID: "group1",
			startDate:  "2024-01-07", startTime: "08:00",
			endDate: "2024-01-07", endTime: "17:00",
			doubleDay: true,
			wantHours: 9,
		},
		{
			name:       "día doble con marca manual de festivo aceptado",
			scheduleID: "group1",
			startDate:  "2024-01-02", startTime: "08:00",
			endDate: "2024-01-02", endTime: "17:00",
			isHoliday: true,
			doubleDay: true,
			wantHours: 9,
		},
		{
			name:       "fin varios días antes del inicio rechazado",
			scheduleID: "group1",
			startDate:  "2024-01-10", startTime: "08:00",
			endDate: "2024-01-05", endTime: "08:00",
			wantErr: errors.New("la fecha/hora de fin debe ser posterior a la de inicio"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, shift, err := ResolveShift(tt.scheduleID, tt.startDate, tt.startTime, tt.endDate, tt.endTime, tt.isHoliday, tt.doubleDay, domain.GuatemalaHolidays)

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("se esperaba el error %q, no hubo error", tt.wantErr)
				}
				if err.Error() != tt.wantErr.Error() {
					t.Errorf("error = %q, want %q", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("error inesperado: %v", err)
			}
			if rule == nil || rule.ID != tt.scheduleID {
				t.Errorf("regla = %+v, se esperaba el grupo %s", rule, tt.scheduleID)
			}
			if got := shift.End.Sub(shift.Start).Hours(); got != tt.wantHours {
				t.Errorf("duración = %.2f, want %.2f", got, tt.wantHours)
			}
		})
	}
}
