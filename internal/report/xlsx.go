package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gtpayroll/horas-extras/backend/internal/domain"
)

const xlsxSheet = "Horas Extras"

// BuildXLSX arma el libro de exportación: una hoja con las mismas columnas
// del CSV y una fila de totales al final.
func BuildXLSX(records []*domain.ShiftRecord) (*excelize.File, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(xlsxSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	header := make([]any, len(CSVHeader))
	for i, h := range CSVHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return nil, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(CSVHeader))
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(xlsxSheet, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, err
	}

	for i, sr := range records {
		row := []any{
			domain.ScheduleName(sr.ScheduleID),
			sr.StartDate,
			sr.EndDate,
			sr.StartTime,
			sr.EndTime,
			sr.TotalHours,
			sr.NormalHours,
			sr.OvertimeNormalHours,
			sr.OvertimeSpecialHours,
			yesNo(sr.DoubleDayApplied),
			sr.DoubleDayAmount,
			sr.NormalAmount,
			sr.SpecialAmount,
			sr.TotalAmount,
			sr.Location,
			yesNo(sr.IsHoliday),
			sr.Description,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	s := Summarize(records)
	totals := []any{
		"TOTALES", "", "", "", "",
		"",
		s.TotalNormalHours,
		s.TotalOvertimeNormalHours,
		s.TotalOvertimeSpecialHours,
		fmt.Sprintf("%d", s.DoubleDayCount),
		s.DoubleDayAmount,
		s.NormalAmount,
		s.SpecialAmount,
		s.TotalAmount,
	}
	cell := fmt.Sprintf("A%d", len(records)+2)
	if err := f.SetSheetRow(xlsxSheet, cell, &totals); err != nil {
		return nil, err
	}

	return f, nil
}
