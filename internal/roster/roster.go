// Package roster builds the spreadsheets staff download from the bot:
// the blank upload template and the export of the loaded roster.
package roster

import (
	"fmt"

	"github.com/Freeeeeet/outpass_staff_bot/internal/model"
	"github.com/xuri/excelize/v2"
)

const SheetName = "Students"

// Columns is the header row expected by the bulk upload
var Columns = []string{
	"registerNumber", "name", "email", "mobile", "parentMobile",
	"department", "year", "residenceType", "hostelName", "roomNo", "password",
}

// Template returns an .xlsx with the header row and one sample student
func Template() ([]byte, error) {
	sample := []interface{}{
		"21CS001", "Sample Student", "student@college.edu", "9876543210", "9876500000",
		"CSE", "II", string(model.ResidenceHostel), "Block A", "101", "changeme",
	}
	return build(Columns, [][]interface{}{sample})
}

// Export returns an .xlsx listing students; passwords are never written
func Export(students []*model.Student) ([]byte, error) {
	header := append(append([]string{}, Columns[:len(Columns)-1]...), "blocked")

	rows := make([][]interface{}, 0, len(students))
	for _, s := range students {
		if s == nil {
			continue
		}
		blocked := "no"
		if s.Blocked {
			blocked = "yes"
		}
		rows = append(rows, []interface{}{
			s.RegisterNumber, s.Name, s.Email, s.Mobile, s.ParentMobile,
			s.Department, s.Year, string(s.ResidenceType), s.HostelName, s.RoomNo, blocked,
		})
	}
	return build(header, rows)
}

func build(header []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &headerRow); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return nil, fmt.Errorf("header range: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", last, bold); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	lastCol, _, err := excelize.SplitCellName(last)
	if err != nil {
		return nil, fmt.Errorf("header range: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", lastCol, 18); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
