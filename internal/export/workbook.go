package export

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/marklytic/marksheet-analyzer/internal/marksheet"
)

// WriteRecordsWorkbook writes the flat gazette export: one row per student
// with Seat No, Name, Result, SGPI, then one Code/Name/Marks/Grade column
// group per paper up to the widest record. Records with fewer papers leave
// their trailing paper cells empty.
func WriteRecordsWorkbook(path string, records []marksheet.StudentRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	maxPapers := 0
	for _, rec := range records {
		if len(rec.Papers) > maxPapers {
			maxPapers = len(rec.Papers)
		}
	}

	header := []any{"Seat No", "Name", "Result", "SGPI"}
	for i := 1; i <= maxPapers; i++ {
		n := strconv.Itoa(i)
		header = append(header,
			"Paper "+n+" Code",
			"Paper "+n+" Name",
			"Paper "+n+" Marks",
			"Paper "+n+" Grade",
		)
	}
	if err := writeRow(f, sheet, 1, header); err != nil {
		return err
	}

	for i, rec := range records {
		row := []any{rec.SeatNo, rec.Name, rec.Result, rec.SGPI}
		for _, p := range rec.Papers {
			row = append(row, p.Code, p.Name, p.Total, p.Grade)
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

// WriteConsolidatedWorkbook writes the consolidated family's export: a
// Students sheet (Name, Percentage) and a Subjects reference sheet
// (Subject Code, Maximum Marks).
func WriteConsolidatedWorkbook(path string, records []marksheet.PercentageRecord, subjects *marksheet.SubjectStructure) error {
	f := excelize.NewFile()
	defer f.Close()

	students := "Students"
	if err := f.SetSheetName(f.GetSheetName(0), students); err != nil {
		return fmt.Errorf("cannot name students sheet: %w", err)
	}

	if err := writeRow(f, students, 1, []any{"Name", "Percentage"}); err != nil {
		return err
	}
	for i, rec := range records {
		if err := writeRow(f, students, i+2, []any{rec.Name, rec.Percentage}); err != nil {
			return err
		}
	}

	reference := "Subjects"
	if _, err := f.NewSheet(reference); err != nil {
		return fmt.Errorf("cannot create subjects sheet: %w", err)
	}
	if err := writeRow(f, reference, 1, []any{"Subject Code", "Maximum Marks"}); err != nil {
		return err
	}
	for i, code := range subjects.Codes() {
		if err := writeRow(f, reference, i+2, []any{code, subjects.MaxFor(code)}); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

// writeRow sets one sheet row starting at column A.
func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("invalid row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("cannot write row %d: %w", row, err)
	}
	return nil
}
