package importer

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"Airlift/internal/calc/airlift"

	"github.com/xuri/excelize/v2"
)

const (
	SheetRequirements = "Requirements"
	SheetFleet        = "Fleet"
	SheetResults      = "Results"
)

var ErrMissingSheet = errors.New("missing sheet")

// RowError reports a malformed spreadsheet row; Row is 1-based as shown in Excel.
type RowError struct {
	Sheet string
	Row   int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("sheet %s row %d: %v", e.Sheet, e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ParseWorkbook reads the Requirements and Fleet sheets. The first row of each
// sheet is a header and blank rows are skipped.
func ParseWorkbook(r io.Reader) (airlift.Input, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return airlift.Input{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	reqRows, err := sheetRows(f, SheetRequirements)
	if err != nil {
		return airlift.Input{}, err
	}
	fleetRows, err := sheetRows(f, SheetFleet)
	if err != nil {
		return airlift.Input{}, err
	}

	var in airlift.Input
	for i, row := range reqRows {
		if blank(row) {
			continue
		}
		req, err := parseRequirementRow(row)
		if err != nil {
			return airlift.Input{}, &RowError{Sheet: SheetRequirements, Row: i + 2, Err: err}
		}
		in.Requirements = append(in.Requirements, req)
	}
	for i, row := range fleetRows {
		if blank(row) {
			continue
		}
		ac, err := parseAircraftRow(row)
		if err != nil {
			return airlift.Input{}, &RowError{Sheet: SheetFleet, Row: i + 2, Err: err}
		}
		in.Fleet = append(in.Fleet, ac)
	}
	return in, nil
}

// sheetRows returns the rows below the header of the named sheet, matching the
// name case-insensitively.
func sheetRows(f *excelize.File, name string) ([][]string, error) {
	for _, sheet := range f.GetSheetList() {
		if !strings.EqualFold(strings.TrimSpace(sheet), name) {
			continue
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		if len(rows) < 2 {
			return nil, nil
		}
		return rows[1:], nil
	}
	return nil, fmt.Errorf("%w: %s", ErrMissingSheet, name)
}

func parseRequirementRow(row []string) (airlift.SupplyRequirement, error) {
	// expected: category, tons
	if len(row) < 2 {
		return airlift.SupplyRequirement{}, fmt.Errorf("expected category and tons")
	}
	tons, err := toFloat(row[1])
	if err != nil {
		return airlift.SupplyRequirement{}, fmt.Errorf("tons: %w", err)
	}
	return airlift.SupplyRequirement{Name: strings.TrimSpace(row[0]), Tons: tons}, nil
}

func parseAircraftRow(row []string) (airlift.AircraftType, error) {
	// expected: aircraft, payload tons, available
	if len(row) < 3 {
		return airlift.AircraftType{}, fmt.Errorf("expected aircraft, payload and available")
	}
	payload, err := toFloat(row[1])
	if err != nil {
		return airlift.AircraftType{}, fmt.Errorf("payload: %w", err)
	}
	available, err := toCount(row[2])
	if err != nil {
		return airlift.AircraftType{}, fmt.Errorf("available: %w", err)
	}
	return airlift.AircraftType{
		Name:        strings.TrimSpace(row[0]),
		PayloadTons: payload,
		Available:   available,
	}, nil
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// toCount accepts "165" as well as "165.0", which spreadsheets like to produce.
func toCount(s string) (int, error) {
	v, err := toFloat(s)
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.Abs(v) > math.MaxInt32 {
		return 0, fmt.Errorf("%q is too large", s)
	}
	if v != math.Trunc(v) {
		return 0, fmt.Errorf("%q is not a whole number", s)
	}
	return int(v), nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteWorkbook writes the two input sheets and a Results sheet computed from
// them. The input sheets use the layout ParseWorkbook reads.
func WriteWorkbook(w io.Writer, in airlift.Input) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetRequirements); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetFleet); err != nil {
		return err
	}
	if _, err := f.NewSheet(SheetResults); err != nil {
		return err
	}

	rows := [][]any{{"Category", "Tons"}}
	for _, req := range in.Requirements {
		rows = append(rows, []any{req.Name, req.Tons})
	}
	if err := writeRows(f, SheetRequirements, rows); err != nil {
		return err
	}

	rows = [][]any{{"Aircraft", "Payload (t)", "Available"}}
	for _, ac := range in.Fleet {
		rows = append(rows, []any{ac.Name, ac.PayloadTons, ac.Available})
	}
	if err := writeRows(f, SheetFleet, rows); err != nil {
		return err
	}

	res := airlift.Calculate(in)
	rows = [][]any{{"Aircraft Type", "Payload (tons)", "Available", "Daily Capacity (tons)",
		"Flights Needed", "Aircraft Needed", "% of Requirement"}}
	for _, row := range res.Aircraft {
		rows = append(rows, []any{row.Name, row.PayloadTons, row.Available, row.DailyCapacityTons,
			row.FlightsNeeded, row.AircraftNeeded, row.PercentOfRequirement})
	}
	rows = append(rows,
		[]any{},
		[]any{"Total daily requirement (tons)", res.TotalRequiredTons},
		[]any{"Total potential capacity (tons)", res.TotalCapacityTons},
		[]any{"Balance (tons)", res.BalanceTons},
		[]any{"Status", string(res.Status)},
	)
	if res.Shortage() {
		rows = append(rows, []any{"Deficit (%)", res.DeficitPercent})
	}
	if err := writeRows(f, SheetResults, rows); err != nil {
		return err
	}

	f.SetActiveSheet(0)
	return f.Write(w)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s: %w", sheet, err)
		}
	}
	return nil
}
