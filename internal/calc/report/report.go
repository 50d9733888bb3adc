package report

import (
	"fmt"
	"io"
	"time"

	"Airlift/internal/calc/airlift"
	"Airlift/internal/calc/format"

	"github.com/phpdave11/gofpdf"
)

const defaultTitle = "Airlift Feasibility Report"

const (
	pageHeight   = 297.0
	bottomMargin = 15.0
	chartBlock   = 90.0
)

type Input struct {
	Project  string        `json:"project"`
	Author   string        `json:"author"`
	Title    string        `json:"title"`
	Notes    string        `json:"notes"`
	Scenario airlift.Input `json:"scenario"`
}

type rgb struct{ r, g, b int }

var (
	darkBlue  = rgb{0, 0, 139}
	darkGreen = rgb{0, 100, 0}
	red       = rgb{200, 0, 0}
	gray      = rgb{110, 110, 110}
	black     = rgb{0, 0, 0}
)

var tableHeaders = []string{
	"Aircraft Type", "Payload (tons)", "Available",
	"Daily Capacity (tons)", "Flights Needed", "% of Requirement",
}

// Render writes the results summary, breakdown table and the two bar charts
// as an A4 document. The charts move to a new page when the table leaves no
// room for them.
func Render(w io.Writer, in Input, now time.Time) error {
	pdf, err := build(in, now)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

func build(in Input, now time.Time) (*gofpdf.Fpdf, error) {
	if in.Title == "" {
		in.Title = defaultTitle
	}
	if len(in.Scenario.Requirements) == 0 && len(in.Scenario.Fleet) == 0 {
		in.Scenario = airlift.DefaultInput()
	}
	res := airlift.Calculate(in.Scenario)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if in.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
		pdf.Ln(6)
	}
	if in.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", now.Format("2006-01-02")))
	pdf.Ln(10)

	writeSummary(pdf, res)
	writeTable(pdf, res)

	if pdf.GetY()+6+chartBlock > pageHeight-bottomMargin {
		pdf.AddPage()
	}
	top := pdf.GetY() + 6
	reqBars := make([]bar, 0, len(res.Requirements))
	for _, req := range res.Requirements {
		reqBars = append(reqBars, bar{label: req.Name, value: req.Tons})
	}
	capBars := make([]bar, 0, len(res.Aircraft))
	for _, row := range res.Aircraft {
		capBars = append(capBars, bar{label: row.Name, value: row.DailyCapacityTons})
	}
	drawBarChart(pdf, chart{x: 15, y: top, w: 85, h: 70, title: "Daily Supply Requirements (tons)", color: darkBlue}, reqBars)
	drawBarChart(pdf, chart{x: 110, y: top, w: 85, h: 70, title: "Aircraft Daily Capacity (tons)", color: darkGreen}, capBars)
	pdf.SetXY(15, top+chartBlock)

	if in.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, in.Notes, "", "L", false)
		pdf.Ln(4)
	}
	setText(pdf, gray)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.MultiCell(0, 5, "Historical Note: "+airlift.HistoricalNote, "", "L", false)
	setText(pdf, black)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("build report: %w", err)
	}
	return pdf, nil
}

func writeSummary(pdf *gofpdf.Fpdf, res airlift.Result) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Total daily requirement: %s tons", format.Tons(res.TotalRequiredTons)))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Total potential airlift capacity: %s tons per day", format.Tons(res.TotalCapacityTons)))
	pdf.Ln(7)

	if res.Shortage() {
		setText(pdf, red)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, fmt.Sprintf("SHORTAGE: %s tons per day (%s deficit)",
			format.Tons(res.ShortageTons), format.Percent(res.DeficitPercent)))
	} else {
		setText(pdf, darkGreen)
		pdf.Cell(0, 7, fmt.Sprintf("Surplus capacity: %s tons per day", format.Tons(res.SurplusTons)))
	}
	setText(pdf, black)
	pdf.Ln(10)
}

func writeTable(pdf *gofpdf.Fpdf, res airlift.Result) {
	widths := []float64{30, 28, 22, 38, 30, 32}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Aircraft Requirements Breakdown:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range tableHeaders {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range res.Aircraft {
		cells := []string{
			row.Name,
			format.Tons(row.PayloadTons),
			fmt.Sprintf("%d", row.Available),
			format.Tons(row.DailyCapacityTons),
			format.Count(row.FlightsNeeded),
			format.Percent(row.PercentOfRequirement),
		}
		for i, c := range cells {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func setText(pdf *gofpdf.Fpdf, c rgb) {
	pdf.SetTextColor(c.r, c.g, c.b)
}
