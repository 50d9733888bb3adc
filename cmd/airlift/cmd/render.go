package cmd

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"Airlift/internal/calc/airlift"
	"Airlift/internal/calc/format"
)

const (
	colorRed       = "196"
	colorDarkBlue  = "18"
	colorDarkGreen = "28"
	colorGray      = "245"
)

const chartWidth = 40

type styles struct {
	header   lipgloss.Style
	shortage lipgloss.Style
	surplus  lipgloss.Style
	note     lipgloss.Style
	reqBar   lipgloss.Style
	capBar   lipgloss.Style
	cell     lipgloss.Style
	number   lipgloss.Style
}

// newStyles binds styles to the output so colour is dropped when w is not a terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header:   r.NewStyle().Bold(true),
		shortage: r.NewStyle().Bold(true).Foreground(lipgloss.Color(colorRed)),
		surplus:  r.NewStyle().Foreground(lipgloss.Color(colorDarkGreen)),
		note:     r.NewStyle().Foreground(lipgloss.Color(colorGray)),
		reqBar:   r.NewStyle().Foreground(lipgloss.Color(colorDarkBlue)),
		capBar:   r.NewStyle().Foreground(lipgloss.Color(colorDarkGreen)),
		cell:     r.NewStyle().Padding(0, 1),
		number:   r.NewStyle().Padding(0, 1).Align(lipgloss.Right),
	}
}

func renderResult(res airlift.Result, st styles) string {
	var b strings.Builder

	b.WriteString(st.header.Render(fmt.Sprintf("Total daily requirement: %s tons", format.Tons(res.TotalRequiredTons))))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total potential airlift capacity: %s tons per day\n", format.Tons(res.TotalCapacityTons))
	if res.Shortage() {
		b.WriteString(st.shortage.Render(fmt.Sprintf("SHORTAGE: %s tons per day (%s deficit)",
			format.Tons(res.ShortageTons), format.Percent(res.DeficitPercent))))
	} else {
		b.WriteString(st.surplus.Render(fmt.Sprintf("Surplus capacity: %s tons per day", format.Tons(res.SurplusTons))))
	}
	b.WriteString("\n\n")

	b.WriteString(st.header.Render("Aircraft Requirements Breakdown:"))
	b.WriteString("\n")
	b.WriteString(breakdownTable(res, st))
	b.WriteString("\n\n")

	reqBars := make([]chartBar, 0, len(res.Requirements))
	for _, req := range res.Requirements {
		reqBars = append(reqBars, chartBar{label: req.Name, value: req.Tons})
	}
	capBars := make([]chartBar, 0, len(res.Aircraft))
	for _, row := range res.Aircraft {
		capBars = append(capBars, chartBar{label: row.Name, value: row.DailyCapacityTons})
	}
	b.WriteString(barChart("Daily Supply Requirements (tons)", reqBars, st.header, st.reqBar))
	b.WriteString("\n")
	b.WriteString(barChart("Aircraft Daily Capacity (tons)", capBars, st.header, st.capBar))
	b.WriteString("\n")
	b.WriteString(st.note.Render("Historical Note: " + airlift.HistoricalNote))
	b.WriteString("\n")
	return b.String()
}

func breakdownTable(res airlift.Result, st styles) string {
	rows := make([][]string, 0, len(res.Aircraft))
	for _, row := range res.Aircraft {
		rows = append(rows, []string{
			row.Name,
			format.Tons(row.PayloadTons),
			strconv.Itoa(row.Available),
			format.Tons(row.DailyCapacityTons),
			format.Count(row.FlightsNeeded),
			format.Percent(row.PercentOfRequirement),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Aircraft Type", "Payload (tons)", "Available", "Daily Capacity (tons)", "Flights Needed", "% of Requirement").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return st.header.Padding(0, 1)
			case col == 0:
				return st.cell
			default:
				return st.number
			}
		})
	return t.String()
}

type chartBar struct {
	label string
	value float64
}

// barChart draws one horizontal bar per entry scaled to the largest value.
func barChart(title string, bars []chartBar, titleStyle, barStyle lipgloss.Style) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	labelWidth := 0
	peak := 0.0
	for _, bar := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(bar.label))
		peak = math.Max(peak, bar.value)
	}
	for _, bar := range bars {
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(bar.label))
		fmt.Fprintf(&b, "  %s%s %s %s\n", bar.label, pad,
			barStyle.Render(strings.Repeat("█", barLength(bar.value, peak))), format.Tons(bar.value))
	}
	return b.String()
}

// barLength is the number of cells for value, always within [0, chartWidth].
func barLength(value, peak float64) int {
	if !(peak > 0) {
		return 0
	}
	ratio := value / peak
	if math.IsNaN(ratio) || ratio <= 0 {
		return 0
	}
	return min(int(math.Round(math.Min(ratio, 1)*chartWidth)), chartWidth)
}
