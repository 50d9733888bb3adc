package report

import (
	"github.com/phpdave11/gofpdf"

	"Airlift/internal/calc/format"
)

type bar struct {
	label string
	value float64
}

type chart struct {
	x, y, w, h float64
	title      string
	color      rgb
}

// drawBarChart draws a vertical bar chart inside the chart box. Bars are scaled
// to the largest value; an all-zero series leaves only the axes.
func drawBarChart(pdf *gofpdf.Fpdf, c chart, bars []bar) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetXY(c.x, c.y)
	pdf.CellFormat(c.w, 6, c.title, "", 0, "C", false, 0, "")

	const labelBand = 14.0
	plotTop := c.y + 8
	plotBottom := c.y + c.h - labelBand
	plotHeight := plotBottom - plotTop

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Line(c.x, plotTop, c.x, plotBottom)
	pdf.Line(c.x, plotBottom, c.x+c.w, plotBottom)

	if len(bars) == 0 {
		return
	}
	peak := 0.0
	for _, b := range bars {
		if b.value > peak {
			peak = b.value
		}
	}

	slot := c.w / float64(len(bars))
	width := slot * 0.6
	pdf.SetFont("Helvetica", "", 7)
	for i, b := range bars {
		bx := c.x + float64(i)*slot + (slot-width)/2
		if peak > 0 && b.value > 0 {
			bh := b.value / peak * plotHeight
			pdf.SetFillColor(c.color.r, c.color.g, c.color.b)
			pdf.Rect(bx, plotBottom-bh, width, bh, "F")
			pdf.SetXY(bx-2, plotBottom-bh-4)
			pdf.CellFormat(width+4, 4, format.Tons(b.value), "", 0, "C", false, 0, "")
		}
		pdf.SetXY(c.x+float64(i)*slot, plotBottom+1)
		pdf.MultiCell(slot, 3, b.label, "", "C", false)
	}
}
