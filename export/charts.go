package export

import (
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"

	"deckforge/deck"
)

// Chart area within the content region (inches).
const (
	chartLeft   = 0.5
	chartTop    = 2.6
	chartWidth  = 9.0
	chartHeight = 2.6
)

// drawChart renders a chart spec onto a slide using native shapes. The data
// shape is validated against the kind before anything is drawn.
func drawChart(slide *ppt.Slide, spec deck.ChartSpec, th deck.Theme) error {
	if err := validateChart(spec); err != nil {
		return err
	}

	switch spec.Kind {
	case deck.ChartBar:
		drawBarChart(slide, spec, th, false)
	case deck.ChartWaterfall:
		drawBarChart(slide, spec, th, true)
	case deck.ChartPie:
		drawPieLegend(slide, spec, th)
	case deck.ChartMatrix2x2:
		drawMatrix(slide, spec, th)
	default:
		return &ChartError{Kind: spec.Kind, Points: len(spec.Points), Reason: "unknown chart kind"}
	}
	return nil
}

func validateChart(spec deck.ChartSpec) error {
	n := len(spec.Points)
	switch spec.Kind {
	case deck.ChartBar:
		if n < 1 {
			return &ChartError{Kind: spec.Kind, Points: n, Reason: "bar chart needs at least one value"}
		}
	case deck.ChartWaterfall:
		if n < 2 {
			return &ChartError{Kind: spec.Kind, Points: n, Reason: "waterfall needs at least two values"}
		}
	case deck.ChartPie:
		if n < 2 {
			return &ChartError{Kind: spec.Kind, Points: n, Reason: "pie needs at least two values"}
		}
	case deck.ChartMatrix2x2:
		if n != 4 {
			return &ChartError{Kind: spec.Kind, Points: n, Reason: "2x2 matrix needs exactly four values"}
		}
	}
	return nil
}

// accentCycle returns the fill color for the i-th series element.
func accentCycle(th deck.Theme, i int) string {
	switch i % 3 {
	case 0:
		return th.Primary.ARGB()
	case 1:
		return th.Secondary.ARGB()
	}
	return th.Accent.ARGB()
}

// drawBarChart draws vertical bars scaled to the largest absolute value. In
// waterfall mode each bar starts where the previous one ended.
func drawBarChart(slide *ppt.Slide, spec deck.ChartSpec, th deck.Theme, waterfall bool) {
	maxV := 0.0
	cum := 0.0
	for _, p := range spec.Points {
		v := p.Value
		if waterfall {
			cum += p.Value
			v = cum
		}
		if av := abs(v); av > maxV {
			maxV = av
		}
	}
	if maxV == 0 {
		maxV = 1
	}

	n := len(spec.Points)
	gap := 0.2
	barW := (chartWidth - float64(n-1)*gap) / float64(n)
	baseY := chartTop + chartHeight

	cum = 0.0
	for i, p := range spec.Points {
		start := 0.0
		if waterfall {
			start = cum
			cum += p.Value
		}
		top := start + p.Value
		if top < start {
			start, top = top, start
		}

		h := (top - start) / maxV * (chartHeight - 0.6)
		if h < 0.05 {
			h = 0.05
		}
		x := chartLeft + float64(i)*(barW+gap)
		y := baseY - 0.4 - start/maxV*(chartHeight-0.6) - h

		bar := slide.CreateRichTextShape()
		bar.SetOffsetX(inches(x)).SetOffsetY(inches(y))
		bar.SetWidth(inches(barW)).SetHeight(inches(h))
		bar.SetFill(solidFill(accentCycle(th, i)))

		valueShape := slide.CreateRichTextShape()
		valueShape.SetOffsetX(inches(x)).SetOffsetY(inches(y - 0.3))
		valueShape.SetWidth(inches(barW)).SetHeight(inches(0.25))
		vt := valueShape.CreateTextRun(trimNumber(p.Value))
		vt.GetFont().SetSize(fontSmall).SetBold(true).SetColor(ppt.NewColor(th.Text.ARGB()))
		alignCenter(valueShape.GetActiveParagraph())

		labelShape := slide.CreateRichTextShape()
		labelShape.SetOffsetX(inches(x)).SetOffsetY(inches(baseY - 0.35))
		labelShape.SetWidth(inches(barW)).SetHeight(inches(0.35))
		lt := labelShape.CreateTextRun(truncateLabel(p.Label, 28))
		lt.GetFont().SetSize(fontFooter).SetColor(ppt.NewColor(th.Subtext.ARGB()))
		alignCenter(labelShape.GetActiveParagraph())
	}
}

// drawPieLegend renders pie data as proportioned swatch rows. Slice geometry
// is out of scope; shares are shown as percentages.
func drawPieLegend(slide *ppt.Slide, spec deck.ChartSpec, th deck.Theme) {
	total := 0.0
	for _, p := range spec.Points {
		total += abs(p.Value)
	}
	if total == 0 {
		total = 1
	}

	rowH := 0.45
	for i, p := range spec.Points {
		y := chartTop + float64(i)*(rowH+0.1)
		if y+rowH > chartTop+chartHeight {
			break
		}

		swatch := slide.CreateRichTextShape()
		swatch.SetOffsetX(inches(chartLeft)).SetOffsetY(inches(y))
		swatch.SetWidth(inches(0.45)).SetHeight(inches(rowH))
		swatch.SetFill(solidFill(accentCycle(th, i)))

		label := slide.CreateRichTextShape()
		label.SetOffsetX(inches(chartLeft + 0.6)).SetOffsetY(inches(y))
		label.SetWidth(inches(chartWidth - 0.6)).SetHeight(inches(rowH))
		share := abs(p.Value) / total * 100
		lt := label.CreateTextRun(fmt.Sprintf("%s — %.0f%%", truncateLabel(p.Label, 60), share))
		lt.GetFont().SetSize(fontBody).SetColor(ppt.NewColor(th.Text.ARGB()))
	}
}

// drawMatrix renders a 2x2 quadrant grid with one labeled value per cell.
func drawMatrix(slide *ppt.Slide, spec deck.ChartSpec, th deck.Theme) {
	gap := 0.12
	cellW := (chartWidth - gap) / 2
	cellH := (chartHeight - gap) / 2

	for i, p := range spec.Points {
		row := i / 2
		col := i % 2
		x := chartLeft + float64(col)*(cellW+gap)
		y := chartTop + float64(row)*(cellH+gap)

		cell := slide.CreateRichTextShape()
		cell.SetOffsetX(inches(x)).SetOffsetY(inches(y))
		cell.SetWidth(inches(cellW)).SetHeight(inches(cellH))
		cell.SetFill(solidFill(th.Background.ARGB()))

		vt := cell.CreateTextRun(trimNumber(p.Value))
		vt.GetFont().SetSize(fontHeading).SetBold(true).SetColor(ppt.NewColor(accentCycle(th, i)))
		alignCenter(cell.GetActiveParagraph())

		cell.CreateParagraph()
		lt := cell.CreateTextRun(truncateLabel(p.Label, 48))
		lt.GetFont().SetSize(fontSmall).SetColor(ppt.NewColor(th.Subtext.ARGB()))
		alignCenter(cell.GetActiveParagraph())
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func trimNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

func truncateLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
