package export

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	ppt "github.com/VantageDataChat/GoPPT"

	"deckforge/deck"
)

// PPTService renders a DocumentDescription to PowerPoint using GoPPT
// (pure Go, zero dependencies).
type PPTService struct{}

// NewPPTService creates a new PPT renderer.
func NewPPTService() *PPTService {
	return &PPTService{}
}

// Slide layout constants, 16:9 widescreen.
const (
	emuPerInch = 914400

	marginLeft = 0.4

	slideWidth    = 10.0
	slideHeight   = 5.625
	contentWidth  = 9.2
	contentHeight = 4.9

	// Font sizes (pt)
	fontTitle    = 36
	fontSubtitle = 20
	fontHeading  = 28
	fontBody     = 14
	fontSmall    = 12
	fontFooter   = 9
)

func inches(v float64) int64 {
	return int64(v * emuPerInch)
}

func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

func alignCenter(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
}

func alignRight(p *ppt.Paragraph) {
	p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
}

// RenderDeck renders the document to .pptx bytes. Failures carry the index
// of the slide that could not be built.
func (s *PPTService) RenderDeck(doc deck.DocumentDescription) ([]byte, error) {
	p := ppt.New()
	p.GetDocumentProperties().Title = doc.OutputName
	p.GetDocumentProperties().Creator = "DeckForge"

	for i, sl := range doc.Slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		if err := s.buildSlide(slide, sl, doc.Theme); err != nil {
			return nil, &RenderError{SlideIndex: sl.Index, Err: err}
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}

	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *PPTService) buildSlide(slide *ppt.Slide, sl deck.Slide, th deck.Theme) error {
	switch sl.Role {
	case deck.RoleTitle, deck.RoleTitleProblem:
		s.buildTitleSlide(slide, sl, th)
		return nil
	case deck.RoleCallToAction, deck.RoleNextSteps, deck.RoleImpactCallToAction:
		return s.buildClosingSlide(slide, sl, th)
	}
	return s.buildContentSlide(slide, sl, th)
}

// buildTitleSlide lays out the opening slide with decorative bars, a centered
// headline and the optional problem framing below.
func (s *PPTService) buildTitleSlide(slide *ppt.Slide, sl deck.Slide, th deck.Theme) {
	s.addBar(slide, th, 0, 0.15)
	s.addBar(slide, th, 5.5, 0.125)

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(inches(marginLeft)).SetOffsetY(inches(1.5))
	titleShape.SetWidth(inches(contentWidth)).SetHeight(inches(1.0))
	tr := titleShape.CreateTextRun(sl.Placeholders["headline"])
	tr.GetFont().SetSize(fontTitle).SetBold(true).SetColor(ppt.NewColor(th.Primary.ARGB()))
	tr.GetFont().SetName(th.FontFamily)
	alignCenter(titleShape.GetActiveParagraph())

	if sub := sl.Placeholders["subtitle"]; sub != "" {
		subShape := slide.CreateRichTextShape()
		subShape.SetOffsetX(inches(1.0)).SetOffsetY(inches(2.6))
		subShape.SetWidth(inches(8.0)).SetHeight(inches(0.5))
		str := subShape.CreateTextRun(sub)
		str.GetFont().SetSize(fontSubtitle).SetColor(ppt.NewColor(th.Secondary.ARGB()))
		str.GetFont().SetName(th.FontFamily)
		alignCenter(subShape.GetActiveParagraph())
	}

	if body := sl.Placeholders["body"]; body != "" {
		bodyShape := slide.CreateRichTextShape()
		bodyShape.SetOffsetX(inches(1.0)).SetOffsetY(inches(3.3))
		bodyShape.SetWidth(inches(8.0)).SetHeight(inches(1.0))
		bodyShape.SetFill(solidFill(th.Background.ARGB()))
		for i, line := range wrapText(body, 80) {
			if i > 0 {
				bodyShape.CreateParagraph()
			}
			btr := bodyShape.CreateTextRun(line)
			btr.GetFont().SetSize(fontBody).SetColor(ppt.NewColor(th.Text.ARGB()))
			btr.GetFont().SetName(th.FontFamily)
			alignCenter(bodyShape.GetActiveParagraph())
		}
	}

	dateShape := slide.CreateRichTextShape()
	dateShape.SetOffsetX(inches(marginLeft)).SetOffsetY(inches(4.8))
	dateShape.SetWidth(inches(contentWidth)).SetHeight(inches(0.3))
	dtr := dateShape.CreateTextRun(time.Now().Format("January 2006"))
	dtr.GetFont().SetSize(fontFooter).SetColor(ppt.NewColor(th.Subtext.ARGB()))
	dtr.GetFont().SetName(th.FontFamily)
	alignCenter(dateShape.GetActiveParagraph())
}

// buildContentSlide lays out an interior slide: header, body text, bullets,
// metric boxes and chart as the resolved slide dictates.
func (s *PPTService) buildContentSlide(slide *ppt.Slide, sl deck.Slide, th deck.Theme) error {
	s.addHeader(slide, sl.Placeholders["headline"], th)
	y := 1.1

	if sl.Role == deck.RoleExecutiveSummary {
		s.addSummaryQuadrants(slide, sl, th)
		s.addSlideNumber(slide, sl.Index, th)
		return nil
	}

	if body := s.bodyText(sl); body != "" {
		bodyShape := slide.CreateRichTextShape()
		bodyShape.SetOffsetX(inches(marginLeft)).SetOffsetY(inches(y))
		bodyShape.SetWidth(inches(contentWidth)).SetHeight(inches(0.8))
		for i, line := range wrapText(body, 95) {
			if i > 0 {
				bodyShape.CreateParagraph()
			}
			tr := bodyShape.CreateTextRun(line)
			tr.GetFont().SetSize(fontBody).SetColor(ppt.NewColor(th.Text.ARGB()))
			tr.GetFont().SetName(th.FontFamily)
		}
		y += 0.9
	}

	if len(sl.Bullets) > 0 {
		y = s.addBullets(slide, sl.Bullets, th, y)
	}

	if metrics := metricValues(sl); len(metrics) > 0 {
		s.addMetricBoxes(slide, metrics, th, y)
	}

	if sl.ChartSpec != nil {
		if err := drawChart(slide, *sl.ChartSpec, th); err != nil {
			return err
		}
	}

	s.addSlideNumber(slide, sl.Index, th)
	return nil
}

// buildClosingSlide lays out the final call-to-action slide: centered
// headline, impact metrics when present, and the asks.
func (s *PPTService) buildClosingSlide(slide *ppt.Slide, sl deck.Slide, th deck.Theme) error {
	s.addBar(slide, th, 0, 0.15)
	s.addBar(slide, th, 5.5, 0.125)

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(inches(1.0)).SetOffsetY(inches(0.6))
	titleShape.SetWidth(inches(8.0)).SetHeight(inches(0.8))
	tr := titleShape.CreateTextRun(sl.Placeholders["headline"])
	tr.GetFont().SetSize(fontHeading).SetBold(true).SetColor(ppt.NewColor(th.Primary.ARGB()))
	tr.GetFont().SetName(th.FontFamily)
	alignCenter(titleShape.GetActiveParagraph())

	y := 1.6
	if metrics := metricValues(sl); len(metrics) > 0 {
		s.addMetricBoxes(slide, metrics, th, y)
		y += 1.7
	}

	for i, ask := range capBullets(sl.Bullets, th.Density) {
		askShape := slide.CreateRichTextShape()
		askShape.SetOffsetX(inches(1.5)).SetOffsetY(inches(y + float64(i)*0.55))
		askShape.SetWidth(inches(7.0)).SetHeight(inches(0.5))
		atr := askShape.CreateTextRun(fmt.Sprintf("%d.  %s", i+1, ask))
		atr.GetFont().SetSize(fontBody + 2).SetColor(ppt.NewColor(th.Text.ARGB()))
		atr.GetFont().SetName(th.FontFamily)
		alignCenter(askShape.GetActiveParagraph())
	}

	if sl.ChartSpec != nil {
		if err := drawChart(slide, *sl.ChartSpec, th); err != nil {
			return err
		}
	}
	return nil
}

func (s *PPTService) addBar(slide *ppt.Slide, th deck.Theme, y, height float64) {
	bar := slide.CreateRichTextShape()
	bar.SetOffsetX(0).SetOffsetY(inches(y))
	bar.SetWidth(inches(slideWidth)).SetHeight(inches(height))
	bar.SetFill(solidFill(th.Primary.ARGB()))
}

func (s *PPTService) addHeader(slide *ppt.Slide, title string, th deck.Theme) {
	s.addBar(slide, th, 0, 0.08)

	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(inches(marginLeft)).SetOffsetY(inches(0.3))
	titleShape.SetWidth(inches(contentWidth)).SetHeight(inches(0.6))
	tr := titleShape.CreateTextRun(title)
	tr.GetFont().SetSize(fontHeading).SetBold(true).SetColor(ppt.NewColor(th.Primary.ARGB()))
	tr.GetFont().SetName(th.FontFamily)
}

func (s *PPTService) addSlideNumber(slide *ppt.Slide, index int, th deck.Theme) {
	numShape := slide.CreateRichTextShape()
	numShape.SetOffsetX(inches(9.3)).SetOffsetY(inches(5.25))
	numShape.SetWidth(inches(0.5)).SetHeight(inches(0.3))
	tr := numShape.CreateTextRun(fmt.Sprintf("%d", index))
	tr.GetFont().SetSize(fontFooter).SetColor(ppt.NewColor(th.Subtext.ARGB()))
	tr.GetFont().SetName(th.FontFamily)
	alignRight(numShape.GetActiveParagraph())
}

func (s *PPTService) addBullets(slide *ppt.Slide, bullets []string, th deck.Theme, y float64) float64 {
	shown := capBullets(bullets, th.Density)
	listShape := slide.CreateRichTextShape()
	listShape.SetOffsetX(inches(marginLeft)).SetOffsetY(inches(y))
	listShape.SetWidth(inches(contentWidth)).SetHeight(inches(float64(len(shown)) * 0.42))
	for i, b := range shown {
		if i > 0 {
			listShape.CreateParagraph()
		}
		tr := listShape.CreateTextRun("• " + b)
		tr.GetFont().SetSize(fontBody).SetColor(ppt.NewColor(th.Text.ARGB()))
		tr.GetFont().SetName(th.FontFamily)
	}
	return y + float64(len(shown))*0.42 + 0.2
}

// addMetricBoxes draws a grid of highlight boxes, one metric each, in the
// manner of a consulting deck's big-number row.
func (s *PPTService) addMetricBoxes(slide *ppt.Slide, metrics []string, th deck.Theme, y float64) {
	cols := len(metrics)
	if cols > 3 {
		cols = 3
		metrics = metrics[:3]
	}

	spacing := 0.15
	boxWidth := (contentWidth - float64(cols-1)*spacing) / float64(cols)
	boxHeight := 1.4

	for i, metric := range metrics {
		x := marginLeft + float64(i)*(boxWidth+spacing)

		box := slide.CreateRichTextShape()
		box.SetOffsetX(inches(x)).SetOffsetY(inches(y))
		box.SetWidth(inches(boxWidth)).SetHeight(inches(boxHeight))
		box.SetFill(solidFill(th.Background.ARGB()))

		value, label := splitMetricDisplay(metric)
		vt := box.CreateTextRun(value)
		vt.GetFont().SetSize(28).SetBold(true).SetColor(ppt.NewColor(accentCycle(th, i)))
		vt.GetFont().SetName(th.FontFamily)
		alignCenter(box.GetActiveParagraph())

		if label != "" {
			box.CreateParagraph()
			lt := box.CreateTextRun(label)
			lt.GetFont().SetSize(fontSmall).SetColor(ppt.NewColor(th.Subtext.ARGB()))
			lt.GetFont().SetName(th.FontFamily)
			alignCenter(box.GetActiveParagraph())
		}
	}
}

// addSummaryQuadrants lays out the executive summary as four labeled boxes.
func (s *PPTService) addSummaryQuadrants(slide *ppt.Slide, sl deck.Slide, th deck.Theme) {
	quadrants := []struct {
		title string
		key   string
	}{
		{"Problem", "problem"},
		{"Solution", "solution"},
		{"Impact", "impact"},
		{"Timeline", "timeline"},
	}

	gap := 0.15
	boxW := (contentWidth - gap) / 2
	boxH := 1.85

	for i, q := range quadrants {
		row := i / 2
		col := i % 2
		x := marginLeft + float64(col)*(boxW+gap)
		y := 1.1 + float64(row)*(boxH+gap)

		box := slide.CreateRichTextShape()
		box.SetOffsetX(inches(x)).SetOffsetY(inches(y))
		box.SetWidth(inches(boxW)).SetHeight(inches(boxH))
		box.SetFill(solidFill(th.Background.ARGB()))

		tt := box.CreateTextRun(q.title)
		tt.GetFont().SetSize(fontBody).SetBold(true).SetColor(ppt.NewColor(th.Secondary.ARGB()))
		tt.GetFont().SetName(th.FontFamily)

		for _, line := range wrapText(sl.Placeholders[q.key], 55) {
			box.CreateParagraph()
			bt := box.CreateTextRun(line)
			bt.GetFont().SetSize(fontSmall).SetColor(ppt.NewColor(th.Text.ARGB()))
			bt.GetFont().SetName(th.FontFamily)
		}
	}
}

// bodyText returns the prose placeholder for a slide, if any.
func (s *PPTService) bodyText(sl deck.Slide) string {
	if b := sl.Placeholders["body"]; b != "" {
		return b
	}
	return sl.Placeholders["caption"]
}

// metricValues collects the metricN placeholders in slot order.
func metricValues(sl deck.Slide) []string {
	var names []string
	for name := range sl.Placeholders {
		if strings.HasPrefix(name, "metric") {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var metrics []string
	for _, n := range names {
		metrics = append(metrics, sl.Placeholders[n])
	}
	return metrics
}

// capBullets limits how many bullets are shown per the theme density.
func capBullets(bullets []string, d deck.Density) []string {
	max := 5
	switch d {
	case deck.DensitySparse:
		max = 3
	case deck.DensityDense:
		max = 8
	}
	if len(bullets) > max {
		return bullets[:max]
	}
	return bullets
}

// splitMetricDisplay splits "40% cost reduction" into the big number and its
// caption. Metrics with no leading figure render as a single line.
func splitMetricDisplay(metric string) (value, label string) {
	fields := strings.Fields(metric)
	if len(fields) < 2 {
		return metric, ""
	}
	if _, ok := deck.MetricValue(fields[0]); ok {
		return fields[0], strings.Join(fields[1:], " ")
	}
	return metric, ""
}

// wrapText wraps text to fit within maxLen characters per line, breaking on
// spaces where possible.
func wrapText(text string, maxLen int) []string {
	if len(text) == 0 {
		return nil
	}

	var lines []string
	runes := []rune(text)
	for len(runes) > 0 {
		if len(runes) <= maxLen {
			lines = append(lines, string(runes))
			break
		}

		breakPoint := maxLen
		for i := maxLen; i > maxLen/2; i-- {
			if runes[i] == ' ' {
				breakPoint = i + 1
				break
			}
		}

		lines = append(lines, strings.TrimRight(string(runes[:breakPoint]), " "))
		runes = runes[breakPoint:]
		for len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}
	return lines
}
