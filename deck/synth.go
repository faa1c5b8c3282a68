package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Neutral placeholder text substituted when the brief leaves a required slot
// unfilled. Fabricating values, numeric ones especially, is forbidden.
const (
	neutralText   = "[Add details]"
	neutralMetric = "[Add metric]"
)

// Synthesizer maps a RequestDescriptor onto a DocumentDescription. It holds
// no per-request state; one instance serves any number of concurrent callers.
type Synthesizer struct{}

// NewSynthesizer creates a Synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize resolves the deck template, fills every placeholder, attaches
// the theme and derives chart specs plus the output name. It either returns
// a complete DocumentDescription or an error; partial decks are never
// produced.
func (s *Synthesizer) Synthesize(req RequestDescriptor) (DocumentDescription, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return DocumentDescription{}, fmt.Errorf("request has no topic")
	}

	theme, err := ResolveTheme(req.Style)
	if err != nil {
		return DocumentDescription{}, err
	}

	tmpl, err := ResolveTemplate(req.SlideCount)
	if err != nil {
		return DocumentDescription{}, err
	}

	dist := newMetricDistributor(req.KeyMetrics)

	doc := DocumentDescription{
		RequestID:  req.RequestID,
		Theme:      theme,
		OutputName: OutputName(req.Topic, req.Style, req.SlideCount),
	}
	for _, st := range tmpl.Slides {
		slide := s.resolveSlide(st, tmpl, req, dist)
		doc.Slides = append(doc.Slides, slide)
	}
	return doc, nil
}

// resolveSlide fills one slide's placeholders from the descriptor fields per
// the role→field table, drawing metrics from the shared distributor.
func (s *Synthesizer) resolveSlide(st SlideTemplate, tmpl DeckTemplate, req RequestDescriptor, dist *metricDistributor) Slide {
	slide := Slide{
		Index:        st.Index,
		Role:         st.Role,
		Placeholders: map[string]string{},
	}

	var slideMetrics []string
	for _, ph := range st.Placeholders {
		switch ph.Kind {
		case KindNumeric:
			m, ok := dist.next()
			if !ok {
				slide.Placeholders[ph.Name] = neutralMetric
				continue
			}
			slide.Placeholders[ph.Name] = m
			slideMetrics = append(slideMetrics, m)
		case KindList:
			slide.Bullets = s.listContent(st.Role, tmpl, req)
			slide.Placeholders[ph.Name] = strings.Join(slide.Bullets, "\n")
		default:
			slide.Placeholders[ph.Name] = s.textContent(st.Role, ph.Name, req)
		}
	}

	// Market analysis has no metric slots of its own; its chart reads the
	// numeric metrics from the brief directly.
	if st.Role == RoleMarketAnalysis {
		slideMetrics = req.KeyMetrics
	}
	slide.ChartSpec = deriveChartSpec(st.Role, slideMetrics)
	return slide
}

// textContent resolves a text placeholder, falling back to a sentence derived
// from the topic rather than leaving the slot empty.
func (s *Synthesizer) textContent(role Role, name string, req RequestDescriptor) string {
	switch name {
	case "headline":
		if role == RoleTitle || role == RoleTitleProblem {
			return req.Topic
		}
		return role.DisplayName()
	case "subtitle":
		if req.Audience != "" {
			return "Prepared for " + req.Audience
		}
		if req.Industry != "" {
			return req.Industry
		}
		return neutralText
	case "date":
		// Resolved by the renderer at generation time.
		return ""
	case "body":
		return s.bodyContent(role, req)
	case "problem":
		return orDerived(req.ProblemStatement, "The current approach to "+req.Topic+" is falling short")
	case "solution":
		return "A focused program to deliver " + req.Topic
	case "impact":
		return neutralText
	case "timeline":
		return neutralText
	case "caption":
		return "Key figures behind " + req.Topic
	}
	return neutralText
}

func (s *Synthesizer) bodyContent(role Role, req RequestDescriptor) string {
	switch role {
	case RoleProblemStatement, RoleTitleProblem:
		return orDerived(req.ProblemStatement, "The current approach to "+req.Topic+" is falling short")
	case RoleMarketAnalysis:
		if req.Industry != "" {
			return "Landscape and dynamics of the " + req.Industry + " market"
		}
		return "Market landscape for " + req.Topic
	case RoleSolution:
		return "A focused program to deliver " + req.Topic
	}
	return neutralText
}

// listContent resolves a list placeholder for a role.
func (s *Synthesizer) listContent(role Role, tmpl DeckTemplate, req RequestDescriptor) []string {
	switch role {
	case RoleAgenda:
		var items []string
		for _, st := range tmpl.Slides {
			if st.Role == RoleTitle || st.Role == RoleAgenda {
				continue
			}
			items = append(items, st.Role.DisplayName())
		}
		return items
	case RoleRootCauseAnalysis:
		return []string{neutralText, neutralText, neutralText}
	case RoleSolution:
		return []string{
			"What we will do: " + req.Topic,
			"How it works",
			"Why it wins",
		}
	case RoleImplementation, RoleTimeline:
		return []string{
			"Phase 1 — Pilot: " + neutralText,
			"Phase 2 — Scale: " + neutralText,
			"Phase 3 — Sustain: " + neutralText,
		}
	case RoleNextSteps, RoleCallToAction, RoleImpactCallToAction:
		asks := []string{"Align on the proposed direction"}
		if req.Audience != "" {
			asks = append(asks, "Secure sponsorship from "+req.Audience)
		} else {
			asks = append(asks, "Secure sponsorship and funding")
		}
		asks = append(asks, "Launch the first phase")
		return asks
	}
	return []string{neutralText}
}

func orDerived(value, derived string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return derived
}

// metricDistributor hands out the supplied key metrics to numeric slots in
// deck order. Excess metrics truncate from the end of the supplied list.
type metricDistributor struct {
	metrics []string
	pos     int
}

func newMetricDistributor(metrics []string) *metricDistributor {
	return &metricDistributor{metrics: metrics}
}

func (d *metricDistributor) next() (string, bool) {
	if d.pos >= len(d.metrics) {
		return "", false
	}
	m := d.metrics[d.pos]
	d.pos++
	return m, true
}

var numberPattern = regexp.MustCompile(`[-+]?\d+(?:[.,]\d+)?`)

// MetricValue extracts the leading numeric value from a metric string.
// Qualitative metrics ("strong brand recall") carry no number and are only
// eligible for text slots, never chart data.
func MetricValue(metric string) (float64, bool) {
	match := numberPattern.FindString(metric)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// deriveChartSpec emits a chart spec for roles that conventionally carry a
// chart, using only the numeric metrics actually assigned to the slide. When
// no numeric data exists the spec is omitted so the renderer never receives
// an empty chart.
func deriveChartSpec(role Role, metrics []string) *ChartSpec {
	var points []ChartPoint
	for _, m := range metrics {
		if v, ok := MetricValue(m); ok {
			points = append(points, ChartPoint{Label: m, Value: v})
		}
	}
	if len(points) == 0 {
		return nil
	}

	switch role {
	case RoleFinancials:
		kind := ChartBar
		if len(points) >= 3 {
			kind = ChartWaterfall
		}
		return &ChartSpec{Kind: kind, Title: "Financial Impact", Points: points}
	case RoleImpact, RoleImpactCallToAction:
		return &ChartSpec{Kind: ChartBar, Title: "Expected Impact", Points: points}
	case RoleMarketAnalysis:
		if len(points) >= 4 {
			return &ChartSpec{Kind: ChartMatrix2x2, Title: "Market Position", Points: points[:4]}
		}
		if len(points) >= 2 {
			return &ChartSpec{Kind: ChartPie, Title: "Market Split", Points: points}
		}
		return nil
	case RoleDataVisualization:
		return &ChartSpec{Kind: ChartBar, Title: "Data Highlights", Points: points}
	}
	return nil
}
