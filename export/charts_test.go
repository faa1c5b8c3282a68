package export

import (
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"

	"deckforge/deck"
)

func points(values ...float64) []deck.ChartPoint {
	var pts []deck.ChartPoint
	for _, v := range values {
		pts = append(pts, deck.ChartPoint{Label: "metric", Value: v})
	}
	return pts
}

func TestValidateChart(t *testing.T) {
	cases := []struct {
		name string
		spec deck.ChartSpec
		ok   bool
	}{
		{"bar with one point", deck.ChartSpec{Kind: deck.ChartBar, Points: points(40)}, true},
		{"bar with no points", deck.ChartSpec{Kind: deck.ChartBar}, false},
		{"waterfall with two points", deck.ChartSpec{Kind: deck.ChartWaterfall, Points: points(10, -4)}, true},
		{"waterfall with one point", deck.ChartSpec{Kind: deck.ChartWaterfall, Points: points(10)}, false},
		{"pie with two points", deck.ChartSpec{Kind: deck.ChartPie, Points: points(60, 40)}, true},
		{"pie with one point", deck.ChartSpec{Kind: deck.ChartPie, Points: points(100)}, false},
		{"matrix with four points", deck.ChartSpec{Kind: deck.ChartMatrix2x2, Points: points(1, 2, 3, 4)}, true},
		{"matrix with three points", deck.ChartSpec{Kind: deck.ChartMatrix2x2, Points: points(1, 2, 3)}, false},
	}
	for _, c := range cases {
		err := validateChart(c.spec)
		if c.ok && err != nil {
			t.Errorf("%s: unexpected error %v", c.name, err)
		}
		if !c.ok {
			if _, isChartErr := err.(*ChartError); !isChartErr {
				t.Errorf("%s: got %v, want ChartError", c.name, err)
			}
		}
	}
}

func TestDrawChartRejectsUnknownKind(t *testing.T) {
	slide := ppt.New().GetActiveSlide()
	th, _ := deck.ResolveTheme(deck.StyleMcKinsey)
	err := drawChart(slide, deck.ChartSpec{Kind: deck.ChartKind("sankey"), Points: points(1)}, th)
	if _, ok := err.(*ChartError); !ok {
		t.Errorf("got %v, want ChartError for unknown kind", err)
	}
}

func TestDrawChartAllKinds(t *testing.T) {
	th, _ := deck.ResolveTheme(deck.StyleBain)
	specs := []deck.ChartSpec{
		{Kind: deck.ChartBar, Title: "t", Points: points(40, -12, 7)},
		{Kind: deck.ChartWaterfall, Title: "t", Points: points(100, -30, 20)},
		{Kind: deck.ChartPie, Title: "t", Points: points(60, 30, 10)},
		{Kind: deck.ChartMatrix2x2, Title: "t", Points: points(1, 2, 3, 4)},
	}
	for _, spec := range specs {
		slide := ppt.New().GetActiveSlide()
		if err := drawChart(slide, spec, th); err != nil {
			t.Errorf("drawChart(%s) failed: %v", spec.Kind, err)
		}
	}
}

func TestAccentCycle(t *testing.T) {
	th, _ := deck.ResolveTheme(deck.StyleMcKinsey)
	if accentCycle(th, 0) != th.Primary.ARGB() {
		t.Error("index 0 should use the primary color")
	}
	if accentCycle(th, 1) != th.Secondary.ARGB() {
		t.Error("index 1 should use the secondary color")
	}
	if accentCycle(th, 2) != th.Accent.ARGB() {
		t.Error("index 2 should use the accent color")
	}
	if accentCycle(th, 3) != th.Primary.ARGB() {
		t.Error("index 3 should wrap back to primary")
	}
}

func TestTrimNumber(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{40, "40"},
		{-12, "-12"},
		{3.5, "3.5"},
		{1200, "1200"},
	}
	for _, c := range cases {
		if got := trimNumber(c.value); got != c.want {
			t.Errorf("trimNumber(%v) = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("short", 28); got != "short" {
		t.Errorf("short label changed to %q", got)
	}
	long := "a label considerably longer than the cutoff allows here"
	got := truncateLabel(long, 20)
	if len([]rune(got)) != 20 {
		t.Errorf("truncated label has %d runes, want 20", len([]rune(got)))
	}
}
