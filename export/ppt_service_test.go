package export

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"deckforge/deck"
)

func testDocument(t *testing.T, slideCount int, style deck.Style, metrics []string) deck.DocumentDescription {
	t.Helper()
	doc, err := deck.NewSynthesizer().Synthesize(deck.RequestDescriptor{
		RequestID:  "test-request",
		SlideCount: slideCount,
		Topic:      "Telemedicine in tier-2 cities",
		Audience:   "Judges",
		KeyMetrics: metrics,
		Style:      style,
	})
	if err != nil {
		t.Fatalf("failed to synthesize test document: %v", err)
	}
	return doc
}

func TestRenderDeckProducesPPTX(t *testing.T) {
	doc := testDocument(t, 8, deck.StyleMcKinsey, []string{"40% cost reduction", "3x faster triage", "92% satisfaction"})

	data, err := NewPPTService().RenderDeck(doc)
	if err != nil {
		t.Fatalf("RenderDeck failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("RenderDeck produced no bytes")
	}
	// A .pptx file is a zip archive.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Errorf("output does not look like a zip archive: % x", data[:4])
	}
}

func TestRenderDeckAllStyles(t *testing.T) {
	for _, style := range deck.AllStyles {
		doc := testDocument(t, 3, style, []string{"40% cost reduction"})
		if _, err := NewPPTService().RenderDeck(doc); err != nil {
			t.Errorf("RenderDeck(%s) failed: %v", style, err)
		}
	}
}

func TestRenderDeckFailureNamesSlide(t *testing.T) {
	doc := testDocument(t, 5, deck.StyleBCG, nil)
	// Corrupt the third slide with a chart whose data shape is invalid.
	doc.Slides[2].ChartSpec = &deck.ChartSpec{
		Kind:   deck.ChartMatrix2x2,
		Points: []deck.ChartPoint{{Label: "only one", Value: 1}},
	}

	_, err := NewPPTService().RenderDeck(doc)
	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("got %v, want RenderError", err)
	}
	if rerr.SlideIndex != doc.Slides[2].Index {
		t.Errorf("error names slide %d, want %d", rerr.SlideIndex, doc.Slides[2].Index)
	}
	var cerr *ChartError
	if !errors.As(err, &cerr) {
		t.Errorf("RenderError should wrap the ChartError, got %v", rerr.Err)
	}
}

func TestMetricValues(t *testing.T) {
	sl := deck.Slide{Placeholders: map[string]string{
		"headline": "Financial Impact",
		"metric2":  "second",
		"metric1":  "first",
		"metric3":  "third",
	}}
	got := metricValues(sl)
	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("metricValues = %v, want %v", got, want)
	}
}

func TestCapBullets(t *testing.T) {
	bullets := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"}
	if got := capBullets(bullets, deck.DensitySparse); len(got) != 3 {
		t.Errorf("sparse density kept %d bullets, want 3", len(got))
	}
	if got := capBullets(bullets, deck.DensityStandard); len(got) != 5 {
		t.Errorf("standard density kept %d bullets, want 5", len(got))
	}
	if got := capBullets(bullets, deck.DensityDense); len(got) != 8 {
		t.Errorf("dense density kept %d bullets, want 8", len(got))
	}
	short := []string{"a", "b"}
	if got := capBullets(short, deck.DensitySparse); len(got) != 2 {
		t.Errorf("short list changed length to %d", len(got))
	}
}

func TestSplitMetricDisplay(t *testing.T) {
	cases := []struct {
		metric    string
		wantValue string
		wantLabel string
	}{
		{"40% cost reduction", "40%", "cost reduction"},
		{"3x faster triage", "3x", "faster triage"},
		{"strong brand equity", "strong brand equity", ""},
		{"[Add metric]", "[Add metric]", ""},
		{"92%", "92%", ""},
	}
	for _, c := range cases {
		value, label := splitMetricDisplay(c.metric)
		if value != c.wantValue || label != c.wantLabel {
			t.Errorf("splitMetricDisplay(%q) = %q, %q want %q, %q", c.metric, value, label, c.wantValue, c.wantLabel)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("specialists are concentrated in metro hospitals leaving smaller cities underserved", 30)
	if len(lines) < 2 {
		t.Fatalf("expected multiple lines, got %v", lines)
	}
	for _, l := range lines {
		if len([]rune(l)) > 30 {
			t.Errorf("line exceeds limit: %q", l)
		}
	}
	if wrapText("", 30) != nil {
		t.Error("empty text should yield no lines")
	}
	if got := wrapText("short", 30); len(got) != 1 || got[0] != "short" {
		t.Errorf("short text = %v", got)
	}
}
