package export

import (
	"bytes"
	"testing"

	"deckforge/deck"
)

func TestRenderHandoutProducesPDF(t *testing.T) {
	doc := testDocument(t, 5, deck.StyleProfessional, []string{"18% margin uplift", "2x throughput"})

	data, err := NewPDFHandoutService().RenderHandout(doc)
	if err != nil {
		t.Fatalf("RenderHandout failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not start with the PDF magic")
	}
}

func TestRenderHandoutCoversEverySlide(t *testing.T) {
	doc := testDocument(t, 3, deck.StyleBain, nil)
	data, err := NewPDFHandoutService().RenderHandout(doc)
	if err != nil {
		t.Fatalf("RenderHandout failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty handout")
	}
}

func TestPDFColor(t *testing.T) {
	c := pdfColor(deck.RGB{R: 0, G: 128, B: 0})
	if c.Red != 0 || c.Green != 128 || c.Blue != 0 {
		t.Errorf("pdfColor = %+v", c)
	}
}
