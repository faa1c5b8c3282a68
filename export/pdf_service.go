package export

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"deckforge/deck"
)

// PDFHandoutService renders a DocumentDescription into a printable handout
// using maroto.
type PDFHandoutService struct{}

// NewPDFHandoutService creates a new PDF handout renderer.
func NewPDFHandoutService() *PDFHandoutService {
	return &PDFHandoutService{}
}

// RenderHandout renders one section per slide with the resolved content.
func (s *PDFHandoutService) RenderHandout(doc deck.DocumentDescription) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	s.addHeader(m, doc)
	for _, sl := range doc.Slides {
		s.addSlideSection(m, sl, doc.Theme)
	}
	s.addFooter(m, doc.Theme)

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF handout: %w", err)
	}
	return document.GetBytes(), nil
}

func pdfColor(c deck.RGB) *props.Color {
	return &props.Color{Red: int(c.R), Green: int(c.G), Blue: int(c.B)}
}

func (s *PDFHandoutService) addHeader(m core.Maroto, doc deck.DocumentDescription) {
	title := doc.OutputName
	if len(doc.Slides) > 0 {
		title = doc.Slides[0].Placeholders["headline"]
	}

	m.AddRow(20,
		col.New(12).Add(
			text.New(title, props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  pdfColor(doc.Theme.Primary),
			}),
		),
	)

	timestamp := time.Now().Format("2006-01-02 15:04")
	m.AddRow(8,
		col.New(12).Add(
			text.New(fmt.Sprintf("%s style · %d slides · generated %s",
				doc.Theme.Style.DisplayName(), len(doc.Slides), timestamp), props.Text{
				Family: fontfamily.Arial,
				Size:   9,
				Align:  align.Center,
				Color:  pdfColor(doc.Theme.Subtext),
			}),
		),
	)

	m.AddRow(5)
}

func (s *PDFHandoutService) addSlideSection(m core.Maroto, sl deck.Slide, th deck.Theme) {
	m.AddRow(10,
		col.New(12).Add(
			text.New(fmt.Sprintf("Slide %d — %s", sl.Index, sl.Placeholders["headline"]), props.Text{
				Family: fontfamily.Arial,
				Size:   12,
				Style:  fontstyle.Bold,
				Color:  pdfColor(th.Primary),
			}),
		),
	)

	if body := sl.Placeholders["body"]; body != "" {
		m.AddRow(10,
			col.New(12).Add(
				text.New(body, props.Text{
					Family: fontfamily.Arial,
					Size:   10,
				}),
			),
		)
	}

	for _, b := range sl.Bullets {
		m.AddRow(6,
			col.New(12).Add(
				text.New("• "+b, props.Text{
					Family: fontfamily.Arial,
					Size:   9,
				}),
			),
		)
	}

	// Metrics in a two-column grid, mirroring the slide's big-number row.
	metrics := metricValues(sl)
	for i := 0; i < len(metrics); i += 2 {
		cols := []core.Col{
			col.New(6).Add(
				text.New(metrics[i], props.Text{
					Family: fontfamily.Arial,
					Size:   9,
					Style:  fontstyle.Bold,
				}),
			),
		}
		if i+1 < len(metrics) {
			cols = append(cols, col.New(6).Add(
				text.New(metrics[i+1], props.Text{
					Family: fontfamily.Arial,
					Size:   9,
					Style:  fontstyle.Bold,
				}),
			))
		} else {
			cols = append(cols, col.New(6))
		}
		m.AddRow(6, cols...)
	}

	if sl.ChartSpec != nil {
		m.AddRow(6,
			col.New(12).Add(
				text.New(fmt.Sprintf("[%s chart: %s, %d data points]",
					sl.ChartSpec.Kind, sl.ChartSpec.Title, len(sl.ChartSpec.Points)), props.Text{
					Family: fontfamily.Arial,
					Size:   8,
					Style:  fontstyle.Italic,
					Color:  pdfColor(th.Subtext),
				}),
			),
		)
	}

	m.AddRow(4)
}

func (s *PDFHandoutService) addFooter(m core.Maroto, th deck.Theme) {
	m.AddRow(10,
		col.New(12).Add(
			text.New("Generated by DeckForge", props.Text{
				Family: fontfamily.Arial,
				Size:   8,
				Align:  align.Center,
				Color:  pdfColor(th.Subtext),
			}),
		),
	)
}
