package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"deckforge/config"
	"deckforge/database"
	"deckforge/deck"
	"deckforge/export"
	"deckforge/intake"
	"deckforge/logger"
)

var (
	genSlides    string
	genContent   string
	genStyle     string
	genOutputDir string
	genPDF       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a deck, interactively or from flags",
	Long: `Generate a presentation. With no flags the three questions are asked
interactively; flags answer them up front for scripted use.

The content brief accepts free prose, or labeled lines for finer control:

  Topic: Telemedicine in tier-2 cities
  Problem: Access to specialists is limited outside metros
  Audience: Judges
  Metrics: 40% cost reduction, 3x faster triage
  Industry: Healthcare`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&genSlides, "slides", "", "Slide count: 3, 5, 8, 10 or any positive number")
	generateCmd.Flags().StringVar(&genContent, "content", "", "Content brief (free prose or labeled lines)")
	generateCmd.Flags().StringVar(&genStyle, "style", "", "Visual style: McKinsey, BCG, Bain, RichVisual, UltraClean or Professional")
	generateCmd.Flags().StringVar(&genOutputDir, "output-dir", "", "Directory for the generated deck (default: from config)")
	generateCmd.Flags().BoolVar(&genPDF, "pdf", false, "Also write a PDF handout next to the .pptx")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfgService := config.NewService(nil)
	if err := cfgService.Initialize(); err != nil {
		return err
	}
	cfg, err := cfgService.GetConfig()
	if err != nil {
		return err
	}

	storageDir, err := cfgService.GetStorageDir()
	if err != nil {
		return err
	}

	log := logger.NewLogger()
	if err := log.Init(filepath.Join(storageDir, "logs")); err != nil {
		return err
	}
	defer log.Close()
	log.SetDetailed(cfg.DetailedLog)

	answers, err := collectAnswers(cmd, cfg.DefaultStyle)
	if err != nil {
		return err
	}

	req, err := intake.Resolve(answers)
	if err != nil {
		return err
	}
	log.Logf("request %s: topic=%q style=%s slides=%d", req.RequestID, req.Topic, req.Style, req.SlideCount)

	doc, err := deck.NewSynthesizer().Synthesize(req)
	if err != nil {
		return err
	}
	for _, sl := range doc.Slides {
		log.Detailf("request %s: slide %d role=%s placeholders=%d bullets=%d chart=%v",
			req.RequestID, sl.Index, sl.Role, len(sl.Placeholders), len(sl.Bullets), sl.ChartSpec != nil)
	}

	var history *database.HistoryService
	if db, err := database.InitDB(storageDir); err == nil {
		defer db.Close()
		history = database.NewHistoryService(db)
	} else {
		log.Logf("request %s: history database unavailable: %v", req.RequestID, err)
	}

	outputDir := genOutputDir
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	doc.OutputName = deck.UniqueOutputName(doc.OutputName, outputTaken(outputDir, history))
	outputPath := filepath.Join(outputDir, doc.OutputName+".pptx")

	pptBytes, err := export.NewPPTService().RenderDeck(doc)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, pptBytes, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputPath, err)
	}
	log.Logf("request %s: wrote %s (%d bytes)", req.RequestID, outputPath, len(pptBytes))
	fmt.Printf("Deck written to %s\n", outputPath)

	if genPDF || cfg.PDFHandout {
		pdfBytes, err := export.NewPDFHandoutService().RenderHandout(doc)
		if err != nil {
			return err
		}
		pdfPath := filepath.Join(outputDir, doc.OutputName+".pdf")
		if err := os.WriteFile(pdfPath, pdfBytes, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", pdfPath, err)
		}
		log.Logf("request %s: wrote %s (%d bytes)", req.RequestID, pdfPath, len(pdfBytes))
		fmt.Printf("Handout written to %s\n", pdfPath)
	}

	if history != nil {
		_, err = history.SaveGeneration(database.GenerationRecord{
			ID:         req.RequestID,
			Topic:      req.Topic,
			Style:      string(req.Style),
			SlideCount: req.SlideCount,
			OutputPath: outputPath,
		})
		if err != nil {
			log.Logf("request %s: history record failed: %v", req.RequestID, err)
		}
	}

	return nil
}

// outputTaken reports output-name collisions against both the filesystem and
// the generation history, so a deleted-but-recorded deck still gets a fresh
// suffix. The history check is best-effort; a nil or failing service falls
// back to the filesystem alone.
func outputTaken(outputDir string, history *database.HistoryService) func(string) bool {
	return func(name string) bool {
		path := filepath.Join(outputDir, name+".pptx")
		if _, err := os.Stat(path); err == nil {
			return true
		}
		if history != nil {
			if taken, err := history.HasOutputPath(path); err == nil && taken {
				return true
			}
		}
		return false
	}
}

// collectAnswers gathers the three answers, prompting interactively for any
// not supplied as flags. In flags mode (any answer flag given) a missing style
// falls back to the configured default instead of prompting.
func collectAnswers(cmd *cobra.Command, defaultStyle string) (intake.Answers, error) {
	a := intake.Answers{
		SlideCount: genSlides,
		Content:    genContent,
		Style:      genStyle,
	}

	if a.Style == "" && defaultStyle != "" && (a.SlideCount != "" || a.Content != "") {
		a.Style = defaultStyle
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	if a.SlideCount == "" {
		fmt.Fprintln(out, "How many slides? (3, 5, 8, 10, or Custom)")
		line, err := readLine(reader)
		if err != nil {
			return a, err
		}
		a.SlideCount = line
	}
	if strings.EqualFold(strings.TrimSpace(a.SlideCount), "custom") && a.SlideCountFollowUp == "" {
		fmt.Fprintln(out, "How many slides exactly?")
		line, err := readLine(reader)
		if err != nil {
			return a, err
		}
		a.SlideCountFollowUp = line
	}

	if a.Content == "" {
		fmt.Fprintln(out, "What is the deck about? (free prose, or labeled lines like \"Topic: ...\"; finish with an empty line)")
		var lines []string
		for {
			line, err := readLine(reader)
			if err != nil {
				return a, err
			}
			if strings.TrimSpace(line) == "" {
				break
			}
			lines = append(lines, line)
		}
		a.Content = strings.Join(lines, "\n")
	}

	if a.Style == "" {
		fmt.Fprintln(out, "Which visual style? (McKinsey, BCG, Bain, RichVisual, UltraClean, Professional)")
		line, err := readLine(reader)
		if err != nil {
			return a, err
		}
		a.Style = line
	}

	return a, nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
