package config

// Config structure
type Config struct {
	OutputDir    string `json:"outputDir"`    // Directory for generated decks (default: storage dir/decks)
	DefaultStyle string `json:"defaultStyle"` // Style used when the style answer is left blank in flags mode
	PDFHandout   bool   `json:"pdfHandout"`   // Also emit a PDF handout next to the .pptx
	DetailedLog  bool   `json:"detailedLog"`  // Log per-slide resolution detail
	Language     string `json:"language"`     // Reserved for localized slide headings
}

// Defaults returns the configuration used before the user saves anything.
func Defaults() Config {
	return Config{
		DefaultStyle: "professional",
		Language:     "en",
	}
}
