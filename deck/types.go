package deck

// Style identifies one of the built-in visual styles.
type Style string

const (
	StyleMcKinsey     Style = "mckinsey"
	StyleBCG          Style = "bcg"
	StyleBain         Style = "bain"
	StyleRichVisual   Style = "richvisual"
	StyleUltraClean   Style = "ultraclean"
	StyleProfessional Style = "professional"
)

// AllStyles lists every valid style in display order.
var AllStyles = []Style{
	StyleMcKinsey,
	StyleBCG,
	StyleBain,
	StyleRichVisual,
	StyleUltraClean,
	StyleProfessional,
}

// DisplayName returns the user-facing name for a style.
func (s Style) DisplayName() string {
	switch s {
	case StyleMcKinsey:
		return "McKinsey"
	case StyleBCG:
		return "BCG"
	case StyleBain:
		return "Bain"
	case StyleRichVisual:
		return "RichVisual"
	case StyleUltraClean:
		return "UltraClean"
	case StyleProfessional:
		return "Professional"
	}
	return string(s)
}

// RequestDescriptor is the normalized generation request produced by intake.
type RequestDescriptor struct {
	RequestID        string
	SlideCount       int
	Topic            string
	ProblemStatement string
	Audience         string
	Industry         string
	KeyMetrics       []string
	Style            Style
}

// Role is the narrative purpose assigned to a slide position.
type Role string

const (
	RoleTitle             Role = "title"
	RoleAgenda            Role = "agenda"
	RoleExecutiveSummary  Role = "executive_summary"
	RoleProblemStatement  Role = "problem_statement"
	RoleRootCauseAnalysis Role = "root_cause_analysis"
	RoleMarketAnalysis    Role = "market_analysis"
	RoleSolution          Role = "solution"
	RoleImplementation    Role = "implementation"
	RoleFinancials        Role = "financials"
	RoleImpact            Role = "impact"
	RoleDataVisualization Role = "data_visualization"
	RoleTimeline          Role = "timeline"
	RoleNextSteps         Role = "next_steps"
	RoleCallToAction      Role = "call_to_action"

	// Combined roles used by the compact 3-slide deck.
	RoleTitleProblem       Role = "title_problem"
	RoleImpactCallToAction Role = "impact_call_to_action"

	RoleCustom Role = "custom"
)

// DisplayName returns the slide heading conventionally used for a role.
func (r Role) DisplayName() string {
	switch r {
	case RoleTitle:
		return "Title"
	case RoleAgenda:
		return "Agenda"
	case RoleExecutiveSummary:
		return "Executive Summary"
	case RoleProblemStatement:
		return "Problem Statement"
	case RoleRootCauseAnalysis:
		return "Root Cause Analysis"
	case RoleMarketAnalysis:
		return "Market Analysis"
	case RoleSolution:
		return "Proposed Solution"
	case RoleImplementation:
		return "Implementation Roadmap"
	case RoleFinancials:
		return "Financial Impact"
	case RoleImpact:
		return "Expected Impact"
	case RoleDataVisualization:
		return "Data Highlights"
	case RoleTimeline:
		return "Timeline"
	case RoleNextSteps:
		return "Next Steps"
	case RoleCallToAction:
		return "Call to Action"
	case RoleTitleProblem:
		return "Title & Problem"
	case RoleImpactCallToAction:
		return "Impact & Call to Action"
	}
	return "Slide"
}

// IsClosing reports whether a role can legitimately end a deck.
func (r Role) IsClosing() bool {
	switch r {
	case RoleCallToAction, RoleNextSteps, RoleImpactCallToAction:
		return true
	}
	return false
}

// ContentKind describes what a placeholder slot expects.
type ContentKind string

const (
	KindText    ContentKind = "text"
	KindNumeric ContentKind = "numeric"
	KindList    ContentKind = "list"
)

// Placeholder is a named content slot on a slide template.
type Placeholder struct {
	Name string
	Kind ContentKind
}

// SlideTemplate is one position in a deck template.
type SlideTemplate struct {
	Index        int // 1-based, contiguous
	Role         Role
	Placeholders []Placeholder
}

// DeckTemplate is the ordered slide plan for a requested slide count.
type DeckTemplate struct {
	SlideCount int
	Slides     []SlideTemplate
}

// ChartKind identifies the chart drawn on a slide.
type ChartKind string

const (
	ChartBar       ChartKind = "bar"
	ChartWaterfall ChartKind = "waterfall"
	ChartPie       ChartKind = "pie"
	ChartMatrix2x2 ChartKind = "matrix2x2"
)

// ChartPoint is one labeled value backing a chart.
type ChartPoint struct {
	Label string
	Value float64
}

// ChartSpec declares a chart for the external charting collaborator.
// Specs are only emitted when real numeric data exists; values are never
// fabricated.
type ChartSpec struct {
	Kind   ChartKind
	Title  string
	Points []ChartPoint
}

// Slide is one resolved slide in a DocumentDescription.
type Slide struct {
	Index        int
	Role         Role
	Placeholders map[string]string
	Bullets      []string
	ChartSpec    *ChartSpec // nil when no numeric data was available
}

// DocumentDescription is the synthesizer output handed to renderers.
type DocumentDescription struct {
	RequestID  string
	Theme      Theme
	Slides     []Slide
	OutputName string
}
