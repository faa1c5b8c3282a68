package deck

import "fmt"

// TemplateResolutionError reports a slide count for which no deck template
// can be constructed. Canonical counts never produce it.
type TemplateResolutionError struct {
	SlideCount int
	Reason     string
}

func (e *TemplateResolutionError) Error() string {
	return fmt.Sprintf("cannot build deck template for %d slides: %s", e.SlideCount, e.Reason)
}

// rolePlaceholders returns the placeholder slots a role declares.
func rolePlaceholders(r Role) []Placeholder {
	switch r {
	case RoleTitle:
		return []Placeholder{
			{Name: "headline", Kind: KindText},
			{Name: "subtitle", Kind: KindText},
			{Name: "date", Kind: KindText},
		}
	case RoleTitleProblem:
		return []Placeholder{
			{Name: "headline", Kind: KindText},
			{Name: "subtitle", Kind: KindText},
			{Name: "body", Kind: KindText},
		}
	case RoleAgenda:
		return []Placeholder{
			{Name: "headline", Kind: KindText},
			{Name: "items", Kind: KindList},
		}
	case RoleExecutiveSummary:
		return []Placeholder{
			{Name: "headline", Kind: KindText},
			{Name: "problem", Kind: KindText},
			{Name: "solution", Kind: KindText},
			{Name: "impact", Kind: KindText},
			{Name: "timeline", Kind: KindText},
		}
	case RoleProblemStatement:
		return []Placeholder{
			{Name: "headline", Kind: KindText},
			{Name: "body", Kind: KindText},
		}
	case RoleRootCauseAnalysis:
		return []Placeholder{
			{Name: "headline", Kind: KindText},
			{Name: "causes", Kind: KindList},
		}
	case RoleMarketAnalysis:
		return []Placeholder{
			{Name: "headline", Kind: KindText},
			{Name: "body", Kind: KindText},
		}
	case RoleSolution:
		return []Placeholder{
			{Name: "headline", Kind: KindText},
			{Name: "body", Kind: KindText},
			{Name: "pillars", Kind: KindList},
		}
	case RoleImplementation, RoleTimeline:
		return []Placeholder{
			{Name: "headline", Kind: KindText},
			{Name: "phases", Kind: KindList},
		}
	case RoleFinancials:
		return []Placeholder{
			{Name: "headline", Kind: KindText},
			{Name: "metric1", Kind: KindNumeric},
			{Name: "metric2", Kind: KindNumeric},
			{Name: "metric3", Kind: KindNumeric},
		}
	case RoleImpact:
		return []Placeholder{
			{Name: "headline", Kind: KindText},
			{Name: "metric1", Kind: KindNumeric},
			{Name: "metric2", Kind: KindNumeric},
			{Name: "metric3", Kind: KindNumeric},
		}
	case RoleImpactCallToAction:
		return []Placeholder{
			{Name: "headline", Kind: KindText},
			{Name: "metric1", Kind: KindNumeric},
			{Name: "metric2", Kind: KindNumeric},
			{Name: "asks", Kind: KindList},
		}
	case RoleDataVisualization:
		return []Placeholder{
			{Name: "headline", Kind: KindText},
			{Name: "caption", Kind: KindText},
			{Name: "metric1", Kind: KindNumeric},
			{Name: "metric2", Kind: KindNumeric},
		}
	case RoleNextSteps, RoleCallToAction:
		return []Placeholder{
			{Name: "headline", Kind: KindText},
			{Name: "asks", Kind: KindList},
		}
	}
	return []Placeholder{
		{Name: "headline", Kind: KindText},
		{Name: "body", Kind: KindText},
	}
}

// canonicalRoles defines the fixed deck shapes for the four supported counts.
var canonicalRoles = map[int][]Role{
	3: {RoleTitleProblem, RoleSolution, RoleImpactCallToAction},
	5: {RoleTitle, RoleProblemStatement, RoleSolution, RoleFinancials, RoleCallToAction},
	8: {
		RoleTitle, RoleExecutiveSummary, RoleProblemStatement, RoleMarketAnalysis,
		RoleSolution, RoleImplementation, RoleFinancials, RoleCallToAction,
	},
	10: {
		RoleTitle, RoleAgenda, RoleExecutiveSummary, RoleProblemStatement,
		RoleRootCauseAnalysis, RoleMarketAnalysis, RoleSolution, RoleImplementation,
		RoleFinancials, RoleCallToAction,
	},
}

// interiorNarrativeOrder is the canonical ordering of interior roles in the
// full 10-slide deck.
var interiorNarrativeOrder = []Role{
	RoleAgenda, RoleExecutiveSummary, RoleProblemStatement, RoleRootCauseAnalysis,
	RoleMarketAnalysis, RoleSolution, RoleImplementation, RoleFinancials,
}

// interiorKeepPriority lists interior roles in the order they are kept when a
// custom count forces drops. RootCauseAnalysis and Agenda drop first; the
// Problem/Solution/Implementation/Financials core drops last.
var interiorKeepPriority = []Role{
	RoleProblemStatement, RoleSolution, RoleImplementation, RoleFinancials,
	RoleExecutiveSummary, RoleMarketAnalysis, RoleAgenda, RoleRootCauseAnalysis,
}

// ResolveTemplate returns the deck template for a slide count. The four
// canonical counts use fixed shapes; any other positive count derives a
// shape deterministically from the 10-slide plan.
func ResolveTemplate(slideCount int) (DeckTemplate, error) {
	if slideCount <= 0 {
		return DeckTemplate{}, &TemplateResolutionError{SlideCount: slideCount, Reason: "slide count must be positive"}
	}

	if roles, ok := canonicalRoles[slideCount]; ok {
		return buildTemplate(slideCount, roles), nil
	}
	roles, err := customRoles(slideCount)
	if err != nil {
		return DeckTemplate{}, err
	}
	return buildTemplate(slideCount, roles), nil
}

func buildTemplate(slideCount int, roles []Role) DeckTemplate {
	tmpl := DeckTemplate{SlideCount: slideCount}
	for i, r := range roles {
		tmpl.Slides = append(tmpl.Slides, SlideTemplate{
			Index:        i + 1,
			Role:         r,
			Placeholders: rolePlaceholders(r),
		})
	}
	return tmpl
}

// customRoles derives the role sequence for a non-canonical count. The title
// and closing call-to-action are fixed; interior roles are chosen by keep
// priority and laid out in narrative order. Counts above ten repeat the
// data-visualization role to fill the extra slots.
func customRoles(slideCount int) ([]Role, error) {
	if slideCount < 2 {
		return nil, &TemplateResolutionError{
			SlideCount: slideCount,
			Reason:     "deck needs at least a title and a closing slide",
		}
	}

	interior := slideCount - 2
	kept := make(map[Role]bool, interior)
	for i := 0; i < interior && i < len(interiorKeepPriority); i++ {
		kept[interiorKeepPriority[i]] = true
	}

	roles := []Role{RoleTitle}
	for _, r := range interiorNarrativeOrder {
		if kept[r] {
			roles = append(roles, r)
		}
		// Extra slots beyond the ten canonical roles repeat the
		// data-visualization role right after the market analysis.
		if r == RoleMarketAnalysis {
			for extra := interior - len(interiorNarrativeOrder); extra > 0; extra-- {
				roles = append(roles, RoleDataVisualization)
			}
		}
	}
	roles = append(roles, RoleCallToAction)
	return roles, nil
}
