// Package intake normalizes the three conversational answers — slide count,
// content brief, visual style — into a validated deck.RequestDescriptor.
package intake

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"deckforge/deck"
)

// CanonicalSlideCounts are the slide counts with fixed deck templates.
var CanonicalSlideCounts = []int{3, 5, 8, 10}

// ValidationError names the answer that could not be accepted. Generation
// never proceeds past one; the caller re-asks with corrected input.
type ValidationError struct {
	Field   string
	Message string
	Options []string
}

func (e *ValidationError) Error() string {
	if len(e.Options) > 0 {
		return fmt.Sprintf("%s: %s (valid options: %s)", e.Field, e.Message, strings.Join(e.Options, ", "))
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Answers carries the raw replies to the three questions. SlideCountFollowUp
// is only consulted when the first answer asks for a custom count.
type Answers struct {
	SlideCount         string
	SlideCountFollowUp string
	Content            string
	Style              string
}

// Resolve validates the three answers and produces a request descriptor, or
// fails with a ValidationError naming the offending field.
func Resolve(a Answers) (deck.RequestDescriptor, error) {
	count, err := ParseSlideCount(a.SlideCount, a.SlideCountFollowUp)
	if err != nil {
		return deck.RequestDescriptor{}, err
	}

	style, err := ParseStyle(a.Style)
	if err != nil {
		return deck.RequestDescriptor{}, err
	}

	req, err := ParseContent(a.Content)
	if err != nil {
		return deck.RequestDescriptor{}, err
	}

	req.RequestID = uuid.New().String()
	req.SlideCount = count
	req.Style = style
	return req, nil
}

// ParseSlideCount accepts one of the canonical counts case-insensitively
// ("8", "8 slides"), a bare positive integer for a custom deck, or the word
// "custom" with the follow-up holding the integer. Anything non-positive or
// non-numeric fails.
func ParseSlideCount(answer, followUp string) (int, error) {
	raw := strings.TrimSpace(answer)
	norm := strings.ToLower(raw)
	norm = strings.TrimSuffix(norm, "slides")
	norm = strings.TrimSuffix(norm, "slide")
	norm = strings.TrimSpace(norm)

	if norm == "custom" {
		raw = strings.TrimSpace(followUp)
		norm = strings.ToLower(raw)
		if norm == "" {
			return 0, &ValidationError{Field: "slideCount", Message: "custom slide count requires a number"}
		}
	}

	n, err := strconv.Atoi(norm)
	if err != nil {
		return 0, &ValidationError{Field: "slideCount", Message: fmt.Sprintf("%q is not a number", raw)}
	}
	if n <= 0 {
		return 0, &ValidationError{Field: "slideCount", Message: "slide count must be positive"}
	}
	return n, nil
}

// ParseStyle matches the six style names case-insensitively, tolerating
// spaces and hyphens ("ultra clean", "Rich-Visual"). Unrecognized names fail
// listing the valid options; the resolver never silently defaults a style.
func ParseStyle(answer string) (deck.Style, error) {
	norm := strings.ToLower(strings.TrimSpace(answer))
	norm = strings.ReplaceAll(norm, " ", "")
	norm = strings.ReplaceAll(norm, "-", "")
	norm = strings.ReplaceAll(norm, "_", "")

	for _, s := range deck.AllStyles {
		if norm == string(s) {
			return s, nil
		}
	}

	options := make([]string, 0, len(deck.AllStyles))
	for _, s := range deck.AllStyles {
		options = append(options, s.DisplayName())
	}
	return "", &ValidationError{
		Field:   "style",
		Message: fmt.Sprintf("unknown style %q", strings.TrimSpace(answer)),
		Options: options,
	}
}

// contentLabels maps recognized "Label:" hints to descriptor fields.
var contentLabels = []string{"topic", "problem", "audience", "metrics", "industry"}

// ParseContent splits a free-form brief into the optional sub-fields when
// explicit "Topic:" style labels are present. Unlabeled prose becomes the
// topic wholesale; unstructured input is never rejected.
func ParseContent(answer string) (deck.RequestDescriptor, error) {
	var req deck.RequestDescriptor

	if strings.TrimSpace(answer) == "" {
		return req, &ValidationError{Field: "content", Message: "content brief must not be empty"}
	}

	var freeform []string
	for _, line := range strings.Split(answer, "\n") {
		label, value, ok := splitLabel(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				freeform = append(freeform, strings.TrimSpace(line))
			}
			continue
		}
		switch label {
		case "topic":
			req.Topic = value
		case "problem":
			req.ProblemStatement = value
		case "audience":
			req.Audience = value
		case "industry":
			req.Industry = value
		case "metrics":
			req.KeyMetrics = splitMetrics(value)
		}
	}

	if req.Topic == "" {
		if len(freeform) == 0 {
			return req, &ValidationError{Field: "content", Message: "could not find a topic in the brief"}
		}
		req.Topic = strings.Join(freeform, " ")
	}
	return req, nil
}

func splitLabel(line string) (label, value string, ok bool) {
	idx := strings.Index(line, ":")
	if idx <= 0 {
		return "", "", false
	}
	candidate := strings.ToLower(strings.TrimSpace(line[:idx]))
	for _, l := range contentLabels {
		if candidate == l {
			return l, strings.TrimSpace(line[idx+1:]), true
		}
	}
	return "", "", false
}

func splitMetrics(value string) []string {
	var metrics []string
	for _, part := range strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';'
	}) {
		if m := strings.TrimSpace(part); m != "" {
			metrics = append(metrics, m)
		}
	}
	return metrics
}
