package deck

import "testing"

func TestOutputName(t *testing.T) {
	cases := []struct {
		topic string
		style Style
		count int
		want  string
	}{
		{"Telemedicine in tier-2 cities", StyleBCG, 3, "Telemedicine_in_tier-2_cities_BCG_3slides"},
		{"Q3 / Q4 review: what's next?", StyleMcKinsey, 8, "Q3_Q4_review_what_s_next_McKinsey_8slides"},
		{"   ", StyleBain, 5, "presentation_Bain_5slides"},
		{"日本市場", StyleUltraClean, 5, "presentation_UltraClean_5slides"},
	}
	for _, c := range cases {
		if got := OutputName(c.topic, c.style, c.count); got != c.want {
			t.Errorf("OutputName(%q, %s, %d) = %q, want %q", c.topic, c.style, c.count, got, c.want)
		}
	}
}

func TestOutputNameTruncatesLongTopics(t *testing.T) {
	long := ""
	for i := 0; i < 40; i++ {
		long += "verylong "
	}
	got := OutputName(long, StyleProfessional, 10)
	if len(got) > maxTopicSlug+len("_Professional_10slides") {
		t.Errorf("output name too long: %d chars (%q)", len(got), got)
	}
}

func TestUniqueOutputName(t *testing.T) {
	taken := map[string]bool{
		"deck_BCG_3slides":   true,
		"deck_BCG_3slides_2": true,
	}
	exists := func(name string) bool { return taken[name] }

	if got := UniqueOutputName("fresh_BCG_3slides", exists); got != "fresh_BCG_3slides" {
		t.Errorf("free base changed to %q", got)
	}
	if got := UniqueOutputName("deck_BCG_3slides", exists); got != "deck_BCG_3slides_3" {
		t.Errorf("collision resolved to %q, want deck_BCG_3slides_3", got)
	}
}
