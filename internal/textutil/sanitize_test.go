package textutil

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"portrait":         "portrait",
		" still life ":     "still life",
		"genre/sub:type":   "genre-sub-type",
		"what?":            "what",
		"":                 "unknown",
		"..":               "unknown",
		`"quoted" <name>|`: "quoted name",
	}
	for input, want := range cases {
		if got := SanitizeFileName(input); got != want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestTitle(t *testing.T) {
	cases := map[string]string{
		"still life":       "Still Life",
		"  cityscape ":     "Cityscape",
		"sketch and study": "Sketch And Study",
		"":                 "",
	}
	for input, want := range cases {
		if got := Title(input); got != want {
			t.Errorf("Title(%q) = %q, want %q", input, got, want)
		}
	}
}
