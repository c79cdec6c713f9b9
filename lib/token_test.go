package lib

import (
	"regexp"
	"testing"
)

func TestGenerateLeadNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^MS-[A-Z0-9]{6}$`)
	for i := 0; i < 20; i++ {
		number := GenerateLeadNumber()
		if !pattern.MatchString(number) {
			t.Fatalf("lead number %q does not match MS-XXXXXX", number)
		}
	}
}

func TestSanitizeString(t *testing.T) {
	cases := []struct {
		input string
		trim  bool
		lower bool
		want  string
	}{
		{"  Jan Kowalski  ", true, false, "Jan Kowalski"},
		{"JAN@MOUNTSPA.PL", true, true, "jan@mountspa.pl"},
		{"line\x00with\x1fcontrol\x7fchars", false, false, "linewithcontrolchars"},
		{"  keep edges  ", false, false, "  keep edges  "},
	}
	for _, tc := range cases {
		if got := SanitizeString(tc.input, tc.trim, tc.lower); got != tc.want {
			t.Fatalf("SanitizeString(%q, %v, %v) = %q, want %q", tc.input, tc.trim, tc.lower, got, tc.want)
		}
	}
}
