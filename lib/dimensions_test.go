package lib

import "testing"

func TestFormatDimensions(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"226.06 cm x 96.52 cm", "226 cm x 97 cm"},
		{"213 cm x 213 cm x 91.44 cm", "213 cm x 213 cm x 91 cm"},
		{`7'5" x 7'5"`, `7'5" x 7'5"`},
		{"226.4 x 96.7", "226 x 97"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FormatDimensions(tc.input); got != tc.want {
			t.Fatalf("FormatDimensions(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestConvertToInches(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"226.06 cm", `89" (226.06 cm)`},
		{"226.06 cm x 96.52 cm", `89" (226.06 cm) x 38" (96.52 cm)`},
		{`7'5" x 7'5"`, `7'5" x 7'5"`},
	}
	for _, tc := range cases {
		if got := ConvertToInches(tc.input); got != tc.want {
			t.Fatalf("ConvertToInches(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
