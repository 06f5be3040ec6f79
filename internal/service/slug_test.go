package service

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"World News", "world-news"},
		{"  Breaking: Markets Rally!  ", "breaking-markets-rally"},
		{"Already-Slugged", "already-slugged"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"--- trim dashes ---", "trim-dashes"},
		{"UPPER case", "upper-case"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
