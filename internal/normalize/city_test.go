package normalize_test

import (
	"testing"

	"github.com/thalaconnect/bloodbot/internal/normalize"
)

func TestCityExceptionTable(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Bangalore", "Bengaluru"},
		{"bangalore", "Bengaluru"},
		{"Gurgaon", "Gurugram"},
		{"Trivandrum", "Thiruvananthapuram"},
		{"Allahabad", "Prayagraj"},
	}
	for _, tc := range cases {
		if got := normalize.City(tc.in); got != tc.want {
			t.Errorf("City(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCityReferenceMatch(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"mumbai", "Mumbai"},
		{"MUMBAI", "Mumbai"},
		{"mumbaai", "Mumbai"},
		{"hyderbad", "Hyderabad"},
		{"puna", "Pune"},
		{"navi mumbai", "Navi Mumbai"},
	}
	for _, tc := range cases {
		if got := normalize.City(tc.in); got != tc.want {
			t.Errorf("City(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCityPassthroughTitleCased(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"springfield", "Springfield"},
		{"port blair", "Port Blair"},
	}
	for _, tc := range cases {
		if got := normalize.City(tc.in); got != tc.want {
			t.Errorf("City(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}

	if got := normalize.City(""); got != "" {
		t.Errorf("City(\"\") = %q, want empty", got)
	}
}
