package domain_test

import (
	"testing"

	"github.com/thalaconnect/bloodbot/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestMergeIsMonotonic(t *testing.T) {
	st := domain.NewConversationState()
	st.SetField(domain.FieldCity, "Pune")

	// A nil city never erases a previously known value.
	st.Merge(domain.ExtractedFields{Intent: domain.IntentOther})
	if got := st.Field(domain.FieldCity); got != "Pune" {
		t.Fatalf("city = %q after nil merge, want Pune", got)
	}

	// A blank string does not erase either.
	st.Merge(domain.ExtractedFields{City: strPtr("   ")})
	if got := st.Field(domain.FieldCity); got != "Pune" {
		t.Fatalf("city = %q after blank merge, want Pune", got)
	}

	// A real value overwrites (corrections are allowed).
	st.Merge(domain.ExtractedFields{City: strPtr("Nagpur")})
	if got := st.Field(domain.FieldCity); got != "Nagpur" {
		t.Fatalf("city = %q after merge, want Nagpur", got)
	}
}

func TestMergeTrimsValues(t *testing.T) {
	st := domain.NewConversationState()
	st.Merge(domain.ExtractedFields{FullName: strPtr("  Ravi  ")})
	if got := st.Field(domain.FieldFullName); got != "Ravi" {
		t.Fatalf("full_name = %q, want Ravi", got)
	}
}

func TestSetFieldNeverStoresBlank(t *testing.T) {
	st := domain.NewConversationState()
	st.SetField(domain.FieldFullName, "   ")

	if _, ok := st.Fields[domain.FieldFullName]; ok {
		t.Fatal("blank value stored; absent key must be the only representation of unknown")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	st := domain.NewConversationState()
	st.SetField(domain.FieldCity, "Pune")

	cp := st.Clone()
	cp.SetField(domain.FieldCity, "Delhi")

	if got := st.Field(domain.FieldCity); got != "Pune" {
		t.Fatalf("original mutated through clone: city = %q", got)
	}
}

func TestParseIntent(t *testing.T) {
	cases := map[string]domain.Intent{
		"donor":    domain.IntentDonor,
		"request":  domain.IntentRequest,
		"reset":    domain.IntentReset,
		"other":    domain.IntentOther,
		"":         domain.IntentOther,
		"gibberish": domain.IntentOther,
	}
	for in, want := range cases {
		if got := domain.ParseIntent(in); got != want {
			t.Errorf("ParseIntent(%q) = %q, want %q", in, got, want)
		}
	}
}
