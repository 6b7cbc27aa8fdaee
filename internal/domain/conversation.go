package domain

import "strings"

// ConversationState is the per-identity slot-filling state. One instance
// exists per conversation while it is in flight; it is deleted as soon as a
// terminal action completes.
//
// Fields values are always canonical once accepted (exact blood-type token,
// canonical city name). An absent key means "unknown"; empty strings are
// never stored.
type ConversationState struct {
	Role   Role             `json:"role"`
	Step   Step             `json:"step"`
	Fields map[Field]string `json:"fields"`
}

// NewConversationState returns the state a conversation holds right after a
// reset or first contact: no role, role-choice pending, nothing collected.
func NewConversationState() *ConversationState {
	return &ConversationState{
		Role:   RoleUnset,
		Step:   StepChooseRole,
		Fields: map[Field]string{},
	}
}

// Field returns the collected value for f, or "" if still unknown.
func (s *ConversationState) Field(f Field) string {
	if s.Fields == nil {
		return ""
	}
	return s.Fields[f]
}

// SetField stores a value; blank values are dropped so that an absent key
// remains the only representation of "unknown".
func (s *ConversationState) SetField(f Field, v string) {
	v = strings.TrimSpace(v)
	if v == "" {
		s.ClearField(f)
		return
	}
	if s.Fields == nil {
		s.Fields = map[Field]string{}
	}
	s.Fields[f] = v
}

// ClearField marks a slot as unknown again.
func (s *ConversationState) ClearField(f Field) {
	delete(s.Fields, f)
}

// Merge folds one turn's extraction into the accumulated fields. The merge is
// monotonic: a nil or blank extracted value never erases a value collected on
// an earlier turn.
func (s *ConversationState) Merge(ex ExtractedFields) {
	merge := func(f Field, v *string) {
		if v == nil {
			return
		}
		if t := strings.TrimSpace(*v); t != "" {
			s.SetField(f, t)
		}
	}
	merge(FieldFullName, ex.FullName)
	merge(FieldBloodType, ex.BloodType)
	merge(FieldCity, ex.City)
}

// Clone returns an independent copy so that stores can hand out state without
// sharing the underlying map across goroutines.
func (s *ConversationState) Clone() *ConversationState {
	cp := &ConversationState{
		Role:   s.Role,
		Step:   s.Step,
		Fields: make(map[Field]string, len(s.Fields)),
	}
	for k, v := range s.Fields {
		cp.Fields[k] = v
	}
	return cp
}

// ExtractedFields is the structured guess produced by the extraction backend
// for a single turn. Optional slots are pointers: nil means the backend saw
// nothing for that slot. Never persisted beyond the turn that produced it.
type ExtractedFields struct {
	Intent    Intent
	FullName  *string
	BloodType *string
	City      *string
}

// DonorRecord is a completed donor registration, persisted exactly once.
type DonorRecord struct {
	FullName  string
	BloodType string
	Phone     string
	City      string
}

// RecipientRecord is a completed blood request, persisted exactly once.
type RecipientRecord struct {
	FullName  string
	BloodType string
	Phone     string
	City      string
}

// DonorMatch is one row returned by a donor search.
type DonorMatch struct {
	FullName string
	Phone    string
	City     string
}
