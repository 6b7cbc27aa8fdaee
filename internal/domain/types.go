package domain

// ConversationID is the stable channel address identifying one user's thread.
// For WhatsApp via Twilio this is the "From" value of the inbound message.
type ConversationID string

type Role string

const (
	RoleUnset   Role = ""
	RoleDonor   Role = "donor"
	RoleRequest Role = "request"
)

type Step string

const (
	StepStart      Step = "start"
	StepChooseRole Step = "choose_role"
	StepCollect    Step = "collect"
)

// Field names one of the slots collected during a conversation.
type Field string

const (
	FieldRole      Field = "role"
	FieldFullName  Field = "full_name"
	FieldBloodType Field = "blood_type"
	FieldCity      Field = "city"
)

// Intent is the coarse classification the extraction backend assigns
// to an inbound message.
type Intent string

const (
	IntentDonor   Intent = "donor"
	IntentRequest Intent = "request"
	IntentReset   Intent = "reset"
	IntentOther   Intent = "other"
)

// ParseIntent maps a raw extraction value onto the closed intent set.
// Anything outside the set collapses to IntentOther.
func ParseIntent(s string) Intent {
	switch Intent(s) {
	case IntentDonor, IntentRequest, IntentReset:
		return Intent(s)
	default:
		return IntentOther
	}
}
