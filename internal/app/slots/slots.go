// Package slots defines which fields a role requires and the order in which
// the bot asks for them.
package slots

import (
	"github.com/thalaconnect/bloodbot/internal/domain"
	"github.com/thalaconnect/bloodbot/internal/normalize"
)

// required is the elicitation order shared by both roles. Name first, then
// blood group, then city: when extraction partially succeeds this ordering
// minimizes re-prompts.
var required = []domain.Field{
	domain.FieldFullName,
	domain.FieldBloodType,
	domain.FieldCity,
}

// NextMissing returns the first field still missing for the role, in fixed
// priority order. A blood-type value only counts as present when it
// normalizes to a canonical token. Returns "" when the record is ready for
// its terminal action. An unset role is itself the missing piece.
func NextMissing(role domain.Role, state *domain.ConversationState) domain.Field {
	if role != domain.RoleDonor && role != domain.RoleRequest {
		return domain.FieldRole
	}
	for _, f := range required {
		v := state.Field(f)
		if v == "" {
			return f
		}
		if f == domain.FieldBloodType && normalize.BloodType(v) == "" {
			return f
		}
	}
	return ""
}

var prompts = map[domain.Field]string{
	domain.FieldRole:      "Please reply with 1 (Donor) or 2 (Require Blood).",
	domain.FieldFullName:  "📝 Please share your Full Name:",
	domain.FieldBloodType: "🩸 Which Blood Group? (A+, A-, B+, B-, AB+, AB-, O+, O-)",
	domain.FieldCity:      "🏙 Which City?",
}

// PromptFor returns the elicitation text for a field. Unknown fields get a
// generic prompt so the bot never sends an empty message.
func PromptFor(f domain.Field) string {
	if p, ok := prompts[f]; ok {
		return p
	}
	return "Please provide the required detail."
}
