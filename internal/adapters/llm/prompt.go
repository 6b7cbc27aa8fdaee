package llm

import (
	"encoding/json"
	"fmt"

	"github.com/thalaconnect/bloodbot/internal/domain"
)

const systemPrompt = `You are Blood Help Bot. Extract structured data from a short WhatsApp message.
Fix obvious typos (e.g., 'mumbaai' -> 'Mumbai', 'o pos' -> 'O+').
Return STRICT JSON with keys: intent, full_name, blood_type, city.
intent must be one of: donor, request, reset, other.
blood_type must be one of [A+,A-,B+,B-,AB+,AB-,O+,O-] if present; else null.
If the user greets (hi/hello/start/menu/restart), use intent='reset'.
Do not include any extra keys. No explanations.`

// stateHint gives the model the fields already known, so a bare "Ravi" on the
// third turn can be read as the missing name rather than noise.
type stateHint struct {
	Known       map[domain.Field]string `json:"known"`
	Role        domain.Role             `json:"role"`
	Step        domain.Step             `json:"step"`
	ProfileName string                  `json:"profile_name"`
}

func buildUserPrompt(message, profileName string, state *domain.ConversationState) string {
	hint := stateHint{
		Known:       state.Fields,
		Role:        state.Role,
		Step:        state.Step,
		ProfileName: profileName,
	}
	raw, err := json.Marshal(hint)
	if err != nil {
		raw = []byte("{}")
	}
	return fmt.Sprintf("Message: %s\nState: %s\nReturn JSON only.", message, raw)
}
