package httpadapter

import (
	"encoding/xml"
	"net/http"
)

// messagingResponse is the TwiML document Twilio expects from a messaging
// webhook: <Response><Message>text</Message></Response>.
type messagingResponse struct {
	XMLName xml.Name `xml:"Response"`
	Message string   `xml:"Message"`
}

func writeTwiML(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/xml")

	_, _ = w.Write([]byte(xml.Header))
	_ = xml.NewEncoder(w).Encode(messagingResponse{Message: text})
}
