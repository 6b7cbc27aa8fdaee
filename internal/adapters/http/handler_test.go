package httpadapter_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	httpadapter "github.com/thalaconnect/bloodbot/internal/adapters/http"
	"github.com/thalaconnect/bloodbot/internal/adapters/storage/memory"
	"github.com/thalaconnect/bloodbot/internal/app/conversation"
	"github.com/thalaconnect/bloodbot/internal/domain"
)

// noopExtractor satisfies domain.Extractor; webhook tests stay in the
// greeting/menu stage where the extractor is never reached.
type noopExtractor struct{}

func (noopExtractor) Extract(context.Context, string, string, *domain.ConversationState) (domain.ExtractedFields, string) {
	return domain.ExtractedFields{Intent: domain.IntentOther}, "noop"
}

func newTestServer() http.Handler {
	svc := conversation.NewService(noopExtractor{}, memory.NewSessionStore(), memory.NewRecordStore())
	return httpadapter.NewServer(svc)
}

func postWebhook(t *testing.T, h http.Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestWebhookRepliesWithTwiML(t *testing.T) {
	h := newTestServer()

	rec := postWebhook(t, h, url.Values{
		"Body":        {"hi"},
		"From":        {"whatsapp:+919876543210"},
		"ProfileName": {"Ravi"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/xml" {
		t.Fatalf("content type = %q, want application/xml", ct)
	}

	body, err := io.ReadAll(rec.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	got := string(body)
	if !strings.Contains(got, "<Response><Message>") {
		t.Fatalf("body missing TwiML envelope: %q", got)
	}
	if !strings.Contains(got, "Reply with 1 or 2 to continue") {
		t.Fatalf("body missing role menu: %q", got)
	}
}

func TestWebhookRequiresFrom(t *testing.T) {
	h := newTestServer()

	rec := postWebhook(t, h, url.Values{"Body": {"hi"}})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestWebhookEscapesReplyText(t *testing.T) {
	h := newTestServer()

	// The menu contains no markup, so any angle brackets in the payload
	// must belong to the TwiML envelope itself.
	rec := postWebhook(t, h, url.Values{
		"Body": {"hello"},
		"From": {"whatsapp:+911111111111"},
	})

	inner := rec.Body.String()
	inner = inner[strings.Index(inner, "<Message>")+len("<Message>"):]
	inner = inner[:strings.Index(inner, "</Message>")]
	if strings.ContainsAny(inner, "<>") {
		t.Fatalf("message body not escaped: %q", inner)
	}
}

func TestHealthz(t *testing.T) {
	h := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "ok" {
		t.Fatalf("body = %q, want ok", rec.Body.String())
	}
}
