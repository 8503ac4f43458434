package tests

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

////////////////////////////////////////////////////////////////////////////////
// INTEGRATION TEST SUITE
//
// These tests validate the service end-to-end:
//
//   Dialog manager → HTTP API → Auth → Dispatcher → Redis queue → Response
//
// The service must already be running (for example via docker compose) with
// a Redis instance behind it; set E2E=1 to enable the suite.
//
// Optional environment overrides:
//
//   BASE_URL default http://localhost:8080
//   API_KEY  default concierge-key-123
//
////////////////////////////////////////////////////////////////////////////////

func requireE2E(t *testing.T) {
	t.Helper()
	if os.Getenv("E2E") == "" {
		t.Skip("set E2E=1 to run integration tests against a live service")
	}
	waitReady(t)
}

func baseURL() string {
	if v := os.Getenv("BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func apiKey() string {
	if v := os.Getenv("API_KEY"); v != "" {
		return v
	}
	return "concierge-key-123"
}

////////////////////////////////////////////////////////////////////////////////
// SERVICE READINESS HELPER
//
// waitReady polls /ready until Redis + server are ready.
// Prevents flaky failures when containers are still booting.
////////////////////////////////////////////////////////////////////////////////

func waitReady(t *testing.T) {
	t.Helper()

	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.Now().Add(30 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(baseURL() + "/ready")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(300 * time.Millisecond)
	}

	t.Fatalf("service not ready after 30s")
}

////////////////////////////////////////////////////////////////////////////////
// GENERIC HTTP HELPERS
////////////////////////////////////////////////////////////////////////////////

// postDialog posts an intent event and returns status + body.
func postDialog(t *testing.T, key string, payload any) (int, []byte) {
	t.Helper()

	b, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", baseURL()+"/v1/dialog", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	if key != "" {
		req.Header.Set("X-API-Key", key)
	}

	resp, err := (&http.Client{Timeout: 5 * time.Second}).Do(req)
	if err != nil {
		t.Fatalf("POST /v1/dialog failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body
}

// event builds a minimal intent event payload.
func event(intentName, source string, slots map[string]any, attrs map[string]string) map[string]any {
	return map[string]any{
		"bot":              map[string]any{"name": "DiningConcierge"},
		"invocationSource": source,
		"sessionState": map[string]any{
			"sessionAttributes": attrs,
			"intent": map[string]any{
				"name":  intentName,
				"slots": slots,
			},
		},
	}
}

// filled wraps a raw value in the slot envelope.
func filled(v string) map[string]any {
	return map[string]any{"value": map[string]any{"interpretedValue": v}}
}

////////////////////////////////////////////////////////////////////////////////
// SCENARIOS
////////////////////////////////////////////////////////////////////////////////

func TestAuthRequired(t *testing.T) {
	requireE2E(t)

	status, _ := postDialog(t, "", event("GreetingIntent", "DialogCodeHook", nil, nil))
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without API key, got %d", status)
	}
}

func TestGreetingRoundTrip(t *testing.T) {
	requireE2E(t)

	attrs := map[string]string{"sessionId": "it-greeting"}
	status, body := postDialog(t, apiKey(), event("GreetingIntent", "DialogCodeHook", nil, attrs))
	if status != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", status, body)
	}

	var resp struct {
		SessionState struct {
			SessionAttributes map[string]string `json:"sessionAttributes"`
			DialogAction      struct {
				Type string `json:"type"`
			} `json:"dialogAction"`
		} `json:"sessionState"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.SessionState.DialogAction.Type != "ElicitSlot" {
		t.Errorf("expected ElicitSlot, got %q", resp.SessionState.DialogAction.Type)
	}
	if resp.SessionState.SessionAttributes["sessionId"] != "it-greeting" {
		t.Errorf("session attributes not echoed: %v", resp.SessionState.SessionAttributes)
	}
}

func TestDiningSuggestionFullConversation(t *testing.T) {
	requireE2E(t)

	// Dialog phase with an unsupported location: the slot is re-elicited.
	slots := map[string]any{"location": filled("Queens")}
	status, body := postDialog(t, apiKey(), event("DiningSuggestionsIntent", "DialogCodeHook", slots, nil))
	if status != http.StatusOK {
		t.Fatalf("dialog phase: expected 200, got %d: %s", status, body)
	}
	if !bytes.Contains(body, []byte(`"slotToElicit":"location"`)) {
		t.Errorf("expected location to be re-elicited, got %s", body)
	}

	// Dialog phase with everything valid: control is delegated.
	slots = map[string]any{
		"location":        filled("Manhattan"),
		"cuisine":         filled("korean"),
		"reservationDate": filled("2999-01-01"),
		"reservationTime": filled("19:00"),
		"numberOfPeople":  filled("2"),
		"email":           filled("diner@example.com"),
	}
	status, body = postDialog(t, apiKey(), event("DiningSuggestionsIntent", "DialogCodeHook", slots, nil))
	if status != http.StatusOK {
		t.Fatalf("delegate: expected 200, got %d: %s", status, body)
	}
	if !bytes.Contains(body, []byte(`"type":"Delegate"`)) {
		t.Errorf("expected Delegate, got %s", body)
	}

	// Fulfillment phase: reservation is queued and the dialog closes.
	status, body = postDialog(t, apiKey(), event("DiningSuggestionsIntent", "FulfillmentCodeHook", slots, nil))
	if status != http.StatusOK {
		t.Fatalf("fulfillment: expected 200, got %d: %s", status, body)
	}
	if !bytes.Contains(body, []byte(`"type":"Close"`)) || !bytes.Contains(body, []byte(`"state":"Fulfilled"`)) {
		t.Errorf("expected fulfilled Close, got %s", body)
	}
}

func TestUnknownIntentRejected(t *testing.T) {
	requireE2E(t)

	status, body := postDialog(t, apiKey(), event("BookFlightIntent", "DialogCodeHook", nil, nil))
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown intent, got %d: %s", status, body)
	}
}
