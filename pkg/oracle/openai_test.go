package oracle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCompleteReturnsFirstChoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header: %s", got)
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Errorf("expected system+user messages, got %+v", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"사과는 냉장 보관 시 약 2주입니다."}}]}`))
	}))
	defer server.Close()

	oracle := NewOpenAIOracle(OpenAIConfig{APIKey: "test-key", CompletionURL: server.URL})

	answer, err := oracle.Complete(context.Background(), "식품 전문가", "사과의 소비기한은?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "사과는 냉장 보관 시 약 2주입니다." {
		t.Errorf("unexpected answer: %s", answer)
	}
}

func TestCompleteUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	oracle := NewOpenAIOracle(OpenAIConfig{APIKey: "test-key", CompletionURL: server.URL})

	if _, err := oracle.Complete(context.Background(), "sys", "user"); err == nil {
		t.Fatal("expected error from upstream failure")
	}
}

func TestCompleteMissingAPIKey(t *testing.T) {
	oracle := NewOpenAIOracle(OpenAIConfig{})

	if _, err := oracle.Complete(context.Background(), "sys", "user"); err == nil {
		t.Fatal("expected error when API key is not configured")
	}
}
