package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExchangeCode(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("failed to parse form: %v", err)
		}
		if got := r.FormValue("grant_type"); got != "authorization_code" {
			t.Errorf("expected authorization_code grant, got %s", got)
		}
		if got := r.FormValue("code"); got != "auth-code" {
			t.Errorf("unexpected code: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"token-123","token_type":"bearer","expires_in":3600}`))
	}))
	defer tokenServer.Close()

	userInfoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
			t.Errorf("unexpected authorization header: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":123456789,"kakao_account":{"email":"kim@example.com","profile":{"nickname":"김철수"}}}`))
	}))
	defer userInfoServer.Close()

	provider := NewKakaoProvider(KakaoConfig{
		ClientID:    "client-id",
		RedirectURI: "http://localhost/callback",
		TokenURL:    tokenServer.URL,
		UserInfoURL: userInfoServer.URL,
	})

	info, err := provider.ExchangeCode(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.KakaoID != "123456789" {
		t.Errorf("expected kakao id 123456789, got %s", info.KakaoID)
	}
	if info.Email != "kim@example.com" {
		t.Errorf("unexpected email: %s", info.Email)
	}
	if info.Name != "김철수" {
		t.Errorf("unexpected name: %s", info.Name)
	}
}

func TestExchangeCodeTokenEndpointFailure(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
	}))
	defer tokenServer.Close()

	provider := NewKakaoProvider(KakaoConfig{
		ClientID: "client-id",
		TokenURL: tokenServer.URL,
	})

	if _, err := provider.ExchangeCode(context.Background(), "bad-code"); err == nil {
		t.Fatal("expected error from failed token exchange")
	}
}
