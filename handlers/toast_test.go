package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"solarquote/testhelpers"
)

func TestSetToast_FlashCookie(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/quote", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	SetToast(e, "error", "Something broke")

	var flash *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "flash_toast" {
			flash = c
		}
	}
	if flash == nil {
		t.Fatal("flash_toast cookie not set")
	}

	raw, err := url.QueryUnescape(flash.Value)
	if err != nil {
		t.Fatalf("cookie value not unescapable: %v", err)
	}
	var payload map[string]string
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("cookie payload not JSON: %v", err)
	}
	if payload["message"] != "Something broke" || payload["type"] != "error" {
		t.Errorf("payload = %v", payload)
	}
}

func TestRedirectWithToast(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/quote/export/pdf", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := RedirectWithToast(e, "/quote", "warning", "Check the form"); err != nil {
		t.Fatalf("RedirectWithToast error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Errorf("status = %d, want 302", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/quote" {
		t.Errorf("Location = %q, want /quote", got)
	}
}
