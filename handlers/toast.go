package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

// SetToast sets a short-lived flash cookie so the toast survives the
// redirect that follows most form posts; the layout script reads and
// clears it on the next page load.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	payload, err := json.Marshal(map[string]string{
		"message": message,
		"type":    toastType,
	})
	if err != nil {
		log.Printf("toast: failed to marshal flash payload: %v", err)
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     "flash_toast",
		Value:    url.QueryEscape(string(payload)),
		Path:     "/",
		MaxAge:   10,
		HttpOnly: false, // the layout script reads it
		SameSite: http.SameSiteLaxMode,
	})
}

// RedirectWithToast sets a toast and redirects, keeping the UI usable
// after a refused or failed action.
func RedirectWithToast(e *core.RequestEvent, location, toastType, message string) error {
	SetToast(e, toastType, message)
	return e.Redirect(http.StatusFound, location)
}
