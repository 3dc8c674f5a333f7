package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/config"
)

// HandleWhatsAppContact hands the visitor off to the business WhatsApp
// number. Only the identifier goes into the link; no quote data is sent.
func HandleWhatsAppContact(app *pocketbase.PocketBase, cfg *config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.Redirect(http.StatusFound, "https://wa.me/"+cfg.WhatsAppNumber)
	}
}
