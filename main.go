package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/config"
	"solarquote/handlers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	app := pocketbase.New()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Serve static files from ./static
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Quote wizard ─────────────────────────────────────────
		se.Router.GET("/quote", handlers.HandleQuoteStart(app))
		se.Router.POST("/quote/project", handlers.HandleQuoteProjectStep(app))
		se.Router.POST("/quote/review", handlers.HandleQuoteReview(app, cfg))

		// ── Quotation downloads ──────────────────────────────────
		se.Router.POST("/quote/export/pdf", handlers.HandleQuoteExportPDF(app, cfg))
		se.Router.POST("/quote/export/excel", handlers.HandleQuoteExportExcel(app, cfg))

		// ── WhatsApp hand-off ────────────────────────────────────
		se.Router.GET("/contact/whatsapp", handlers.HandleWhatsAppContact(app, cfg))

		// Redirect home to the quote wizard
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/quote")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
