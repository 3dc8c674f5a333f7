package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"solarquote/config"
)

func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

func newFormPost(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func testConfig() *config.Config {
	return &config.Config{
		CompanyName:       "SunSpark Energy",
		CompanyAddress:    "Plot 14, MIDC Industrial Area, Pune 411019",
		CompanyEmail:      "quotes@sunsparkenergy.in",
		WhatsAppNumber:    "919876543210",
		QuoteValidityDays: 15,
	}
}

// validQuoteForm is a complete wizard snapshot as the review page posts it.
func validQuoteForm() url.Values {
	return url.Values{
		"project_type": {"residential"},
		"system_type":  {"ongrid"},
		"capacity_kw":  {"3"},
		"battery":      {"none"},
		"timeline":     {"soon"},
		"location":     {"Pune"},
		"name":         {"Asha Patil"},
		"mobile":       {"9812345678"},
		"email":        {"asha@example.com"},
	}
}
