package adapters

import (
	"io"
	"net/http"

	"github.com/ledgerly/finance-tracker-backend/internal/presentation/protocols"
	log "github.com/sirupsen/logrus"
)

// AdaptRoute bridges a controller to net/http. Controllers never touch the
// ResponseWriter directly.
func AdaptRoute(controller protocols.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpRequest := protocols.HttpRequest{
			Body:      r.Body,
			Header:    r.Header,
			UrlParams: r.URL.Query(),
			Req:       r,
		}

		httpResponse := controller.Handle(httpRequest)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(httpResponse.StatusCode)

		if httpResponse.Body != nil {
			defer httpResponse.Body.Close()
			if _, err := io.Copy(w, httpResponse.Body); err != nil {
				log.Errorf("error writing response body: %v", err)
			}
		}
	}
}
