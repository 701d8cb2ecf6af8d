// Package restapi exposes the station traffic queries over HTTP in the
// envelope format the dashboard consumes.
package restapi

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"bikeflow.bikeshare.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// Handler assembles the route table and the full middleware chain around
// it: request logging outermost, then rate limiting, security headers and
// compression.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	var handler http.Handler = router
	handler = CompressionMiddleware(handler)
	handler = securityHeaders(handler)
	if api.rateLimiter != nil {
		handler = api.rateLimiter(handler)
	}
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	return handler
}
