package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Domenick1991/airportbooking/api"
	"github.com/Domenick1991/airportbooking/config"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything the HTTP surface exposes.
type Handlers struct {
	Auth     *api.AuthHandler
	Flights  *api.FlightHandler
	Bookings *api.BookingHandler
	Feedback *api.FeedbackHandler
}

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, h Handlers) error {
	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(h),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter assembles the gin engine: user-facing routes at the top level,
// admin views and inventory management under /admin.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.Default()

	h.Auth.Register(router.Group("/auth"))
	h.Flights.Register(router.Group("/flights"))
	h.Bookings.Register(router.Group("/bookings"))
	h.Feedback.Register(router.Group("/feedback"))

	admin := router.Group("/admin")
	h.Flights.RegisterAdmin(admin.Group("/flights"))
	h.Bookings.RegisterAdmin(admin.Group("/bookings"))
	h.Feedback.RegisterAdmin(admin.Group("/feedback"))

	return router
}
