package report

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pagelab/ppagerank/engine"
)

// StatusServer exposes run progress over HTTP while the iteration is
// in flight.
type StatusServer struct {
	echo *echo.Echo
}

type statusResponse struct {
	State     string  `json:"state"`
	Iteration int     `json:"iteration"`
	Residual  float64 `json:"residual"`
}

// StartStatus serves /healthz and /status on addr in the background.
// The handlers read engine snapshots, so they never block the
// iteration.
func StartStatus(addr string, eng *engine.Engine, log zerolog.Logger) *StatusServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/status", func(c echo.Context) error {
		state, iter, residual := eng.Snapshot()
		return c.JSON(http.StatusOK, statusResponse{
			State:     state.String(),
			Iteration: iter,
			Residual:  residual,
		})
	})
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Str("addr", addr).Msg("status server stopped")
		}
	}()
	return &StatusServer{echo: e}
}

// Close shuts the listener down.
func (s *StatusServer) Close() error { return s.echo.Close() }
