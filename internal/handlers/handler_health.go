package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/gin-gonic/gin"
)

const probeTimeout = 2 * time.Second

// Probe checks one dependency of the server, such as the database or Redis.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthResponse reports the state of each probed dependency.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// getHealth godoc
// @Summary Show the status of the server
// @Description Runs every dependency probe. Answers 503 when any of them fails.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func getHealth(probes []Probe) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := HealthResponse{Status: "ok"}
		status := http.StatusOK
		for _, p := range probes {
			if resp.Checks == nil {
				resp.Checks = make(map[string]string, len(probes))
			}
			ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
			err := p.Check(ctx)
			cancel()
			if err != nil {
				middleware.GetLoggerFromContext(c).Error("Health probe failed", slog.String("probe", p.Name), slog.String("error", err.Error()))
				resp.Checks[p.Name] = "unavailable"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[p.Name] = "ok"
		}
		c.JSON(status, resp)
	}
}
