package middleware

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"salon-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// SweepMiddleware triggers the expired-hold sweep from ordinary request
// traffic: roughly one request in sampleRate runs it, in the
// background, detached from the request's lifecycle. There is no timer
// and no global scheduler; idle systems simply sweep on their next
// request.
type SweepMiddleware struct {
	expiration commands.ExpirationCommands
	sampleRate int64
	counter    atomic.Int64
}

func NewSweepMiddleware(expiration commands.ExpirationCommands, sampleRate int) *SweepMiddleware {
	if sampleRate < 1 {
		sampleRate = 1
	}
	return &SweepMiddleware{
		expiration: expiration,
		sampleRate: int64(sampleRate),
	}
}

func (m *SweepMiddleware) Sampled() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.counter.Add(1)%m.sampleRate == 0 {
			go m.runSweep()
		}
		c.Next()
	}
}

func (m *SweepMiddleware) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := m.expiration.SweepExpiredHolds(ctx); err != nil {
		slog.Warn("background hold sweep failed", "error", err.Error())
	}
}
