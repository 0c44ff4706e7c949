package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
)

// Pinger is satisfied by *store.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

const healthPingTimeout = 2 * time.Second

type healthService struct {
	pinger Pinger

	logger *logger.Logger
}

func NewHealthService(pinger Pinger, logger *logger.Logger) HealthService {
	return &healthService{pinger: pinger, logger: logger}
}

// Check pings the database with a short timeout.
func (h *healthService) Check(ctx context.Context) error {
	if h.pinger == nil {
		return ErrStorageUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	if err := h.pinger.PingContext(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*healthService.Check").Msg("database is unreachable")
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return nil
}
