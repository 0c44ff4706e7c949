package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealthService_Check(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		svc := NewHealthService(pingerFunc(func(ctx context.Context) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			return nil
		}), logger.Nop())

		assert.NoError(t, svc.Check(context.Background()))
	})

	t.Run("unreachable", func(t *testing.T) {
		svc := NewHealthService(pingerFunc(func(context.Context) error { return errDB }), logger.Nop())

		err := svc.Check(context.Background())
		assert.ErrorIs(t, err, ErrStorageUnavailable)
		assert.ErrorIs(t, err, errDB)
	})

	t.Run("no database", func(t *testing.T) {
		svc := NewHealthService(nil, logger.Nop())

		assert.ErrorIs(t, svc.Check(context.Background()), ErrStorageUnavailable)
	})
}
