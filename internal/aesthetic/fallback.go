package aesthetic

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/designdex/internal/domain"
)

// provider generates aesthetic directions.
type provider interface {
	Generate(ctx context.Context) (domain.AestheticDirection, error)
}

// Fallback tries a primary provider and switches to a backup when the
// primary fails, so a recommendation never loses its aesthetic facet
// to a flaky provider.
type Fallback struct {
	primary provider
	backup  provider
	logger  *zap.Logger
}

// WithFallback wraps primary with backup.
func WithFallback(primary, backup provider, logger *zap.Logger) *Fallback {
	return &Fallback{primary: primary, backup: backup, logger: logger}
}

// Generate returns the primary provider's direction, or the backup's
// when the primary fails.
func (f *Fallback) Generate(ctx context.Context) (domain.AestheticDirection, error) {
	dir, err := f.primary.Generate(ctx)
	if err == nil {
		return dir, nil
	}
	f.logger.Warn("Aesthetic provider failed, falling back to presets", zap.Error(err))
	return f.backup.Generate(ctx)
}
