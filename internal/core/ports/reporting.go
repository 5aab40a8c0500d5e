package ports

import (
	"context"

	"github.com/olusolaa/colorful-logging/internal/core/domain"
)

type Reporter interface {
	Report(ctx context.Context, entries []domain.PaletteEntry) error
}
