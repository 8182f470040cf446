package handlers

import (
	"context"

	"github.com/randytsao24/mrtroute/internal/advisory"
)

// AlertProvider abstracts the service alerts source for testability.
type AlertProvider interface {
	ForLines(ctx context.Context, lines []string) ([]advisory.Alert, error)
}
