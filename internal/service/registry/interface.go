// Package registry provides interfaces for types to be in compliance with.
package registry

import (
	"context"

	"github.com/akarpov/linkcut/internal/service/modellink"
)

// Processor defines a set of methods for types implementing Processor.
type Processor interface {
	Shorten(ctx context.Context, userID string, URL string) (slug string, err error)
	Visit(ctx context.Context, slug string) (URL string, err error)
	ListByUser(ctx context.Context, userID string) (links []modellink.LinkSummary, err error)
	Delete(ctx context.Context, userID string, slug string) error
	PingDB() error
}
