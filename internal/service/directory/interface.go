// Package directory provides interfaces for types to be in compliance with.
package directory

import (
	"context"

	"github.com/akarpov/linkcut/internal/service/modeluser"
)

// Processor defines a set of methods for types implementing Processor.
type Processor interface {
	Authenticate(ctx context.Context, externalID string, displayName string) (userID string, err error)
	GetUser(ctx context.Context, userID string) (profile modeluser.Profile, err error)
}
