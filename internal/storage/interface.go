// Package storage provides interfaces for types to be in compliance with.
package storage

import (
	"context"

	"github.com/akarpov/linkcut/internal/storage/modelstorage"
)

// LinkSaver defines a set of methods for types implementing LinkSaver.
type LinkSaver interface {
	SaveLink(ctx context.Context, userID string, URL string) (id int64, err error)
}

// LinkVisitor defines a set of methods for types implementing LinkVisitor.
//
// VisitLink must increment the visit counter and return the stored URL as one
// atomic operation so that concurrent visits never lose increments.
type LinkVisitor interface {
	VisitLink(ctx context.Context, id int64) (URL string, err error)
}

// LinkLister defines a set of methods for types implementing LinkLister.
type LinkLister interface {
	ListLinksByUser(ctx context.Context, userID string) (links []modelstorage.LinkEntry, err error)
}

// LinkDeleter defines a set of methods for types implementing LinkDeleter.
//
// DeleteLink removes a row only when both id and owner match; a missing or
// foreign row is not an error.
type LinkDeleter interface {
	DeleteLink(ctx context.Context, id int64, userID string) error
}

// UserSaver defines a set of methods for types implementing UserSaver.
type UserSaver interface {
	SaveUser(ctx context.Context, user modelstorage.UserEntry) error
}

// UserGetter defines a set of methods for types implementing UserGetter.
type UserGetter interface {
	RetrieveUser(ctx context.Context, id string) (user modelstorage.UserEntry, err error)
	RetrieveUserByExternalID(ctx context.Context, externalID string) (user modelstorage.UserEntry, err error)
}

// Pinger defines a set of methods for types implementing Pinger.
type Pinger interface {
	PingDB() error
}

// Closer defines a set of methods for types implementing Closer.
type Closer interface {
	CloseDB() error
}

// LinkStorage defines a set of embedded interfaces for types implementing LinkStorage.
type LinkStorage interface {
	LinkSaver
	LinkVisitor
	LinkLister
	LinkDeleter
	Pinger
}

// UserStorage defines a set of embedded interfaces for types implementing UserStorage.
type UserStorage interface {
	UserSaver
	UserGetter
}

// Storage defines a set of embedded interfaces for types implementing Storage.
type Storage interface {
	LinkStorage
	UserStorage
	Closer
}
