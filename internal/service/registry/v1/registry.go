// Package registry provides functionality for managing user-owned short links.
package registry

import (
	"context"
	"net/url"

	serviceErrors "github.com/akarpov/linkcut/internal/service/errors"
	"github.com/akarpov/linkcut/internal/service/modellink"
	"github.com/akarpov/linkcut/internal/service/registry"
	"github.com/akarpov/linkcut/internal/service/slug"
	"github.com/akarpov/linkcut/internal/storage"
	storageErrors "github.com/akarpov/linkcut/internal/storage/errors"
)

// Check interface implementation explicitly
var (
	_ registry.Processor = (*Registry)(nil)
)

// Registry struct defines data structure handling and provides support for adding new implementations.
type Registry struct {
	codec       slug.Codec
	linkStorage storage.LinkStorage
}

// InitRegistry initializes a Registry object and sets its attributes.
func InitRegistry(codec slug.Codec, linkStorage storage.LinkStorage) (*Registry, error) {
	if codec == nil {
		return nil, &serviceErrors.ServiceFoundNilCodec{Msg: "nil codec was passed to service initializer"}
	}
	if linkStorage == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	return &Registry{codec: codec, linkStorage: linkStorage}, nil
}

// Shorten persists a new link owned by userID and returns its slug.
func (reg *Registry) Shorten(ctx context.Context, userID string, URL string) (string, error) {
	_, err := url.ParseRequestURI(URL)
	if err != nil {
		return "", &serviceErrors.ServiceIncorrectInputURL{Msg: err.Error()}
	}
	id, err := reg.linkStorage.SaveLink(ctx, userID, URL)
	if err != nil {
		return "", err
	}
	return reg.codec.Encode(id)
}

// Visit resolves a slug to its target URL incrementing the visit counter by exactly
// one. A slug that does not decode is reported the same way as a decoded identifier
// with no record behind it, so probing cannot tell malformed from absent.
func (reg *Registry) Visit(ctx context.Context, encoded string) (string, error) {
	id, err := reg.codec.Decode(encoded)
	if err != nil {
		return "", &storageErrors.NotFoundError{ID: encoded, Err: err}
	}
	return reg.linkStorage.VisitLink(ctx, id)
}

// ListByUser returns all links owned by userID with slugs derived at read time.
func (reg *Registry) ListByUser(ctx context.Context, userID string) ([]modellink.LinkSummary, error) {
	entries, err := reg.linkStorage.ListLinksByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	var links []modellink.LinkSummary
	for _, entry := range entries {
		encoded, err := reg.codec.Encode(entry.ID)
		if err != nil {
			return nil, err
		}
		links = append(links, modellink.LinkSummary{
			Slug:       encoded,
			URL:        entry.URL,
			VisitCount: entry.VisitCount,
		})
	}
	return links, nil
}

// Delete removes a link owned by userID. A slug that does not decode, a missing
// record or a record owned by another user are all silent no-ops.
func (reg *Registry) Delete(ctx context.Context, userID string, encoded string) error {
	id, err := reg.codec.Decode(encoded)
	if err != nil {
		return nil
	}
	return reg.linkStorage.DeleteLink(ctx, id, userID)
}

// PingDB checks the underlying storage connection.
func (reg *Registry) PingDB() error {
	return reg.linkStorage.PingDB()
}
