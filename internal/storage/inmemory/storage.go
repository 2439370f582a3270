// Package inmemory provides map-backed storage for links and users, used when no
// database DSN is configured and throughout the test suites.
package inmemory

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/akarpov/linkcut/internal/storage"
	storageErrors "github.com/akarpov/linkcut/internal/storage/errors"
	"github.com/akarpov/linkcut/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ storage.Storage = (*Storage)(nil)
)

// Storage struct defines data structure handling and provides support for adding new implementations.
type Storage struct {
	mu           sync.Mutex
	log          zerolog.Logger
	links        map[int64]modelstorage.LinkEntry
	users        map[string]modelstorage.UserEntry
	usersByExtID map[string]string
	lastLinkID   int64
}

// InitStorage initializes a Storage object and sets its attributes.
func InitStorage(log zerolog.Logger) *Storage {
	return &Storage{
		log:          log,
		links:        make(map[int64]modelstorage.LinkEntry),
		users:        make(map[string]modelstorage.UserEntry),
		usersByExtID: make(map[string]string),
	}
}

// SaveLink stores a new link row owned by userID and returns its generated identifier.
func (s *Storage) SaveLink(ctx context.Context, userID string, URL string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// identifiers are monotonic and never recycled, deletion leaves gaps
	s.lastLinkID++
	id := s.lastLinkID
	s.links[id] = modelstorage.LinkEntry{ID: id, UserID: userID, URL: URL}
	s.log.Debug().Int64("id", id).Str("user_id", userID).Msg("saved link")
	return id, nil
}

// VisitLink increments the visit counter of a link and returns its URL, both under
// one lock acquisition so concurrent visits never lose increments.
func (s *Storage) VisitLink(ctx context.Context, id int64) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.links[id]
	if !ok {
		return "", &storageErrors.NotFoundError{ID: formatID(id)}
	}
	entry.VisitCount++
	s.links[id] = entry
	return entry.URL, nil
}

// ListLinksByUser returns all link rows owned by userID ordered by identifier.
func (s *Storage) ListLinksByUser(ctx context.Context, userID string) ([]modelstorage.LinkEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var links []modelstorage.LinkEntry
	for _, entry := range s.links {
		if entry.UserID == userID {
			links = append(links, entry)
		}
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	return links, nil
}

// DeleteLink removes a link row when both id and owner match, a missing or foreign
// row is a silent no-op.
func (s *Storage) DeleteLink(ctx context.Context, id int64, userID string) error {
	if err := ctx.Err(); err != nil {
		return &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.links[id]
	if !ok || entry.UserID != userID {
		return nil
	}
	delete(s.links, id)
	s.log.Debug().Int64("id", id).Str("user_id", userID).Msg("deleted link")
	return nil
}

// SaveUser stores a new user row enforcing external_id uniqueness.
func (s *Storage) SaveUser(ctx context.Context, user modelstorage.UserEntry) error {
	if err := ctx.Err(); err != nil {
		return &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.usersByExtID[user.ExternalID]; ok {
		return &storageErrors.AlreadyExistsError{ID: user.ExternalID}
	}
	s.users[user.ID] = user
	s.usersByExtID[user.ExternalID] = user.ID
	s.log.Debug().Str("user_id", user.ID).Msg("saved user")
	return nil
}

// RetrieveUser returns a user row by its internal identifier.
func (s *Storage) RetrieveUser(ctx context.Context, id string) (modelstorage.UserEntry, error) {
	if err := ctx.Err(); err != nil {
		return modelstorage.UserEntry{}, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return modelstorage.UserEntry{}, &storageErrors.NotFoundError{ID: id}
	}
	return user, nil
}

// RetrieveUserByExternalID returns a user row by its federated identity.
func (s *Storage) RetrieveUserByExternalID(ctx context.Context, externalID string) (modelstorage.UserEntry, error) {
	if err := ctx.Err(); err != nil {
		return modelstorage.UserEntry{}, &storageErrors.ContextTimeoutExceededError{Err: err}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.usersByExtID[externalID]
	if !ok {
		return modelstorage.UserEntry{}, &storageErrors.NotFoundError{ID: externalID}
	}
	return s.users[id], nil
}

// formatID renders a link identifier for error reporting.
func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// PingDB is a mock for PSQL DB pinger for in-memory handling.
func (s *Storage) PingDB() error {
	return nil
}

// CloseDB is a mock for PSQL DB closer for in-memory handling.
func (s *Storage) CloseDB() error {
	return nil
}
