// Package directory provides functionality for mapping external federated
// identities to internal user identifiers.
package directory

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/akarpov/linkcut/internal/service/directory"
	serviceErrors "github.com/akarpov/linkcut/internal/service/errors"
	"github.com/akarpov/linkcut/internal/service/modeluser"
	"github.com/akarpov/linkcut/internal/storage"
	storageErrors "github.com/akarpov/linkcut/internal/storage/errors"
	"github.com/akarpov/linkcut/internal/storage/modelstorage"
)

// Check interface implementation explicitly
var (
	_ directory.Processor = (*Directory)(nil)
)

// Directory struct defines data structure handling and provides support for adding new implementations.
type Directory struct {
	userStorage storage.UserStorage
}

// InitDirectory initializes a Directory object and sets its attributes.
func InitDirectory(userStorage storage.UserStorage) (*Directory, error) {
	if userStorage == nil {
		return nil, &serviceErrors.ServiceFoundNilStorage{Msg: "nil storage was passed to service initializer"}
	}
	return &Directory{userStorage: userStorage}, nil
}

// Authenticate returns the internal user id for an external identity, creating the
// user on first sight. The display name is first-write-wins, repeat logins never
// update it. Two first logins racing each other are resolved by the storage
// uniqueness constraint on external_id: the loser re-runs the lookup and adopts
// the winner's id instead of surfacing an error.
func (dir *Directory) Authenticate(ctx context.Context, externalID string, displayName string) (string, error) {
	user, err := dir.userStorage.RetrieveUserByExternalID(ctx, externalID)
	if err == nil {
		return user.ID, nil
	}
	var notFoundError *storageErrors.NotFoundError
	if !errors.As(err, &notFoundError) {
		return "", err
	}
	entry := modelstorage.UserEntry{
		ID:          uuid.New().String(),
		ExternalID:  externalID,
		DisplayName: displayName,
	}
	err = dir.userStorage.SaveUser(ctx, entry)
	if err == nil {
		return entry.ID, nil
	}
	var alreadyExistsError *storageErrors.AlreadyExistsError
	if !errors.As(err, &alreadyExistsError) {
		return "", err
	}
	winner, err := dir.userStorage.RetrieveUserByExternalID(ctx, externalID)
	if err != nil {
		return "", err
	}
	return winner.ID, nil
}

// GetUser returns user data by internal identifier.
func (dir *Directory) GetUser(ctx context.Context, userID string) (modeluser.Profile, error) {
	user, err := dir.userStorage.RetrieveUser(ctx, userID)
	if err != nil {
		return modeluser.Profile{}, err
	}
	return modeluser.Profile{UserID: user.ID, DisplayName: user.DisplayName}, nil
}
