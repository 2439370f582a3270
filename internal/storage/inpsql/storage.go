// Package inpsql provides PostgreSQL-backed storage for links and users.
package inpsql

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"sync"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"github.com/akarpov/linkcut/internal/config"
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
	log zerolog.Logger
	Cfg *config.Config
	DB  *sqlx.DB
}

// InitStorage initializes a Storage object, sets its attributes and starts a listener
// for graceful DB disconnection upon context cancellation.
func InitStorage(ctx context.Context, wg *sync.WaitGroup, cfg *config.Config, log zerolog.Logger) (*Storage, error) {
	db, err := sqlx.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	st := Storage{
		log: log,
		Cfg: cfg,
		DB:  db,
	}
	err = st.createTables(ctx)
	if err != nil {
		return nil, err
	}
	go func() {
		defer wg.Done()
		<-ctx.Done()
		err := st.DB.Close()
		if err != nil {
			st.log.Error().Err(err).Msg("PSQL DB connection closure failed")
			return
		}
		st.log.Info().Msg("PSQL DB connection closed successfully")
	}()
	return &st, nil
}

// SaveLink stores a new link row owned by userID and returns its generated identifier.
func (s *Storage) SaveLink(ctx context.Context, userID string, URL string) (id int64, err error) {
	query := `INSERT INTO links (user_id, url) VALUES ($1, $2) RETURNING id`
	// create channels for listening to the go routine result
	saveDone := make(chan int64, 1)
	saveError := make(chan error, 1)
	go func() {
		var linkID int64
		err := s.DB.GetContext(ctx, &linkID, query, userID, URL)
		if err != nil {
			saveError <- &storageErrors.ExecutionPSQLError{Err: err}
			return
		}
		saveDone <- linkID
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		s.log.Warn().Err(ctx.Err()).Msg("saving link timed out")
		return 0, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case saveErr := <-saveError:
		s.log.Error().Err(saveErr).Msg("saving link failed")
		return 0, saveErr
	case id := <-saveDone:
		s.log.Debug().Int64("id", id).Str("user_id", userID).Msg("saved link")
		return id, nil
	}
}

// VisitLink increments the visit counter of a link and returns its URL. The increment
// and the read are one SQL statement, row-level locking makes concurrent visits safe.
func (s *Storage) VisitLink(ctx context.Context, id int64) (URL string, err error) {
	query := `UPDATE links SET visit_count = visit_count + 1 WHERE id = $1 RETURNING url`
	// create channels for listening to the go routine result
	visitDone := make(chan string, 1)
	visitError := make(chan error, 1)
	go func() {
		var url string
		err := s.DB.GetContext(ctx, &url, query, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				visitError <- &storageErrors.NotFoundError{ID: formatID(id), Err: err}
				return
			}
			visitError <- &storageErrors.ExecutionPSQLError{Err: err}
			return
		}
		visitDone <- url
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		s.log.Warn().Err(ctx.Err()).Msg("visiting link timed out")
		return "", &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case visitErr := <-visitError:
		var notFoundError *storageErrors.NotFoundError
		if errors.As(visitErr, &notFoundError) {
			s.log.Debug().Int64("id", id).Msg("visited link not found")
		} else {
			s.log.Error().Err(visitErr).Msg("visiting link failed")
		}
		return "", visitErr
	case URL := <-visitDone:
		return URL, nil
	}
}

// ListLinksByUser returns all link rows owned by userID ordered by identifier.
func (s *Storage) ListLinksByUser(ctx context.Context, userID string) (links []modelstorage.LinkEntry, err error) {
	query := `SELECT id, user_id, url, visit_count FROM links WHERE user_id = $1 ORDER BY id`
	// create channels for listening to the go routine result
	listDone := make(chan []modelstorage.LinkEntry, 1)
	listError := make(chan error, 1)
	go func() {
		var entries []modelstorage.LinkEntry
		err := s.DB.SelectContext(ctx, &entries, query, userID)
		if err != nil {
			listError <- &storageErrors.ScanningPSQLError{Err: err}
			return
		}
		listDone <- entries
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		s.log.Warn().Err(ctx.Err()).Msg("listing links timed out")
		return nil, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case listErr := <-listError:
		s.log.Error().Err(listErr).Msg("listing links failed")
		return nil, listErr
	case links := <-listDone:
		return links, nil
	}
}

// DeleteLink removes a link row when both id and owner match, a missing or foreign
// row is a silent no-op.
func (s *Storage) DeleteLink(ctx context.Context, id int64, userID string) error {
	query := `DELETE FROM links WHERE id = $1 AND user_id = $2`
	// create channels for listening to the go routine result
	deleteDone := make(chan bool, 1)
	deleteError := make(chan error, 1)
	go func() {
		// the affected row count is deliberately not inspected, deleting an absent or
		// foreign link must be indistinguishable from success
		_, err := s.DB.ExecContext(ctx, query, id, userID)
		if err != nil {
			deleteError <- &storageErrors.ExecutionPSQLError{Err: err}
			return
		}
		deleteDone <- true
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		s.log.Warn().Err(ctx.Err()).Msg("deleting link timed out")
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case deleteErr := <-deleteError:
		s.log.Error().Err(deleteErr).Msg("deleting link failed")
		return deleteErr
	case <-deleteDone:
		s.log.Debug().Int64("id", id).Str("user_id", userID).Msg("deleted link")
		return nil
	}
}

// SaveUser stores a new user row. A unique violation on external_id is returned as
// AlreadyExistsError so that the directory service can recover from concurrent
// first logins by re-querying.
func (s *Storage) SaveUser(ctx context.Context, user modelstorage.UserEntry) error {
	query := `INSERT INTO users (id, external_id, display_name) VALUES ($1, $2, $3)`
	// create channels for listening to the go routine result
	saveDone := make(chan bool, 1)
	saveError := make(chan error, 1)
	go func() {
		_, err := s.DB.ExecContext(ctx, query, user.ID, user.ExternalID, user.DisplayName)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				saveError <- &storageErrors.AlreadyExistsError{ID: user.ExternalID, Err: err}
				return
			}
			saveError <- &storageErrors.ExecutionPSQLError{Err: err}
			return
		}
		saveDone <- true
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		s.log.Warn().Err(ctx.Err()).Msg("saving user timed out")
		return &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case saveErr := <-saveError:
		var alreadyExistsError *storageErrors.AlreadyExistsError
		if errors.As(saveErr, &alreadyExistsError) {
			s.log.Debug().Str("external_id", user.ExternalID).Msg("user already exists")
		} else {
			s.log.Error().Err(saveErr).Msg("saving user failed")
		}
		return saveErr
	case <-saveDone:
		s.log.Debug().Str("user_id", user.ID).Msg("saved user")
		return nil
	}
}

// RetrieveUser returns a user row by its internal identifier.
func (s *Storage) RetrieveUser(ctx context.Context, id string) (user modelstorage.UserEntry, err error) {
	query := `SELECT id, external_id, display_name FROM users WHERE id = $1`
	return s.retrieveUser(ctx, query, id)
}

// RetrieveUserByExternalID returns a user row by its federated identity.
func (s *Storage) RetrieveUserByExternalID(ctx context.Context, externalID string) (user modelstorage.UserEntry, err error) {
	query := `SELECT id, external_id, display_name FROM users WHERE external_id = $1`
	return s.retrieveUser(ctx, query, externalID)
}

func (s *Storage) retrieveUser(ctx context.Context, query string, key string) (modelstorage.UserEntry, error) {
	// create channels for listening to the go routine result
	retrieveDone := make(chan modelstorage.UserEntry, 1)
	retrieveError := make(chan error, 1)
	go func() {
		var entry modelstorage.UserEntry
		err := s.DB.GetContext(ctx, &entry, query, key)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				retrieveError <- &storageErrors.NotFoundError{ID: key, Err: err}
				return
			}
			retrieveError <- &storageErrors.ScanningPSQLError{Err: err}
			return
		}
		retrieveDone <- entry
	}()

	// wait for the first channel to retrieve a value
	select {
	case <-ctx.Done():
		s.log.Warn().Err(ctx.Err()).Msg("retrieving user timed out")
		return modelstorage.UserEntry{}, &storageErrors.ContextTimeoutExceededError{Err: ctx.Err()}
	case retrieveErr := <-retrieveError:
		var notFoundError *storageErrors.NotFoundError
		if !errors.As(retrieveErr, &notFoundError) {
			s.log.Error().Err(retrieveErr).Msg("retrieving user failed")
		}
		return modelstorage.UserEntry{}, retrieveErr
	case user := <-retrieveDone:
		return user, nil
	}
}

// PingDB checks the PSQL DB connection status.
func (s *Storage) PingDB() error {
	return s.DB.Ping()
}

// CloseDB closes the PSQL DB connection.
func (s *Storage) CloseDB() error {
	return s.DB.Close()
}

// formatID renders a link identifier for error reporting.
func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// createTables creates tables for PSQL DB storage if not exist.
func (s *Storage) createTables(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS users (
		id           text PRIMARY KEY,
		external_id  text NOT NULL UNIQUE,
		display_name text NOT NULL
	);
	CREATE TABLE IF NOT EXISTS links (
		id          bigserial PRIMARY KEY,
		user_id     text NOT NULL REFERENCES users (id),
		url         text NOT NULL,
		visit_count bigint NOT NULL DEFAULT 0
	);`
	_, err := s.DB.ExecContext(ctx, query)
	return err
}
