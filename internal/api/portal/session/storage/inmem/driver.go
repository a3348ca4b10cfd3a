package inmem

import (
	"context"
	"github.com/hashicorp/go-memdb"
	"github.com/skybi/translation-portal/internal/api/portal/session"
	"time"
)

var dbSchema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		"sessions": {
			Name: "sessions",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:         "id",
					Unique:       true,
					AllowMissing: false,
					Indexer:      &memdb.StringFieldIndex{Field: "ID"},
				},
				"expires": {
					Name:         "expires",
					Unique:       false,
					AllowMissing: false,
					Indexer:      &memdb.IntFieldIndex{Field: "Expires"},
				},
			},
		},
	},
}

// Driver represents the in-memory session storage driver built using hashicorp/go-memdb
type Driver struct {
	db *memdb.MemDB
}

var _ session.Storage = (*Driver)(nil)

// New creates a new empty in-memory session storage driver
func New() (*Driver, error) {
	db, err := memdb.NewMemDB(dbSchema)
	if err != nil {
		return nil, err
	}
	return &Driver{db}, nil
}

// Get retrieves a session by its ID.
// The returned session is a copy; changes have to be written back using Set.
func (driver *Driver) Get(_ context.Context, id string) (*session.Session, error) {
	txn := driver.db.Txn(false)
	obj, err := txn.First("sessions", "id", id)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}

	return clone(obj.(*session.Session)), nil
}

// Set creates or replaces a session
func (driver *Driver) Set(_ context.Context, ses *session.Session) error {
	txn := driver.db.Txn(true)
	defer txn.Abort()
	if err := txn.Insert("sessions", clone(ses)); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// Delete deletes a session by its ID
func (driver *Driver) Delete(_ context.Context, id string) error {
	txn := driver.db.Txn(true)
	defer txn.Abort()
	if _, err := txn.DeleteAll("sessions", "id", id); err != nil {
		return err
	}
	txn.Commit()
	return nil
}

// TerminateExpired terminates all sessions that are expired
func (driver *Driver) TerminateExpired(_ context.Context) (int, error) {
	txn := driver.db.Txn(true)
	defer txn.Abort()

	it, err := txn.LowerBound("sessions", "expires", int64(0))
	if err != nil {
		return 0, err
	}

	// Collect first; deleting while iterating the radix tree is not supported
	now := time.Now().Unix()
	var expired []*session.Session
	for obj := it.Next(); obj != nil; obj = it.Next() {
		ses := obj.(*session.Session)
		if ses.Expires > now {
			break
		}
		expired = append(expired, ses)
	}
	for _, ses := range expired {
		if err := txn.Delete("sessions", ses); err != nil {
			return 0, err
		}
	}

	txn.Commit()
	return len(expired), nil
}

// Close is a no-op as the in-memory database holds no external resources
func (driver *Driver) Close() {}

func clone(ses *session.Session) *session.Session {
	cpy := *ses
	cpy.Claims = copyMap(ses.Claims)
	cpy.AuthError = copyMap(ses.AuthError)
	return &cpy
}

func copyMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	dst := make(map[string]string, len(src))
	for key, val := range src {
		dst[key] = val
	}
	return dst
}
