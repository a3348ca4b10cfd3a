package postgres

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"github.com/Masterminds/squirrel"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/skybi/translation-portal/internal/api/portal/session"
	"time"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Driver represents the PostgreSQL session storage driver implementation
type Driver struct {
	dsn string
	db  *pgxpool.Pool
}

var _ session.Storage = (*Driver)(nil)

// New creates a new empty PostgreSQL session storage driver.
// Use Initialize to open the database connection.
func New(dsn string) *Driver {
	return &Driver{
		dsn: dsn,
	}
}

// Initialize opens the database connection and migrates the database
func (driver *Driver) Initialize(ctx context.Context) error {
	// Perform SQL migrations
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return err
	}
	migrator, err := migrate.NewWithSourceInstance("iofs", source, driver.dsn)
	if err != nil {
		return err
	}
	defer migrator.Close()
	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	// Initialize the database connection pool
	pool, err := pgxpool.Connect(ctx, driver.dsn)
	if err != nil {
		return err
	}
	driver.db = pool
	return nil
}

// Get retrieves a session by its ID
func (driver *Driver) Get(ctx context.Context, id string) (*session.Session, error) {
	query := squirrel.Select("session_id", "access_token", "id_token_claims", "auth_error", "expires").
		From("sessions").
		Where(squirrel.Eq{"session_id": id})
	sql, vals, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	ses := new(session.Session)
	var claims, authError string
	err = driver.db.QueryRow(ctx, sql, vals...).Scan(&ses.ID, &ses.AccessToken, &claims, &authError, &ses.Expires)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := unmarshalMap(claims, &ses.Claims); err != nil {
		return nil, err
	}
	if err := unmarshalMap(authError, &ses.AuthError); err != nil {
		return nil, err
	}
	return ses, nil
}

// Set creates or replaces a session
func (driver *Driver) Set(ctx context.Context, ses *session.Session) error {
	claims, err := json.Marshal(ses.Claims)
	if err != nil {
		return err
	}
	authError, err := json.Marshal(ses.AuthError)
	if err != nil {
		return err
	}

	query := squirrel.Insert("sessions").
		Columns("session_id", "access_token", "id_token_claims", "auth_error", "expires").
		Values(ses.ID, ses.AccessToken, string(claims), string(authError), ses.Expires).
		Suffix("ON CONFLICT (session_id) DO UPDATE SET " +
			"access_token = EXCLUDED.access_token, " +
			"id_token_claims = EXCLUDED.id_token_claims, " +
			"auth_error = EXCLUDED.auth_error, " +
			"expires = EXCLUDED.expires")
	sql, vals, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}

	_, err = driver.db.Exec(ctx, sql, vals...)
	return err
}

// Delete deletes a session by its ID
func (driver *Driver) Delete(ctx context.Context, id string) error {
	_, err := driver.db.Exec(ctx, "DELETE FROM sessions WHERE session_id = $1", id)
	return err
}

// TerminateExpired terminates all sessions that are expired
func (driver *Driver) TerminateExpired(ctx context.Context) (int, error) {
	tag, err := driver.db.Exec(ctx, "DELETE FROM sessions WHERE expires <= $1", time.Now().Unix())
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// Close closes the database connection
func (driver *Driver) Close() {
	if driver.db != nil {
		driver.db.Close()
		driver.db = nil
	}
}

func unmarshalMap(raw string, target *map[string]string) error {
	if raw == "" || raw == "null" {
		*target = nil
		return nil
	}
	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return err
	}
	if len(*target) == 0 {
		*target = nil
	}
	return nil
}
