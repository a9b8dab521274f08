package postgres

import (
	"fmt"
	"log"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"hackfest/internal/config"
)

// NewDB creates a new PostgreSQL connection pool.
func NewDB(cfg *config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	return db, nil
}

// Accessor lazily opens and memoizes a single shared database handle. When
// connection settings are absent the accessor reports "not configured" on
// every call for the lifetime of the process; config appearing later is not
// picked up. Dependents degrade to serving empty data instead of failing.
type Accessor struct {
	cfg  *config.DBConfig
	once sync.Once
	db   *sqlx.DB
}

// NewAccessor creates an Accessor over the given settings. No connection is
// attempted until the first DB call.
func NewAccessor(cfg *config.DBConfig) *Accessor {
	return &Accessor{cfg: cfg}
}

// DB returns the shared handle, or (nil, false) when the store is not
// configured or the initial connection failed.
func (a *Accessor) DB() (*sqlx.DB, bool) {
	a.once.Do(func() {
		if !a.cfg.Configured() {
			log.Printf("postgres.Accessor: no database configured, content store disabled")
			return
		}
		db, err := NewDB(a.cfg)
		if err != nil {
			log.Printf("postgres.Accessor: %v", err)
			return
		}
		a.db = db
	})
	return a.db, a.db != nil
}

// Close releases the shared handle if one was opened.
func (a *Accessor) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
