// Package store persists extracted invoice prices so that a price history
// can be built up across many runs.
//
// Two backends are provided: SQLite through database/sql and the pure-Go
// modernc.org/sqlite driver, and PostgreSQL through a pgx connection
// pool. Both keep one price per (item name, invoice date); saving a later
// document with the same item and date replaces the earlier price, which
// matches model.PriceHistory.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tsawler/pricebook/model"
)

// Store records documents and their items.
type Store interface {
	// SaveDocument records a processed document and upserts its items in
	// order. It returns the new document's ID.
	SaveDocument(ctx context.Context, doc DocumentRecord, items []model.Item) (uuid.UUID, error)
	// History returns every stored price.
	History(ctx context.Context) (*model.PriceHistory, error)
	// Documents lists the recorded documents, oldest first.
	Documents(ctx context.Context) ([]DocumentRecord, error)
	Close() error
}

// DocumentRecord describes one imported invoice.
type DocumentRecord struct {
	ID          uuid.UUID
	Source      string
	InvoiceDate string
	ImportedAt  time.Time
	ItemCount   int
}

// Config selects and configures a backend.
type Config struct {
	// Driver is "sqlite" or "postgres".
	Driver string
	// DSN is a file path for SQLite or a connection URL for PostgreSQL.
	DSN string
	// Timeout bounds connecting and migrating.
	Timeout time.Duration
}

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("unknown store driver")

// Open connects to the configured backend and migrates its schema.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	switch cfg.Driver {
	case "sqlite":
		s, err := OpenSQLite(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "postgres", "postgresql":
		s, err := OpenPostgres(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}

// newRecord fills in the generated fields of a document record
func newRecord(doc DocumentRecord, items []model.Item) DocumentRecord {
	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}
	if doc.ImportedAt.IsZero() {
		doc.ImportedAt = time.Now().UTC()
	}
	if doc.InvoiceDate == "" && len(items) > 0 {
		doc.InvoiceDate = items[0].Date
	}
	doc.ItemCount = len(items)
	return doc
}
