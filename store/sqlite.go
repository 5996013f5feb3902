package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/tsawler/pricebook/model"
)

// timeLayout is fixed width so that stored timestamps sort as text
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore is a Store backed by a SQLite file.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// OpenSQLite opens or creates the database at path and migrates it.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("opening sqlite store", "path", path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// a single writer avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA foreign_keys = ON", "PRAGMA busy_timeout = 5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite %s: %w", pragma, err)
		}
	}
	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
	}

	return &SQLiteStore{db: db, logger: logger}, nil
}

func (s *SQLiteStore) SaveDocument(ctx context.Context, doc DocumentRecord, items []model.Item) (uuid.UUID, error) {
	doc = newRecord(doc, items)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO documents (id, source, invoice_date, imported_at, item_count) VALUES (?, ?, ?, ?, ?)`,
		doc.ID.String(), doc.Source, doc.InvoiceDate, doc.ImportedAt.UTC().Format(timeLayout), doc.ItemCount)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert document: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO prices (name, invoice_date, cents, price, document_id) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (name, invoice_date) DO UPDATE SET
			cents = excluded.cents,
			price = excluded.price,
			document_id = excluded.document_id`)
	if err != nil {
		return uuid.Nil, fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, it := range items {
		if _, err := stmt.ExecContext(ctx, it.Name, it.Date, it.Price.Cents(), it.Price.Decimal().StringFixed(2), doc.ID.String()); err != nil {
			return uuid.Nil, fmt.Errorf("upsert %q on %s: %w", it.Name, it.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit: %w", err)
	}
	s.logger.Debug("document saved", "id", doc.ID.String(), "source", doc.Source, "items", doc.ItemCount)
	return doc.ID, nil
}

func (s *SQLiteStore) History(ctx context.Context) (*model.PriceHistory, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name, invoice_date, cents FROM prices`)
	if err != nil {
		return nil, fmt.Errorf("query prices: %w", err)
	}
	defer rows.Close()

	h := model.NewPriceHistory()
	for rows.Next() {
		var (
			name, date string
			cents      int64
		)
		if err := rows.Scan(&name, &date, &cents); err != nil {
			return nil, fmt.Errorf("scan price: %w", err)
		}
		h.Set(name, date, model.NewPrice(cents))
	}
	return h, rows.Err()
}

func (s *SQLiteStore) Documents(ctx context.Context) ([]DocumentRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, invoice_date, imported_at, item_count FROM documents ORDER BY imported_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var out []DocumentRecord
	for rows.Next() {
		var (
			d        DocumentRecord
			id, when string
		)
		if err := rows.Scan(&id, &d.Source, &d.InvoiceDate, &when, &d.ItemCount); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if d.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("document id %q: %w", id, err)
		}
		if d.ImportedAt, err = time.Parse(timeLayout, when); err != nil {
			return nil, fmt.Errorf("document %s imported_at: %w", id, err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
