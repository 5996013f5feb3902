package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tsawler/pricebook/model"
)

// PostgresStore is a Store backed by PostgreSQL.
type PostgresStore struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// OpenPostgres connects to the database at dsn and migrates it.
func OpenPostgres(ctx context.Context, dsn string, logger *slog.Logger) (*PostgresStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("connecting to database")

	pc, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	pc.ConnConfig.RuntimeParams["application_name"] = "pricebook"

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	for _, stmt := range postgresSchema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
	}

	logger.Info("successfully connected to database")
	return &PostgresStore{pool: pool, logger: logger}, nil
}

func (s *PostgresStore) SaveDocument(ctx context.Context, doc DocumentRecord, items []model.Item) (uuid.UUID, error) {
	doc = newRecord(doc, items)

	err := pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO documents (id, source, invoice_date, imported_at, item_count) VALUES ($1, $2, $3, $4, $5)`,
			doc.ID.String(), doc.Source, doc.InvoiceDate, doc.ImportedAt, doc.ItemCount)
		if err != nil {
			return fmt.Errorf("insert document: %w", err)
		}

		// queued in order so that a later item overwrites an earlier one
		batch := &pgx.Batch{}
		for _, it := range items {
			batch.Queue(`
				INSERT INTO prices (name, invoice_date, cents, price, document_id) VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (name, invoice_date) DO UPDATE SET
					cents = EXCLUDED.cents,
					price = EXCLUDED.price,
					document_id = EXCLUDED.document_id`,
				it.Name, it.Date, it.Price.Cents(), it.Price.Decimal(), doc.ID.String())
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("upsert prices: %w", err)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	s.logger.Debug("document saved", "id", doc.ID.String(), "source", doc.Source, "items", doc.ItemCount)
	return doc.ID, nil
}

func (s *PostgresStore) History(ctx context.Context) (*model.PriceHistory, error) {
	rows, err := s.pool.Query(ctx, `SELECT name, invoice_date, cents FROM prices`)
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

func (s *PostgresStore) Documents(ctx context.Context) ([]DocumentRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id::text, source, invoice_date, imported_at, item_count FROM documents ORDER BY imported_at`)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var out []DocumentRecord
	for rows.Next() {
		var (
			d  DocumentRecord
			id string
		)
		if err := rows.Scan(&id, &d.Source, &d.InvoiceDate, &d.ImportedAt, &d.ItemCount); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		if d.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("document id %q: %w", id, err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
