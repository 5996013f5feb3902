package store

// Schemas are idempotent and applied on every open.

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		id           TEXT PRIMARY KEY,
		source       TEXT NOT NULL,
		invoice_date TEXT NOT NULL,
		imported_at  TEXT NOT NULL,
		item_count   INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS prices (
		name         TEXT NOT NULL,
		invoice_date TEXT NOT NULL,
		cents        INTEGER NOT NULL,
		price        TEXT NOT NULL,
		document_id  TEXT NOT NULL REFERENCES documents(id),
		PRIMARY KEY (name, invoice_date)
	)`,
	`CREATE INDEX IF NOT EXISTS prices_document_idx ON prices(document_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS documents (
		id           UUID PRIMARY KEY,
		source       TEXT NOT NULL,
		invoice_date TEXT NOT NULL,
		imported_at  TIMESTAMPTZ NOT NULL,
		item_count   INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS prices (
		name         TEXT NOT NULL,
		invoice_date TEXT NOT NULL,
		cents        BIGINT NOT NULL,
		price        NUMERIC(12, 2) NOT NULL,
		document_id  UUID NOT NULL REFERENCES documents(id),
		PRIMARY KEY (name, invoice_date)
	)`,
	`CREATE INDEX IF NOT EXISTS prices_document_idx ON prices(document_id)`,
}
