package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/kapu/contract-assistant-go/internal/domain"
	apperrors "github.com/kapu/contract-assistant-go/pkg/errors"
)

// PostgresConfig holds the connection parameters for the document database.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// PostgresStore persists documents in PostgreSQL.
type PostgresStore struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStore(cfg PostgresConfig, logger *zap.Logger) (*PostgresStore, error) {
	if cfg.SSLMode == "" {
		cfg.SSLMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to open postgres", "connect", "", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, apperrors.NewStoreError("failed to ping postgres", "connect", "", err)
	}

	store := &PostgresStore{db: db, logger: logger}
	if err := store.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("PostgreSQL document store connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
	)
	return store, nil
}

func (p *PostgresStore) ensureSchema(ctx context.Context) error {
	const schema = `
		CREATE TABLE IF NOT EXISTS documents (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL DEFAULT '',
			text       TEXT NOT NULL DEFAULT '',
			legal_type TEXT NOT NULL DEFAULT '',
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`

	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return apperrors.NewStoreError("failed to create documents table", "migrate", "documents", err)
	}
	return nil
}

func (p *PostgresStore) Get(ctx context.Context, id string) (*domain.Document, bool, error) {
	const query = `SELECT id, title, text, legal_type FROM documents WHERE id = $1`

	var doc domain.Document
	err := p.db.QueryRowContext(ctx, query, id).Scan(&doc.ID, &doc.Title, &doc.Text, &doc.LegalType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.NewStoreError("failed to load document", "get", id, err)
	}
	return &doc, true, nil
}

func (p *PostgresStore) Put(ctx context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return apperrors.NewStoreError("document requires an ID", "put", "", nil)
	}

	const query = `
		INSERT INTO documents (id, title, text, legal_type, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title, text = EXCLUDED.text,
		    legal_type = EXCLUDED.legal_type, updated_at = now()`

	if _, err := p.db.ExecContext(ctx, query, doc.ID, doc.Title, doc.Text, doc.LegalType); err != nil {
		return apperrors.NewStoreError("failed to save document", "put", doc.ID, err)
	}
	return nil
}

func (p *PostgresStore) List(ctx context.Context) ([]*domain.Document, error) {
	const query = `SELECT id, title, text, legal_type FROM documents ORDER BY id`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError("failed to list documents", "list", "", err)
	}
	defer rows.Close()

	var docs []*domain.Document
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Text, &doc.LegalType); err != nil {
			return nil, apperrors.NewStoreError("failed to scan document row", "list", "", err)
		}
		docs = append(docs, &doc)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError("document row iteration failed", "list", "", err)
	}
	return docs, nil
}

func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id); err != nil {
		return apperrors.NewStoreError("failed to delete document", "delete", id, err)
	}
	return nil
}

func (p *PostgresStore) Close() error {
	return p.db.Close()
}
