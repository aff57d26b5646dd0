package translation

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

// NewRepoPG creates a Repository backed by the diagnosis_translations table.
func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Get(ctx context.Context, id string) (*CacheEntry, error) {
	var e CacheEntry
	err := r.pool.QueryRow(ctx, `
		SELECT id, patient_id, language, original_text, translated_text, updated_at
		FROM diagnosis_translations WHERE id = $1`, id).
		Scan(&e.ID, &e.PatientID, &e.Language, &e.OriginalText, &e.TranslatedText, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repoPG) Put(ctx context.Context, e *CacheEntry) error {
	// Plain upsert; concurrent resolutions for the same key race and the
	// last write wins.
	_, err := r.pool.Exec(ctx, `
		INSERT INTO diagnosis_translations (id, patient_id, language, original_text, translated_text, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET
			original_text = EXCLUDED.original_text,
			translated_text = EXCLUDED.translated_text,
			updated_at = EXCLUDED.updated_at`,
		e.ID, e.PatientID, e.Language, e.OriginalText, e.TranslatedText, e.UpdatedAt)
	return err
}
