package repositories

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TemplateRepository struct {
	DB *pgxpool.Pool
}

func NewTemplateRepository(db *pgxpool.Pool) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

// Get loads the JSONB payload of a template row into dest. Returns pgx.ErrNoRows
// when the type has never been saved.
func (r *TemplateRepository) Get(ctx context.Context, templateType string, dest interface{}) error {
	var data []byte
	err := r.DB.QueryRow(ctx,
		`SELECT data FROM templates WHERE template_type=$1`, templateType).Scan(&data)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Upsert stores a template payload, replacing any previous version.
func (r *TemplateRepository) Upsert(ctx context.Context, templateType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(ctx,
		`INSERT INTO templates(template_type, data)
		 VALUES($1, $2)
		 ON CONFLICT (template_type) DO UPDATE SET data=EXCLUDED.data, updated_at=NOW()`,
		templateType, data)
	return err
}
