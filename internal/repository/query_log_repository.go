package repository

import (
	"database/sql"
	"newsmood/internal/model"
)

type QueryLogRepository struct {
	db *sql.DB
}

func NewQueryLogRepository(db *sql.DB) *QueryLogRepository {
	return &QueryLogRepository{db: db}
}

func (r *QueryLogRepository) EnsureSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS query_log (
			id BIGSERIAL PRIMARY KEY,
			topic TEXT NOT NULL,
			articles_found INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func (r *QueryLogRepository) Append(record model.QueryLogRecord) error {
	_, err := r.db.Exec(`
		INSERT INTO query_log(topic, articles_found, created_at)
		VALUES($1, $2, $3)
	`, record.Topic, record.ArticlesFound, record.Timestamp)
	return err
}

// List returns up to limit records, newest first. A limit of zero or less
// returns everything.
func (r *QueryLogRepository) List(limit int) ([]model.QueryLogRecord, error) {
	query := `
		SELECT topic, articles_found, created_at
		FROM query_log
		ORDER BY created_at DESC, id DESC
	`
	var args []any
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.QueryLogRecord
	for rows.Next() {
		var rec model.QueryLogRecord
		err := rows.Scan(&rec.Topic, &rec.ArticlesFound, &rec.Timestamp)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *QueryLogRepository) Count() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM query_log`).Scan(&total)
	return total, err
}
