package repository

import (
	"database/sql"
	"fmt"

	"stockpulse/internal/model"
)

// SnapshotRepository archives each published stock list so the API can
// answer history queries after restarts.
type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) (*SnapshotRepository, error) {
	r := &SnapshotRepository{db: db}
	if err := r.init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SnapshotRepository) init() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshot (
			id        BIGSERIAL PRIMARY KEY,
			taken_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			count     INT NOT NULL,
			top_name  TEXT NOT NULL DEFAULT '',
			top_rate  TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS snapshot_stock (
			id           BIGSERIAL PRIMARY KEY,
			snapshot_id  BIGINT NOT NULL REFERENCES snapshot(id) ON DELETE CASCADE,
			rank         INT NOT NULL,
			name         TEXT NOT NULL,
			price        TEXT NOT NULL,
			rate         TEXT NOT NULL,
			summary      TEXT NOT NULL,
			bullish_url  TEXT NOT NULL DEFAULT '',
			bearish_url  TEXT NOT NULL DEFAULT ''
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing snapshot schema: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) SaveSnapshot(stocks []model.Stock) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	topName, topRate := "", ""
	if len(stocks) > 0 {
		topName, topRate = stocks[0].Name, stocks[0].Rate
	}

	var snapshotID int64
	err = tx.QueryRow(`
		INSERT INTO snapshot(count, top_name, top_rate)
		VALUES($1, $2, $3)
		RETURNING id
	`, len(stocks), topName, topRate).Scan(&snapshotID)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO snapshot_stock(snapshot_id, rank, name, price, rate, summary, bullish_url, bearish_url)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, s := range stocks {
		if _, err := stmt.Exec(snapshotID, s.Rank, s.Name, s.Price, s.Rate, s.Summary, s.BullishURL, s.BearishURL); err != nil {
			return fmt.Errorf("archiving stock %s: %w", s.Name, err)
		}
	}

	return tx.Commit()
}

func (r *SnapshotRepository) RecentSnapshots(limit int) ([]model.Snapshot, error) {
	rows, err := r.db.Query(`
		SELECT id, taken_at, count, top_name, top_rate
		FROM snapshot
		ORDER BY taken_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []model.Snapshot
	for rows.Next() {
		var s model.Snapshot
		if err := rows.Scan(&s.ID, &s.TakenAt, &s.Count, &s.TopName, &s.TopRate); err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}
