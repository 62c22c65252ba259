package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/bnema/dimmer/internal/domain/entity"
	"github.com/bnema/dimmer/internal/domain/repository"
	"github.com/bnema/dimmer/internal/logging"
)

type zoomRepo struct {
	db *sql.DB
}

// NewZoomRepository creates a new SQLite-backed zoom repository.
func NewZoomRepository(db *sql.DB) repository.ZoomRepository {
	return &zoomRepo{db: db}
}

func (r *zoomRepo) Get(ctx context.Context, domain string) (*entity.ZoomLevel, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("domain", domain).Msg("getting zoom level")

	row := r.db.QueryRowContext(ctx,
		`SELECT domain, zoom_factor, updated_at FROM zoom_levels WHERE domain = ?`,
		domain,
	)

	level, err := scanZoomLevel(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return level, nil
}

func (r *zoomRepo) Set(ctx context.Context, level *entity.ZoomLevel) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("domain", level.Domain).Float64("factor", level.ZoomFactor).Msg("setting zoom level")

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO zoom_levels (domain, zoom_factor, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (domain) DO UPDATE SET
		     zoom_factor = excluded.zoom_factor,
		     updated_at = excluded.updated_at`,
		level.Domain, level.ZoomFactor, time.Now().UTC(),
	)
	return err
}

func (r *zoomRepo) Delete(ctx context.Context, domain string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM zoom_levels WHERE domain = ?`,
		domain,
	)
	return err
}

func (r *zoomRepo) GetAll(ctx context.Context) ([]*entity.ZoomLevel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT domain, zoom_factor, updated_at FROM zoom_levels ORDER BY domain`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var levels []*entity.ZoomLevel
	for rows.Next() {
		level, err := scanZoomLevel(rows)
		if err != nil {
			return nil, err
		}
		levels = append(levels, level)
	}
	return levels, rows.Err()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanZoomLevel(row rowScanner) (*entity.ZoomLevel, error) {
	var level entity.ZoomLevel
	var updatedAt sql.NullTime
	if err := row.Scan(&level.Domain, &level.ZoomFactor, &updatedAt); err != nil {
		return nil, err
	}
	level.UpdatedAt = updatedAt.Time
	return &level, nil
}
