package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/tacostay/internal/catalog"
)

// PulseEventRepo handles the stay timeline.
type PulseEventRepo struct {
	db DBTX
}

func NewPulseEventRepo(db DBTX) *PulseEventRepo { return &PulseEventRepo{db: db} }

// eventID is stable for a given position and time label so reseeding yields
// the same ids.
func eventID(position int, e catalog.PulseEvent) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("pulse:%d:%s", position, e.Time))).String()
}

func (r *PulseEventRepo) Insert(ctx context.Context, position int, e catalog.PulseEvent) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO pulse_events(id, position, time, type, text, emoji, has_photo, has_gps, distance, duration)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		eventID(position, e), position, e.Time, e.Type, e.Text, e.Emoji, e.HasPhoto, e.HasGPS, e.Distance, e.Duration)
	return err
}

// List returns events in timeline order.
func (r *PulseEventRepo) List(ctx context.Context) ([]catalog.PulseEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT time, type, text, emoji, has_photo, has_gps, distance, duration
	FROM pulse_events ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []catalog.PulseEvent
	for rows.Next() {
		var e catalog.PulseEvent
		if err := rows.Scan(&e.Time, &e.Type, &e.Text, &e.Emoji, &e.HasPhoto, &e.HasGPS, &e.Distance, &e.Duration); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
