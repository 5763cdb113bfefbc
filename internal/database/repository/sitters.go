package repository

import (
	"context"

	"github.com/jask/tacostay/internal/catalog"
)

// SitterRepo handles sitters and their tags.
type SitterRepo struct {
	db DBTX
}

func NewSitterRepo(db DBTX) *SitterRepo { return &SitterRepo{db: db} }

// Upsert writes s and replaces its tags. order is the catalog position.
func (r *SitterRepo) Upsert(ctx context.Context, s catalog.Sitter, order int) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO sitters(
	 id, name, tier, badge, rating, reviews, distance, photo, empathy_score, bio,
	 linkedin, facebook, price, completed_gigs, video_intro, bgv_verified, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 name=excluded.name,
	 tier=excluded.tier,
	 badge=excluded.badge,
	 rating=excluded.rating,
	 reviews=excluded.reviews,
	 distance=excluded.distance,
	 photo=excluded.photo,
	 empathy_score=excluded.empathy_score,
	 bio=excluded.bio,
	 linkedin=excluded.linkedin,
	 facebook=excluded.facebook,
	 price=excluded.price,
	 completed_gigs=excluded.completed_gigs,
	 video_intro=excluded.video_intro,
	 bgv_verified=excluded.bgv_verified,
	 sort_order=excluded.sort_order;
	`,
		s.ID, s.Name, string(s.Tier), s.Badge, s.Rating, s.Reviews, s.Distance, s.Photo, s.EmpathyScore, s.Bio,
		s.Social.LinkedIn, s.Social.Facebook, s.NightlyPrice, s.CompletedGigs, s.VideoIntro, s.BGVVerified, order)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sitter_tags WHERE sitter_id = ?`, s.ID); err != nil {
		return err
	}
	for i, tag := range s.Tags {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO sitter_tags(sitter_id, position, tag) VALUES(?, ?, ?)`, s.ID, i, tag); err != nil {
			return err
		}
	}
	return nil
}

// List returns sitters in catalog order with tags attached.
func (r *SitterRepo) List(ctx context.Context) ([]catalog.Sitter, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, name, tier, badge, rating, reviews, distance, photo, empathy_score, bio,
	 linkedin, facebook, price, completed_gigs, video_intro, bgv_verified
	FROM sitters ORDER BY sort_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Sitter
	for rows.Next() {
		var s catalog.Sitter
		var tier string
		if err := rows.Scan(&s.ID, &s.Name, &tier, &s.Badge, &s.Rating, &s.Reviews, &s.Distance, &s.Photo,
			&s.EmpathyScore, &s.Bio, &s.Social.LinkedIn, &s.Social.Facebook, &s.NightlyPrice, &s.CompletedGigs,
			&s.VideoIntro, &s.BGVVerified); err != nil {
			return nil, err
		}
		s.Tier = catalog.Tier(tier)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range out {
		tags, err := r.fetchTags(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Tags = tags
	}
	return out, nil
}

func (r *SitterRepo) fetchTags(ctx context.Context, sitterID int) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT tag FROM sitter_tags WHERE sitter_id = ? ORDER BY position`, sitterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var tags []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, rows.Err()
}

func (r *SitterRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sitters`).Scan(&n)
	return n, err
}
