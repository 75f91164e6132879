package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"showgram/internal/models"
)

// SummaryStats aggregates the user's overall activity.
func (s *Store) SummaryStats(ctx context.Context, userID uuid.UUID) (*models.SummaryStats, error) {
	var stats models.SummaryStats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(DISTINCT ci.id),
			COUNT(DISTINCT ci.concert_id),
			COUNT(DISTINCT ac.artist_id),
			COUNT(DISTINCT c.location_id)
		FROM checkins ci
		INNER JOIN concerts c ON ci.concert_id = c.id
		LEFT JOIN artist_checkins ac ON ac.checkin_id = ci.id
		WHERE ci.user_id = $1
	`, userID).Scan(&stats.Checkins, &stats.Concerts, &stats.ArtistsSeen, &stats.LocationsVisited)
	if err != nil {
		return nil, fmt.Errorf("summary stats: %w", err)
	}
	return &stats, nil
}

// ProfileStats aggregates the numbers shown on a profile page.
func (s *Store) ProfileStats(ctx context.Context, userID uuid.UUID) (*models.ProfileStats, error) {
	var stats models.ProfileStats
	err := s.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM followers WHERE followed_id = $1),
			(SELECT COUNT(*) FROM followers WHERE follower_id = $1),
			(SELECT COUNT(*) FROM checkins WHERE user_id = $1),
			(SELECT AVG(r.rating)
			 FROM checkin_ratings r
			 INNER JOIN checkins ci ON r.checkin_id = ci.id
			 WHERE ci.user_id = $1)
	`, userID).Scan(&stats.Followers, &stats.Following, &stats.Checkins, &stats.AverageRating)
	if err != nil {
		return nil, fmt.Errorf("profile stats: %w", err)
	}
	return &stats, nil
}
