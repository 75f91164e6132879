package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"showgram/internal/models"
)

// ListTimeline assembles the feed for a user: their own checkins plus those
// of everyone they follow, newest first. Fan-out happens at read time; the
// child collections are batch-loaded per page to keep the query count flat
// regardless of page size.
func (s *Store) ListTimeline(ctx context.Context, userID uuid.UUID, page models.PageParams) ([]models.CheckinDetail, int, error) {
	following, err := s.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return s.listCheckinPage(ctx, append(following, userID), page)
}

func (s *Store) listCheckinPage(ctx context.Context, userIDs []uuid.UUID, page models.PageParams) ([]models.CheckinDetail, int, error) {
	if len(userIDs) == 0 {
		return nil, 0, nil
	}
	page = page.Normalize()

	placeholders := make([]string, len(userIDs))
	args := make([]any, 0, len(userIDs)+2)
	for i, id := range userIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args = append(args, id)
	}
	args = append(args, page.PerPage, page.Offset())

	query := fmt.Sprintf(`
		SELECT
			ci.id, ci.concert_id, ci.user_id, ci.created_at, ci.updated_at,
			u.id, u.name, u.username, u.photo_url,
			c.id, c.event_id, c.location_id, c.date, src.name, st.name, c.created_at, c.updated_at,
			e.id, e.name, e.start_date, e.end_date, e.type, e.description, e.image_url,
			esrc.name, est.name, e.created_at, e.updated_at,
			l.id, l.name, l.city, l.country_id, lsrc.name, lst.name, l.created_at, l.updated_at,
			COUNT(*) OVER() AS total
		FROM checkins ci
		INNER JOIN users u ON ci.user_id = u.id
		INNER JOIN concerts c ON ci.concert_id = c.id
		INNER JOIN sources src ON c.source_id = src.id
		INNER JOIN statuses st ON c.status_id = st.id
		INNER JOIN events e ON c.event_id = e.id
		INNER JOIN sources esrc ON e.source_id = esrc.id
		INNER JOIN statuses est ON e.status_id = est.id
		INNER JOIN locations l ON c.location_id = l.id
		INNER JOIN sources lsrc ON l.source_id = lsrc.id
		INNER JOIN statuses lst ON l.status_id = lst.id
		WHERE ci.user_id IN (%s)
		ORDER BY ci.created_at DESC
		LIMIT $%d OFFSET $%d
	`, strings.Join(placeholders, ", "), len(userIDs)+1, len(userIDs)+2)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query timeline: %w", err)
	}
	defer rows.Close()

	var (
		checkins []models.CheckinDetail
		total    int
	)
	for rows.Next() {
		var (
			d models.CheckinDetail
			u models.UserSummary
			c models.Concert
		)
		c.Event = &models.Event{}
		c.Location = &models.Location{}
		err := rows.Scan(
			&d.ID, &d.ConcertID, &d.UserID, &d.CreatedAt, &d.UpdatedAt,
			&u.ID, &u.Name, &u.Username, &u.PhotoURL,
			&c.ID, &c.EventID, &c.LocationID, &c.Date, &c.Source, &c.Status, &c.CreatedAt, &c.UpdatedAt,
			&c.Event.ID, &c.Event.Name, &c.Event.StartDate, &c.Event.EndDate, &c.Event.Type,
			&c.Event.Description, &c.Event.ImageURL, &c.Event.Source, &c.Event.Status,
			&c.Event.CreatedAt, &c.Event.UpdatedAt,
			&c.Location.ID, &c.Location.Name, &c.Location.City, &c.Location.CountryID,
			&c.Location.Source, &c.Location.Status, &c.Location.CreatedAt, &c.Location.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan timeline checkin: %w", err)
		}
		d.User = &u
		d.Concert = &c
		checkins = append(checkins, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	if len(checkins) == 0 {
		return nil, total, nil
	}

	if err := s.hydrateCheckinChildren(ctx, checkins); err != nil {
		return nil, 0, err
	}
	return checkins, total, nil
}

// hydrateCheckinChildren batch-loads artists, photos, likes, comments,
// ratings and reviews for a page of checkins.
func (s *Store) hydrateCheckinChildren(ctx context.Context, checkins []models.CheckinDetail) error {
	placeholders := make([]string, len(checkins))
	args := make([]any, len(checkins))
	index := make(map[uuid.UUID]*models.CheckinDetail, len(checkins))
	for i := range checkins {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = checkins[i].ID
		index[checkins[i].ID] = &checkins[i]
	}
	in := strings.Join(placeholders, ", ")

	// Confirmed artists with their genres.
	artistRows, err := s.db.QueryContext(ctx, `
		SELECT ac.checkin_id,`+artistColumns+`
		FROM artist_checkins ac
		INNER JOIN artists a ON ac.artist_id = a.id
		INNER JOIN sources src ON a.source_id = src.id
		INNER JOIN statuses st ON a.status_id = st.id
		WHERE ac.checkin_id IN (`+in+`)
		ORDER BY a.name ASC
	`, args...)
	if err != nil {
		return fmt.Errorf("query timeline artists: %w", err)
	}
	var timelineArtists []models.Artist
	var artistOwner []uuid.UUID
	for artistRows.Next() {
		var (
			checkinID uuid.UUID
			a         models.Artist
		)
		dest := []any{&checkinID}
		if err := artistRows.Scan(append(dest,
			&a.ID, &a.Name, &a.Description, &a.CountryID, &a.FormedYear, &a.ImageURL,
			&a.Source, &a.Status, &a.CreatedAt, &a.UpdatedAt)...); err != nil {
			artistRows.Close()
			return fmt.Errorf("scan timeline artist: %w", err)
		}
		timelineArtists = append(timelineArtists, a)
		artistOwner = append(artistOwner, checkinID)
	}
	if err := artistRows.Err(); err != nil {
		artistRows.Close()
		return err
	}
	artistRows.Close()

	if err := s.attachArtistGenres(ctx, timelineArtists); err != nil {
		return err
	}
	for i, a := range timelineArtists {
		if d, ok := index[artistOwner[i]]; ok {
			d.Artists = append(d.Artists, a)
		}
	}

	// Photos.
	photoRows, err := s.db.QueryContext(ctx, `
		SELECT id, checkin_id, photo_url, created_at
		FROM checkin_photos
		WHERE checkin_id IN (`+in+`)
		ORDER BY created_at ASC
	`, args...)
	if err != nil {
		return fmt.Errorf("query timeline photos: %w", err)
	}
	for photoRows.Next() {
		var p models.CheckinPhoto
		if err := photoRows.Scan(&p.ID, &p.CheckinID, &p.PhotoURL, &p.CreatedAt); err != nil {
			photoRows.Close()
			return fmt.Errorf("scan timeline photo: %w", err)
		}
		if d, ok := index[p.CheckinID]; ok {
			d.Photos = append(d.Photos, p)
		}
	}
	if err := photoRows.Err(); err != nil {
		photoRows.Close()
		return err
	}
	photoRows.Close()

	// Likes with the liking users.
	likeRows, err := s.db.QueryContext(ctx, `
		SELECT cl.id, cl.checkin_id, cl.user_id, cl.created_at,
		       u.id, u.name, u.username, u.photo_url
		FROM checkin_likes cl
		INNER JOIN users u ON cl.user_id = u.id
		WHERE cl.checkin_id IN (`+in+`)
		ORDER BY cl.created_at DESC
	`, args...)
	if err != nil {
		return fmt.Errorf("query timeline likes: %w", err)
	}
	for likeRows.Next() {
		var (
			l models.CheckinLike
			u models.UserSummary
		)
		if err := likeRows.Scan(&l.ID, &l.CheckinID, &l.UserID, &l.CreatedAt,
			&u.ID, &u.Name, &u.Username, &u.PhotoURL); err != nil {
			likeRows.Close()
			return fmt.Errorf("scan timeline like: %w", err)
		}
		l.User = &u
		if d, ok := index[l.CheckinID]; ok {
			d.Likes = append(d.Likes, l)
		}
	}
	if err := likeRows.Err(); err != nil {
		likeRows.Close()
		return err
	}
	likeRows.Close()

	// Comments with their authors.
	commentRows, err := s.db.QueryContext(ctx, `
		SELECT cc.id, cc.checkin_id, cc.user_id, cc.comment, cc.created_at, cc.updated_at,
		       u.id, u.name, u.username, u.photo_url
		FROM checkin_comments cc
		INNER JOIN users u ON cc.user_id = u.id
		WHERE cc.checkin_id IN (`+in+`)
		ORDER BY cc.created_at ASC
	`, args...)
	if err != nil {
		return fmt.Errorf("query timeline comments: %w", err)
	}
	for commentRows.Next() {
		var (
			c models.CheckinComment
			u models.UserSummary
		)
		if err := commentRows.Scan(&c.ID, &c.CheckinID, &c.UserID, &c.Comment, &c.CreatedAt, &c.UpdatedAt,
			&u.ID, &u.Name, &u.Username, &u.PhotoURL); err != nil {
			commentRows.Close()
			return fmt.Errorf("scan timeline comment: %w", err)
		}
		c.User = &u
		if d, ok := index[c.CheckinID]; ok {
			d.Comments = append(d.Comments, c)
		}
	}
	if err := commentRows.Err(); err != nil {
		commentRows.Close()
		return err
	}
	commentRows.Close()

	// Ratings.
	ratingRows, err := s.db.QueryContext(ctx, `
		SELECT id, checkin_id, rating, created_at, updated_at
		FROM checkin_ratings
		WHERE checkin_id IN (`+in+`)
	`, args...)
	if err != nil {
		return fmt.Errorf("query timeline ratings: %w", err)
	}
	for ratingRows.Next() {
		var r models.CheckinRating
		if err := ratingRows.Scan(&r.ID, &r.CheckinID, &r.Rating, &r.CreatedAt, &r.UpdatedAt); err != nil {
			ratingRows.Close()
			return fmt.Errorf("scan timeline rating: %w", err)
		}
		if d, ok := index[r.CheckinID]; ok {
			rating := r
			d.Rating = &rating
		}
	}
	if err := ratingRows.Err(); err != nil {
		ratingRows.Close()
		return err
	}
	ratingRows.Close()

	// Reviews.
	reviewRows, err := s.db.QueryContext(ctx, `
		SELECT id, checkin_id, review, created_at, updated_at
		FROM checkin_reviews
		WHERE checkin_id IN (`+in+`)
	`, args...)
	if err != nil {
		return fmt.Errorf("query timeline reviews: %w", err)
	}
	for reviewRows.Next() {
		var r models.CheckinReview
		if err := reviewRows.Scan(&r.ID, &r.CheckinID, &r.Review, &r.CreatedAt, &r.UpdatedAt); err != nil {
			reviewRows.Close()
			return fmt.Errorf("scan timeline review: %w", err)
		}
		if d, ok := index[r.CheckinID]; ok {
			review := r
			d.Review = &review
		}
	}
	if err := reviewRows.Err(); err != nil {
		reviewRows.Close()
		return err
	}
	reviewRows.Close()

	return nil
}
