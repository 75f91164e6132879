package models

import (
	"time"

	"github.com/google/uuid"
)

// Follower is a directed follow edge: FollowerID follows FollowedID.
type Follower struct {
	ID         uuid.UUID `json:"id"`
	FollowerID uuid.UUID `json:"follower_id"`
	FollowedID uuid.UUID `json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`
}
