package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Submission moderation statuses.
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// Submission is a community-proposed event waiting for moderation.
// The venue is free text here, not a foreign key: submitters type
// whatever they want and moderators clean it up on approval.
type Submission struct {
	bun.BaseModel `bun:"table:submissions"`

	ID             string     `bun:"id,pk" json:"id"`
	ArtistName     string     `bun:"artist_name,notnull" json:"artist_name"`
	VenueName      string     `bun:"venue_name,notnull" json:"venue_name"`
	EventDate      *time.Time `bun:"event_date,nullzero" json:"event_date,omitempty"`
	Genre          string     `bun:"genre,nullzero" json:"genre,omitempty"`
	Vibe           string     `bun:"vibe,nullzero" json:"vibe,omitempty"`
	Cover          string     `bun:"cover,nullzero" json:"cover,omitempty"`
	ArtistBio      string     `bun:"artist_bio,nullzero" json:"artist_bio,omitempty"`
	Notes          string     `bun:"notes,nullzero" json:"notes,omitempty"`
	SubmitterEmail string     `bun:"submitter_email,nullzero" json:"submitter_email,omitempty"`
	Status         string     `bun:"status,notnull" json:"status"`
	CreatedAt      time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
