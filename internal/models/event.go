package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Event lifecycle statuses.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusCancelled = "cancelled"
)

// Event source labels.
const (
	SourceAdmin     = "Admin"
	SourceCommunity = "Community Submitted"
)

type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID         string     `bun:"id,pk" json:"id"`
	ArtistName string     `bun:"artist_name,notnull" json:"artist_name"`
	ArtistBio  string     `bun:"artist_bio,nullzero" json:"artist_bio,omitempty"`
	VenueID    string     `bun:"venue_id,nullzero" json:"venue_id,omitempty"`
	VenueName  string     `bun:"venue_name" json:"venue_name"`
	EventDate  time.Time  `bun:"event_date,notnull" json:"event_date"`
	Genre      string     `bun:"genre,nullzero" json:"genre,omitempty"`
	Vibe       string     `bun:"vibe,nullzero" json:"vibe,omitempty"`
	Cover      string     `bun:"cover,nullzero" json:"cover,omitempty"`
	TicketLink string     `bun:"ticket_link,nullzero" json:"ticket_link,omitempty"`
	Recurring  bool       `bun:"recurring" json:"recurring"`
	Status     string     `bun:"status,notnull" json:"status"`
	Source     string     `bun:"source" json:"source"`
	VerifiedAt *time.Time `bun:"verified_at,nullzero" json:"verified_at,omitempty"`
	CreatedAt  time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`

	Venue *Venue `bun:"rel:belongs-to,join:venue_id=id" json:"venues,omitempty"`
}

// ResolvedVenueName prefers the joined venue record over the free-text
// venue_name column, matching how listings render the venue.
func (e *Event) ResolvedVenueName() string {
	if e.Venue != nil && e.Venue.Name != "" {
		return e.Venue.Name
	}
	return e.VenueName
}
