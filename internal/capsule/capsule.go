// Package capsule manages personal time capsules: user-authored
// collections of memories tied to a year, which can be sealed and
// reopened at a chosen date.
package capsule

import "time"

// MediaType is the kind of media attached to a capsule entry.
type MediaType string

const (
	MediaText  MediaType = "text"
	MediaImage MediaType = "image"
)

// Status describes a capsule's lifecycle stage.
type Status string

const (
	// StatusOpen capsules accept new entries.
	StatusOpen Status = "open"
	// StatusSealed capsules are closed and waiting for their unlock date.
	StatusSealed Status = "sealed"
	// StatusUnlocked capsules were sealed and have passed their unlock date.
	StatusUnlocked Status = "unlocked"
)

// Entry is a single memory inside a capsule.
type Entry struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	MediaURL    string    `json:"mediaUrl,omitempty"`
	MediaType   MediaType `json:"mediaType"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Capsule is a user's personal capsule document.
type Capsule struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	YearID      string     `json:"yearId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Entries     []Entry    `json:"entries"`
	IsSealed    bool       `json:"isSealed"`
	SealedUntil *time.Time `json:"sealedUntil,omitempty"`
	IsPublic    bool       `json:"isPublic"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Status derives the capsule's lifecycle stage at the given time. A
// capsule sealed without an unlock date stays sealed until reopened by
// product policy, which today means forever.
func (c *Capsule) Status(now time.Time) Status {
	if !c.IsSealed {
		return StatusOpen
	}
	if c.SealedUntil != nil && !now.Before(*c.SealedUntil) {
		return StatusUnlocked
	}
	return StatusSealed
}
