package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContactDetails is the single record describing how to reach the business.
// It is created lazily with empty values on first read and mutated wholesale
// by the admin; it is never deleted. The social fields are optional.
type ContactDetails struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Location  string    `json:"location"`
	MapURL    string    `json:"mapUrl"`
	Hours     string    `json:"hours"`
	Instagram string    `json:"instagram"`
	Facebook  string    `json:"facebook"`
	Twitter   string    `json:"twitter"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Diff returns the fields of other that differ from d, keyed by their JSON
// names. An empty map means the update is a no-op.
func (d *ContactDetails) Diff(other *ContactDetails) map[string]string {
	changes := make(map[string]string)
	pairs := []struct {
		key      string
		old, new string
	}{
		{"email", d.Email, other.Email},
		{"phone", d.Phone, other.Phone},
		{"location", d.Location, other.Location},
		{"mapUrl", d.MapURL, other.MapURL},
		{"hours", d.Hours, other.Hours},
		{"instagram", d.Instagram, other.Instagram},
		{"facebook", d.Facebook, other.Facebook},
		{"twitter", d.Twitter, other.Twitter},
	}
	for _, p := range pairs {
		if p.old != p.new {
			changes[p.key] = p.new
		}
	}

	return changes
}
