package announcement

import "time"

// Announcement is an admin-posted notice shown to residents.
type Announcement struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
