package entities

import (
	"time"
)

// User represents a registered account. Sessions only gate
// personalization features; the catalog itself is public.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
