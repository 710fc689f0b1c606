package models

import "time"

// Favorite links a user to an item of the external music catalog.
// Duplicate (UserID, MusicID) pairs are allowed.
type Favorite struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	MusicID   int64     `json:"musica_id"`
	CreatedAt time.Time `json:"created_at"`
}
