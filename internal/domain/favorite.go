package domain

import "time"

// Favorite - избранное место пользователя. place_data хранит снимок Place
// на момент добавления и позже не перечитывается из провайдера.
// At most one row exists per (user_id, place_id); the unique constraint in
// the store enforces it.
type Favorite struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	PlaceID   string    `json:"place_id" db:"place_id"`
	PlaceData Place     `json:"place_data" db:"place_data"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
