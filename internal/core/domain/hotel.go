package domain

import (
	"errors"
	"time"
)

var ErrHotelNotFound = errors.New("hotel not found")

// Hotel is a bookable property in the catalog. Hotels are created through the
// open creation endpoint and read through listings; there is no update or
// delete path.
type Hotel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}
