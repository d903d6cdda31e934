package domain

import "time"

// PlaceholderImage is stored when a listing comes without an image reference.
const PlaceholderImage = "https://via.placeholder.com/400"

// Product is a catalogue listing offered by a seller account.
type Product struct {
	ID          int64
	SellerID    int64
	Title       string
	Category    string
	Price       float64
	Description string
	ImageURL    string
	CreatedAt   time.Time
}
