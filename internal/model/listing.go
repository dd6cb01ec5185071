package model

import "time"

// Listing represents a rental apartment listing.
// Instances are immutable read snapshots owned by the listing store;
// the recommendation pipeline never mutates them.
type Listing struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	City           string    `json:"city"`
	Area           *string   `json:"area,omitempty"`
	Price          float64   `json:"price"`
	Floor          int       `json:"floor"`
	TotalRooms     int       `json:"total_rooms"`
	AvailableRooms int       `json:"available_rooms"`
	AvailableFrom  time.Time `json:"available_from"`
	FeatureIDs     []string  `json:"feature_ids,omitempty"`
	CreatedOn      time.Time `json:"created_on"`
}

// HasFeature reports whether the listing carries the given feature id.
func (l *Listing) HasFeature(featureID string) bool {
	for _, f := range l.FeatureIDs {
		if f == featureID {
			return true
		}
	}
	return false
}

// SwipeDirection constants for the like/dislike relation on listings.
const (
	SwipeLike    = "like"
	SwipeDislike = "dislike"
)

// Swipe records that a user has already expressed a like or dislike on a
// listing. Swiped listings are unconditionally excluded from recommendations.
type Swipe struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ListingID string    `json:"listing_id"`
	Direction string    `json:"direction"`
	CreatedOn time.Time `json:"created_on"`
}
