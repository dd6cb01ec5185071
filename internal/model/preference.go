package model

import "time"

// Preference holds a searcher's stored listing filter constraints.
// Every field other than UserID is optional: a nil pointer or empty slice
// means the corresponding filter is skipped entirely.
type Preference struct {
	UserID string `json:"user_id"`

	// Location constraints. An empty-string Area is treated the same as nil.
	City *string `json:"city,omitempty"`
	Area *string `json:"area,omitempty"`

	// Price bounds; either bound is valid on its own.
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`

	MaxFloor *int `json:"max_floor,omitempty"`

	// RoommateCounts lists acceptable numbers of roommates. A listing
	// qualifies when it fits the searcher plus ANY of the listed counts.
	RoommateCounts []int `json:"roommate_counts,omitempty"`

	// RequiredFeatureIDs must ALL be present on a listing.
	RequiredFeatureIDs []string `json:"required_feature_ids,omitempty"`

	// MoveInDate keeps listings already available by this date.
	MoveInDate *time.Time `json:"move_in_date,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// WantsArea reports whether the area filter is active. Both nil and empty
// string mean "no constraint".
func (p *Preference) WantsArea() bool {
	return p.Area != nil && *p.Area != ""
}
