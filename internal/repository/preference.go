package repository

import (
	"context"
	"errors"

	"github.com/roomatch/api/internal/database"
	"github.com/roomatch/api/internal/model"
)

// PreferenceRepository handles preference profile data access
type PreferenceRepository struct {
	db database.Database
}

// NewPreferenceRepository creates a new preference repository
func NewPreferenceRepository(db database.Database) *PreferenceRepository {
	return &PreferenceRepository{db: db}
}

// GetByUser retrieves the preference profile for a user.
// Returns (nil, nil) when the user has no stored profile; an absent profile
// means "no constraints", not an error.
func (r *PreferenceRepository) GetByUser(ctx context.Context, userID string) (*model.Preference, error) {
	query := `SELECT * FROM preference WHERE user_id = $user_id LIMIT 1`
	vars := map[string]interface{}{"user_id": userID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, nil
	}
	return parsePreference(data), nil
}

func parsePreference(data map[string]interface{}) *model.Preference {
	p := &model.Preference{
		UserID:             getString(data, "user_id"),
		City:               getStringPtr(data, "city"),
		Area:               getStringPtr(data, "area"),
		MinPrice:           getFloatPtr(data, "min_price"),
		MaxPrice:           getFloatPtr(data, "max_price"),
		MaxFloor:           getIntPtr(data, "max_floor"),
		RoommateCounts:     getIntSlice(data, "roommate_counts"),
		RequiredFeatureIDs: getStringSlice(data, "required_feature_ids"),
		MoveInDate:         getTime(data, "move_in_date"),
	}
	if t := getTime(data, "created_on"); t != nil {
		p.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		p.UpdatedOn = *t
	}
	return p
}
