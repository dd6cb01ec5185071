package repository

import (
	"context"

	"github.com/roomatch/api/internal/database"
	"github.com/roomatch/api/internal/model"
)

// ListingRepository handles listing data access
type ListingRepository struct {
	db database.Database
}

// NewListingRepository creates a new listing repository
func NewListingRepository(db database.Database) *ListingRepository {
	return &ListingRepository{db: db}
}

// GetCandidates retrieves every listing the searcher has not yet swiped on.
// The swipe exclusion is unconditional: it applies whether or not the
// searcher has a preference profile.
func (r *ListingRepository) GetCandidates(ctx context.Context, searcherID string) ([]*model.Listing, error) {
	query := `
		SELECT * FROM listing
		WHERE record::id(id) NOTINSIDE (
			SELECT VALUE listing_id FROM swipe WHERE user_id = $user_id
		)
		ORDER BY created_on DESC
	`
	vars := map[string]interface{}{"user_id": searcherID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseListingsResult(result)
}

// GetByID retrieves a single listing
func (r *ListingRepository) GetByID(ctx context.Context, id string) (*model.Listing, error) {
	query := `SELECT * FROM listing WHERE record::id(id) = $id LIMIT 1`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, database.ErrNotFound
	}
	return parseListing(data), nil
}

func (r *ListingRepository) parseListingsResult(result interface{}) ([]*model.Listing, error) {
	rows, ok := extractQueryResults(result)
	if !ok {
		return []*model.Listing{}, nil
	}

	listings := make([]*model.Listing, 0, len(rows))
	for _, row := range rows {
		data, ok := row.(map[string]interface{})
		if !ok {
			continue
		}
		listings = append(listings, parseListing(data))
	}
	return listings, nil
}

func parseListing(data map[string]interface{}) *model.Listing {
	l := &model.Listing{
		ID:             extractRecordID(data["id"]),
		OwnerID:        getString(data, "owner_id"),
		City:           getString(data, "city"),
		Area:           getStringPtr(data, "area"),
		Price:          getFloat(data, "price"),
		Floor:          getInt(data, "floor"),
		TotalRooms:     getInt(data, "total_rooms"),
		AvailableRooms: getInt(data, "available_rooms"),
		FeatureIDs:     getStringSlice(data, "feature_ids"),
	}
	if t := getTime(data, "available_from"); t != nil {
		l.AvailableFrom = *t
	}
	if t := getTime(data, "created_on"); t != nil {
		l.CreatedOn = *t
	}
	return l
}
