package service

import (
	"context"
	"log/slog"

	"github.com/roomatch/api/internal/model"
)

// ListingSource defines the listing data access needed for filtering.
type ListingSource interface {
	GetCandidates(ctx context.Context, searcherID string) ([]*model.Listing, error)
	GetByID(ctx context.Context, id string) (*model.Listing, error)
}

// PreferenceSource defines the preference data access needed for filtering.
type PreferenceSource interface {
	GetByUser(ctx context.Context, userID string) (*model.Preference, error)
}

// PreferenceFilter narrows candidate listings to those matching a
// searcher's stated preferences.
type PreferenceFilter struct {
	listingRepo    ListingSource
	preferenceRepo PreferenceSource
}

// PreferenceFilterConfig holds configuration for the preference filter
type PreferenceFilterConfig struct {
	ListingRepo    ListingSource
	PreferenceRepo PreferenceSource
}

// NewPreferenceFilter creates a new preference filter
func NewPreferenceFilter(cfg PreferenceFilterConfig) *PreferenceFilter {
	return &PreferenceFilter{
		listingRepo:    cfg.ListingRepo,
		preferenceRepo: cfg.PreferenceRepo,
	}
}

// Filter returns the searcher's candidate listings that satisfy every
// stated preference. A searcher without a preference profile matches all
// candidates. The contract is total: data-access failures are logged and
// degrade to an empty result, never an error.
func (f *PreferenceFilter) Filter(ctx context.Context, searcherID string) []*model.Listing {
	candidates, err := f.listingRepo.GetCandidates(ctx, searcherID)
	if err != nil {
		slog.Error("filter: fetching candidate listings failed",
			slog.String("user_id", searcherID),
			slog.String("error", err.Error()),
		)
		return []*model.Listing{}
	}

	pref, err := f.preferenceRepo.GetByUser(ctx, searcherID)
	if err != nil {
		slog.Error("filter: fetching preferences failed",
			slog.String("user_id", searcherID),
			slog.String("error", err.Error()),
		)
		return []*model.Listing{}
	}
	if pref == nil {
		return candidates
	}

	matched := make([]*model.Listing, 0, len(candidates))
	for _, listing := range candidates {
		if matchesPreference(listing, pref) {
			matched = append(matched, listing)
		}
	}
	return matched
}

// matchesPreference is the conjunction of all per-field predicates. Each
// predicate treats an unset preference field as "no constraint".
func matchesPreference(l *model.Listing, p *model.Preference) bool {
	return matchesPrice(l, p) &&
		matchesCity(l, p) &&
		matchesArea(l, p) &&
		matchesFloor(l, p) &&
		matchesRoommates(l, p) &&
		matchesFeatures(l, p) &&
		matchesMoveIn(l, p)
}

func matchesPrice(l *model.Listing, p *model.Preference) bool {
	if p.MinPrice != nil && l.Price < *p.MinPrice {
		return false
	}
	if p.MaxPrice != nil && l.Price > *p.MaxPrice {
		return false
	}
	return true
}

func matchesCity(l *model.Listing, p *model.Preference) bool {
	return p.City == nil || l.City == *p.City
}

func matchesArea(l *model.Listing, p *model.Preference) bool {
	if !p.WantsArea() {
		return true
	}
	return l.Area != nil && *l.Area == *p.Area
}

func matchesFloor(l *model.Listing, p *model.Preference) bool {
	return p.MaxFloor == nil || l.Floor <= *p.MaxFloor
}

// matchesRoommates accepts a listing whose room count can host any of the
// requested roommate counts. A listing with k roommates needs k+1 rooms,
// one per roommate plus the searcher's.
func matchesRoommates(l *model.Listing, p *model.Preference) bool {
	if len(p.RoommateCounts) == 0 {
		return true
	}
	for _, count := range p.RoommateCounts {
		if l.TotalRooms >= count+1 {
			return true
		}
	}
	return false
}

func matchesFeatures(l *model.Listing, p *model.Preference) bool {
	for _, featureID := range p.RequiredFeatureIDs {
		if !l.HasFeature(featureID) {
			return false
		}
	}
	return true
}

func matchesMoveIn(l *model.Listing, p *model.Preference) bool {
	if p.MoveInDate == nil {
		return true
	}
	return !l.AvailableFrom.After(*p.MoveInDate)
}
