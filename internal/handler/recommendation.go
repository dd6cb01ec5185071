package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/roomatch/api/internal/middleware"
	"github.com/roomatch/api/internal/model"
)

// ListingRecommender produces an ordered listing recommendation for a user.
type ListingRecommender interface {
	RecommendListings(ctx context.Context, searcherID string, limit int) []*model.Listing
}

// RecommendationHandler handles listing recommendation endpoints
type RecommendationHandler struct {
	recommender ListingRecommender
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommender ListingRecommender) *RecommendationHandler {
	return &RecommendationHandler{recommender: recommender}
}

// RecommendationsResponse is the response body for GET /v1/recommendations
type RecommendationsResponse struct {
	Message    string           `json:"message"`
	Apartments []*model.Listing `json:"apartments"`
}

// Recommendations handles GET /v1/recommendations - ranked listings for the caller
// Query parameters:
//   - limit: max results (optional, default: 20, max: 50)
//
// An empty result is a 200 with an explanatory message, never an error.
func (h *RecommendationHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		WriteError(w, model.NewUnauthorizedError("caller identity required"))
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, model.NewBadRequestError("limit must be an integer"))
			return
		}
		limit = parsed
	}

	listings := h.recommender.RecommendListings(r.Context(), userID, limit)
	if listings == nil {
		listings = []*model.Listing{}
	}

	message := "Recommendations ready"
	if len(listings) == 0 {
		message = "No matching apartments found right now"
	}
	WriteJSON(w, http.StatusOK, RecommendationsResponse{
		Message:    message,
		Apartments: listings,
	})
}
