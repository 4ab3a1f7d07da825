package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Darpan-10/HUMAN-API/internal/models"
	"github.com/Darpan-10/HUMAN-API/internal/services"
)

type SuggestionHandler struct {
	svc services.MatchService
}

func NewSuggestionHandler(svc services.MatchService) *SuggestionHandler {
	return &SuggestionHandler{svc: svc}
}

type SuggestionsResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message"`
	Suggestions []models.Suggestion `json:"suggestions"`
}

// List returns ranked collaborator suggestions for the caller. An empty
// result is a normal state and renders as a friendly 200, never an
// error status.
func (h *SuggestionHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	suggestions := h.svc.Suggestions(c.Request.Context(), userID, limit)
	if len(suggestions) == 0 {
		c.JSON(http.StatusOK, SuggestionsResponse{
			Success:     true,
			Message:     "No matches found yet",
			Suggestions: []models.Suggestion{},
		})
		return
	}

	c.JSON(http.StatusOK, SuggestionsResponse{
		Success:     true,
		Message:     fmt.Sprintf("Found %d suggestions", len(suggestions)),
		Suggestions: suggestions,
	})
}
