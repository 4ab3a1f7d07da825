package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Darpan-10/HUMAN-API/internal/models"
	"github.com/Darpan-10/HUMAN-API/internal/services"
	"github.com/Darpan-10/HUMAN-API/internal/utils"
)

type ProfileHandler struct {
	svc services.UserService
}

func NewProfileHandler(svc services.UserService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	u, err := h.svc.Get(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

type UpdateProfileRequest struct {
	Name         *string              `json:"name,omitempty"`
	Skills       *[]string            `json:"skills,omitempty"`
	Interests    *[]string            `json:"interests,omitempty"`
	Bio          *string              `json:"bio,omitempty"`
	Availability *models.Availability `json:"availability,omitempty"`
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Update", "invalid request body", err))
		return
	}

	u, err := h.svc.UpdateProfile(c.Request.Context(), userID, services.ProfileUpdate{
		Name:         req.Name,
		Skills:       req.Skills,
		Interests:    req.Interests,
		Bio:          req.Bio,
		Availability: req.Availability,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *ProfileHandler) Delete(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile deleted",
	})
}
