package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Darpan-10/HUMAN-API/internal/models"
	"github.com/Darpan-10/HUMAN-API/internal/services"
	"github.com/Darpan-10/HUMAN-API/internal/utils"
)

type IntentHandler struct {
	svc services.IntentService
}

func NewIntentHandler(svc services.IntentService) *IntentHandler {
	return &IntentHandler{svc: svc}
}

type SubmitIntentRequest struct {
	Text       string            `json:"text" binding:"required"`
	IntentType models.IntentType `json:"intent_type"`
}

type IntentResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    *models.Intent `json:"data,omitempty"`
}

func (h *IntentHandler) Submit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req SubmitIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "IntentHandler.Submit", "invalid request body", err))
		return
	}

	in, err := h.svc.Submit(c.Request.Context(), userID, req.Text, req.IntentType)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, IntentResponse{
		Success: true,
		Message: "Intent submitted successfully",
		Data:    in,
	})
}

func (h *IntentHandler) ListMine(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	intents, err := h.svc.ListMine(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, intents)
}

type SetIntentStatusRequest struct {
	Status models.IntentStatus `json:"status" binding:"required"`
}

func (h *IntentHandler) SetStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req SetIntentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "IntentHandler.SetStatus", "invalid request body", err))
		return
	}

	if err := h.svc.SetStatus(c.Request.Context(), userID, c.Param("intent_id"), req.Status); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Intent updated",
	})
}
