package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Darpan-10/HUMAN-API/internal/models"
	"github.com/Darpan-10/HUMAN-API/internal/services"
	"github.com/Darpan-10/HUMAN-API/internal/utils"
)

type AuthHandler struct {
	svc      services.UserService
	secret   string
	tokenTTL time.Duration
}

func NewAuthHandler(svc services.UserService, secret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{svc: svc, secret: secret, tokenTTL: tokenTTL}
}

type RegisterRequest struct {
	Email     string   `json:"email" binding:"required"`
	Password  string   `json:"password" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
	Bio       string   `json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Register", "invalid request body", err))
		return
	}

	u, err := h.svc.Register(c.Request.Context(), services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		Skills:    req.Skills,
		Interests: req.Interests,
		Bio:       req.Bio,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := utils.SignToken(h.secret, u.ID.Hex(), h.tokenTTL)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "AuthHandler.Register", "failed to issue token", err))
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{
		Success: true,
		Message: "User registered successfully",
		Token:   token,
		User:    u,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AuthHandler.Login", "invalid request body", err))
		return
	}

	u, err := h.svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	token, err := utils.SignToken(h.secret, u.ID.Hex(), h.tokenTTL)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, "AuthHandler.Login", "failed to issue token", err))
		return
	}

	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    u,
	})
}
