package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/feedbackportal/internal/server/http/dto"
)

// AuthHandler processes signup and login.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Signup handles POST /backend1/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.User
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	msg, err := h.facade.Signup(c.Request.Context(), req.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, msg)
}

// Login handles POST /backend1/login.
//
// The body is the stored user on success and the submitted user otherwise;
// callers that need to tell the cases apart read dto.AuthOutcomeHeader.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.User
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	result, err := h.facade.Login(c.Request.Context(), req.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header(dto.AuthOutcomeHeader, string(result.Outcome))
	c.JSON(http.StatusOK, dto.UserFromModel(result.User))
}
