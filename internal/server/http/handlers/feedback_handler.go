package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/feedbackportal/internal/server/http/dto"
)

// FeedbackHandler manages feedback endpoints.
type FeedbackHandler struct {
	facade FeedbackFacade
}

// NewFeedbackHandler constructs FeedbackHandler.
func NewFeedbackHandler(facade FeedbackFacade) *FeedbackHandler {
	return &FeedbackHandler{facade: facade}
}

// Submit handles POST /backend1.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	saved, err := h.facade.SubmitFeedback(c.Request.Context(), req.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FeedbackFromModel(*saved))
}

// List handles GET /backend1/customer-feedback.
func (h *FeedbackHandler) List(c *gin.Context) {
	items, err := h.facade.Feedback(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FeedbackListFromModel(items))
}
