package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/feedbackportal/internal/domain/errors"
	"github.com/polkiloo/feedbackportal/internal/server/http/dto"
)

func abortWithError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, dto.ErrorResponse{Error: err.Error()})
}

func badRequest(c *gin.Context, err error) {
	abortWithError(c, http.StatusBadRequest, err)
}

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrStoreUnavailable):
		abortWithError(c, http.StatusServiceUnavailable, err)
	default:
		abortWithError(c, http.StatusInternalServerError, err)
	}
}
