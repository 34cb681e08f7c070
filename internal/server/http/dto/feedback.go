package dto

import (
	"time"

	"github.com/polkiloo/feedbackportal/internal/domain/model"
)

// FeedbackRequest carries client supplied feedback. Any id or timestamp sent by
// the client is not decoded.
type FeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Service string `json:"service"`
}

// ToModel converts the request into a domain feedback record.
func (r FeedbackRequest) ToModel() model.Feedback {
	return model.Feedback{Rating: r.Rating, Comment: r.Comment, Service: r.Service}
}

// FeedbackResponse is a stored feedback record.
type FeedbackResponse struct {
	ID        int64     `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// FeedbackFromModel builds the response payload for feedback.
func FeedbackFromModel(f model.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        f.ID,
		Rating:    f.Rating,
		Comment:   f.Comment,
		Service:   f.Service,
		Timestamp: f.Timestamp,
	}
}

// FeedbackListFromModel converts records preserving order. The result is never nil.
func FeedbackListFromModel(items []model.Feedback) []FeedbackResponse {
	resp := make([]FeedbackResponse, 0, len(items))
	for _, f := range items {
		resp = append(resp, FeedbackFromModel(f))
	}
	return resp
}

// HealthResponse reports service availability.
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
