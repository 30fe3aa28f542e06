package dto

import "time"

// CreateFeedbackRequest payload.
type CreateFeedbackRequest struct {
	SwapID  string  `json:"swap_id"`
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// FeedbackResponse response.
type FeedbackResponse struct {
	ID         string    `json:"id"`
	SwapID     string    `json:"swap_id"`
	GiverID    string    `json:"giver_id"`
	ReceiverID string    `json:"receiver_id"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}
