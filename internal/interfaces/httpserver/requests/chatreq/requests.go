package chatreq

// SendMessageRequest represents the request to chat with a persona
type SendMessageRequest struct {
	Message string `json:"message" binding:"required"`
}
