package response

import "github.com/gin-gonic/gin"

// APIResponse is the uniform envelope every endpoint answers with.
// Success is derived from the status code, never set directly.
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
	Errors     []string    `json:"errors,omitempty"`
	Stack      string      `json:"stack,omitempty"`
}

// New builds an envelope for the given status, payload and message
func New(statusCode int, data interface{}, message string) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	}
}

// Send writes the envelope as JSON with a matching HTTP status
func Send(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, New(statusCode, data, message))
}
