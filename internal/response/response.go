package response

import "github.com/gin-gonic/gin"

// ErrorBody is the payload nested under "error" in failure responses
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON shape of every failure response
type ErrorResponse struct {
	Error   ErrorBody `json:"error"`
	Message string    `json:"message"`
}

// MessageResponse is returned by endpoints whose success carries only a message
type MessageResponse struct {
	Message string `json:"message"`
}

// SendSuccess writes data as the bare JSON body
func SendSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// SendMessage writes {"message": msg}
func SendMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, MessageResponse{Message: msg})
}

// SendError writes an ErrorResponse
func SendError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:   ErrorBody{Code: code, Message: message},
		Message: message,
	})
}

// AbortWithError writes an ErrorResponse and stops the handler chain
func AbortWithError(c *gin.Context, status int, code, message string) {
	SendError(c, status, code, message)
	c.Abort()
}
