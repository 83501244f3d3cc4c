// Package response writes the JSON envelope shared by the front end's API
// routes and the error middleware.
package response

import "github.com/gin-gonic/gin"

type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Error   *Problem `json:"error,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, envelope{Success: true, Data: data})
}

func Error(c *gin.Context, statusCode int, code string, message string) {
	c.JSON(statusCode, failure(code, message))
}

// Abort is Error for middleware: the remaining handlers are skipped.
func Abort(c *gin.Context, statusCode int, code string, message string) {
	c.AbortWithStatusJSON(statusCode, failure(code, message))
}

func failure(code, message string) envelope {
	return envelope{Error: &Problem{Code: code, Message: message}}
}
