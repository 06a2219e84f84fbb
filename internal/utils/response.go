package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// The wire contract is the one the dashboard SPA already speaks: success
// responses carry the entity (or array) directly, failures carry
// {"error": "..."} with an appropriate status code.

func OKResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"error": message})
}

func BadRequestResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, message)
}

func NotFoundResponse(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, message)
}

func InternalServerErrorResponse(c *gin.Context, message string) {
	if message == "" {
		message = ErrInternalServer
	}
	ErrorResponse(c, http.StatusInternalServerError, message)
}

func CSVResponse(c *gin.Context, filename, body string) {
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}
