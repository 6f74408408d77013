package utils

import "github.com/gin-gonic/gin"

// Message writes the flat {"message": ...} body the API uses for every
// non-validation error.
func Message(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"message": message})
}

// FieldErrors writes a field->message map, the shape validation failures use.
func FieldErrors(c *gin.Context, code int, errs map[string]string) {
	c.JSON(code, errs)
}
