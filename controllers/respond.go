package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SamiMK0/smart-room-management-system/services"
	"github.com/SamiMK0/smart-room-management-system/utils"
)

// serviceError maps service failures onto the API's status codes. resource
// names the 404 subject; conflictMsg is the 409 body when the service
// reports a conflict.
func serviceError(c *gin.Context, err error, resource, conflictMsg string) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		utils.FieldErrors(c, http.StatusBadRequest, map[string]string{vErr.Field: vErr.Message})
	case errors.Is(err, services.ErrNotFound):
		utils.Message(c, http.StatusNotFound, resource+" not found")
	case errors.Is(err, services.ErrConflict):
		utils.Message(c, http.StatusConflict, conflictMsg)
	default:
		log.Printf("internal error: %v", err)
		utils.Message(c, http.StatusInternalServerError, "Internal server error")
	}
}

// idParam parses a numeric path parameter; 0 means it wasn't one.
func idParam(c *gin.Context, name string) uint {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
