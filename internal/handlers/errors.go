package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/goswift/booking-backend/internal/middleware"
	"github.com/goswift/booking-backend/internal/services"
	"github.com/sirupsen/logrus"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// respondError writes the response for an error returned by a service.
// Domain errors keep their message and code; anything else is logged and
// reported as an internal error.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	var se *services.ServiceError
	if errors.As(err, &se) {
		status, name := statusOf(se)
		if status == http.StatusInternalServerError {
			logger.WithError(err).WithField("request_id", c.GetString(middleware.RequestIDKey)).Error("Integrity failure")
		}
		c.JSON(status, ErrorResponse{Error: name, Message: se.Message, Code: se.Code})
		return
	}

	_ = c.Error(err)
	logger.WithError(err).WithFields(logrus.Fields{
		"path":       c.Request.URL.Path,
		"request_id": c.GetString(middleware.RequestIDKey),
	}).Error("Request failed")

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_error",
		Message: "An unexpected error occurred",
		Code:    "INTERNAL_ERROR",
	})
}

func statusOf(se *services.ServiceError) (int, string) {
	switch se.Code {
	case services.CodeInvalidLogin, services.CodeAccountInactive:
		return http.StatusUnauthorized, "unauthorized"
	}

	switch se.Kind {
	case services.ErrNotFound:
		return http.StatusNotFound, "not_found"
	case services.ErrUnauthorized:
		return http.StatusForbidden, "forbidden"
	case services.ErrConflict:
		return http.StatusConflict, "conflict"
	case services.ErrValidation:
		return http.StatusBadRequest, "validation_error"
	default:
		return http.StatusInternalServerError, "integrity_error"
	}
}

func badRequest(c *gin.Context, message, code string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid_request",
		Message: message,
		Code:    code,
	})
}

// pathUUID parses the :name path parameter. It writes a 400 and returns
// false when the value is not a UUID.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, "Invalid "+name, "INVALID_ID")
		return uuid.Nil, false
	}
	return id, true
}

// queryUUID parses an optional query parameter. Absent or empty yields nil.
func queryUUID(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		badRequest(c, "Invalid "+name, "INVALID_ID")
		return nil, false
	}
	return &id, true
}

// actor returns the authenticated user id. AuthMiddleware guarantees it on
// every route that calls this.
func actor(c *gin.Context) (uuid.UUID, bool) {
	userCtx, ok := middleware.GetUserContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
			Code:    "MISSING_USER_CONTEXT",
		})
		return uuid.Nil, false
	}
	return userCtx.UserID, true
}
