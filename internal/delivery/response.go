package delivery

import (
	"errors"
	"net/http"

	"warehouse_api/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ValidationErrorResponse struct {
	Errors []domain.Violation `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// writeError is the single place where failures become responses.
func writeError(c *gin.Context, logger logrus.FieldLogger, err error) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		logger.Errorf("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Unexpected error"})
		return
	}

	switch derr.Kind {
	case domain.KindValidation:
		logger.Warnf("Validation failure: %v", derr)
		if len(derr.Violations) > 0 {
			c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: derr.Violations})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: derr.Message})
	case domain.KindNotFound:
		logger.Warnf("Not found: %v", derr)
		c.JSON(http.StatusNotFound, MessageResponse{Message: derr.Message})
	case domain.KindStore:
		logger.Errorf("Store failure: %v", derr)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	default:
		logger.Errorf("Unexpected error: %v", derr)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Unexpected error"})
	}
}
