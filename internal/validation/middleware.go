package validation

import (
	"errors"
	"io"

	"warehouse_api/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/sirupsen/logrus"
)

const payloadKey = "validation.payload"

// Middleware rejects the request before it reaches the handler when the
// JSON body breaks any rule. The error is attached to the context for the
// delivery error handler to render.
func Middleware(rules RuleSet, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := Payload(c)
		if err != nil {
			logger.Warnf("Rejected body for %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			_ = c.Error(err)
			c.Abort()
			return
		}

		if violations := rules.Validate(payload); len(violations) > 0 {
			logger.WithField("violations", len(violations)).
				Warnf("Validation failed for %s %s", c.Request.Method, c.Request.URL.Path)
			_ = c.Error(domain.NewValidationError("validation failed", violations...))
			c.Abort()
			return
		}

		c.Next()
	}
}

// Payload returns the request body as a JSON object, decoding it once per
// request. An empty body is an empty object.
func Payload(c *gin.Context) (map[string]any, error) {
	if cached, ok := c.Get(payloadKey); ok {
		return cached.(map[string]any), nil
	}

	var payload map[string]any
	if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil && !errors.Is(err, io.EOF) {
		return nil, domain.NewValidationError("Invalid request body: " + err.Error())
	}
	if payload == nil {
		payload = map[string]any{}
	}

	c.Set(payloadKey, payload)
	return payload, nil
}
