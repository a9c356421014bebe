package delivery

import (
	"net/http"
	"strings"

	"warehouse_api/internal/domain"
	"warehouse_api/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ResourceHandler serves the five CRUD operations of one resource.
type ResourceHandler[T any] struct {
	name  string
	path  string
	repo  domain.Repository[T]
	rules validation.RuleSet
	log   *logrus.Logger
}

func NewResourceHandler[T any](name, path string, repo domain.Repository[T], rules validation.RuleSet, logger *logrus.Logger) *ResourceHandler[T] {
	return &ResourceHandler[T]{
		name:  name,
		path:  path,
		repo:  repo,
		rules: rules,
		log:   logger,
	}
}

func NewCategoryHandler(repo domain.CategoryRepository, logger *logrus.Logger) *ResourceHandler[domain.Category] {
	return NewResourceHandler("Category", "/categories", repo, validation.CategoryRules, logger)
}

func NewProductHandler(repo domain.ProductRepository, logger *logrus.Logger) *ResourceHandler[domain.Product] {
	return NewResourceHandler("Product", "/products", repo, validation.ProductRules, logger)
}

func (h *ResourceHandler[T]) RegisterRoutes(router gin.IRouter) {
	validate := validation.Middleware(h.rules, h.log)

	group := router.Group(h.path)
	{
		group.GET("", h.List)
		group.POST("", validate, h.Create)
		group.PUT("/:id", validate, h.Update)
		group.DELETE("/:id", h.Delete)
		group.GET("/:id", h.Get)
	}
}

func (h *ResourceHandler[T]) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list", err)
		return
	}

	h.log.Infof("Retrieved %d %s records", len(items), strings.ToLower(h.name))
	c.JSON(http.StatusOK, items)
}

func (h *ResourceHandler[T]) Create(c *gin.Context) {
	payload, err := validation.Payload(c)
	if err != nil {
		h.fail(c, "create", err)
		return
	}

	created, err := h.repo.Create(c.Request.Context(), payload)
	if err != nil {
		h.fail(c, "create", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ResourceHandler[T]) Update(c *gin.Context) {
	id := c.Param("id")
	payload, err := validation.Payload(c)
	if err != nil {
		h.fail(c, "update", err)
		return
	}

	updated, err := h.repo.UpdateByID(c.Request.Context(), id, payload)
	if err != nil {
		h.fail(c, "update", err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *ResourceHandler[T]) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.DeleteByID(c.Request.Context(), id); err != nil {
		h.fail(c, "delete", err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: h.name + " deleted"})
}

func (h *ResourceHandler[T]) Get(c *gin.Context) {
	id := c.Param("id")
	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get", err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// fail logs the failure and hands it to ErrorHandler.
func (h *ResourceHandler[T]) fail(c *gin.Context, op string, err error) {
	h.log.WithFields(logrus.Fields{
		"request_id": c.GetString(requestIDKey),
		"resource":   h.name,
		"operation":  op,
		"id":         c.Param("id"),
		"kind":       domain.KindOf(err).String(),
	}).Errorf("Failed to %s %s: %v", op, strings.ToLower(h.name), err)
	_ = c.Error(err)
}
