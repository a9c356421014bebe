package repository

import (
	"math"
	"testing"

	"warehouse_api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProductSchema_ForCreate(t *testing.T) {
	categoryID := primitive.NewObjectID()

	t.Run("casts and defaults stock", func(t *testing.T) {
		doc, err := productSchema.forCreate(map[string]any{
			"name":     "Mouse",
			"price":    "29.99",
			"category": categoryID.Hex(),
			"extra":    "dropped",
		})
		require.NoError(t, err)
		assert.Equal(t, bson.M{
			"name":     "Mouse",
			"price":    29.99,
			"category": categoryID,
			"stock":    int64(0),
		}, doc)
	})

	t.Run("keeps explicit stock", func(t *testing.T) {
		doc, err := productSchema.forCreate(map[string]any{
			"name":     "Mouse",
			"price":    float64(10),
			"category": categoryID.Hex(),
			"stock":    float64(100),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(100), doc["stock"])
	})

	t.Run("requires category", func(t *testing.T) {
		_, err := productSchema.forCreate(map[string]any{"name": "Mouse", "price": float64(10)})

		var derr *domain.Error
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, domain.KindValidation, derr.Kind)
		require.Len(t, derr.Violations, 1)
		assert.Equal(t, "category", derr.Violations[0].Field)
		assert.Contains(t, derr.Message, "Product validation failed")
	})

	t.Run("rejects stock outside int64", func(t *testing.T) {
		_, err := productSchema.forCreate(map[string]any{
			"name":     "Mouse",
			"price":    float64(10),
			"category": categoryID.Hex(),
			"stock":    float64(math.MaxInt64),
		})

		var derr *domain.Error
		require.ErrorAs(t, err, &derr)
		require.Len(t, derr.Violations, 1)
		assert.Equal(t, "stock", derr.Violations[0].Field)
		assert.Contains(t, derr.Violations[0].Message, "Cast to integer failed")
	})

	t.Run("keeps whitespace name", func(t *testing.T) {
		doc, err := productSchema.forCreate(map[string]any{
			"name":     "  ",
			"price":    float64(10),
			"category": categoryID.Hex(),
		})
		require.NoError(t, err)
		assert.Equal(t, "  ", doc["name"])
	})

	t.Run("reports failed casts", func(t *testing.T) {
		_, err := productSchema.forCreate(map[string]any{
			"name":     "Mouse",
			"price":    "abc",
			"category": "not-an-id",
			"stock":    2.5,
		})

		var derr *domain.Error
		require.ErrorAs(t, err, &derr)
		fields := []string{}
		for _, v := range derr.Violations {
			fields = append(fields, v.Field)
		}
		assert.Equal(t, []string{"price", "category", "stock"}, fields)
	})
}

func TestCategorySchema_ForCreate(t *testing.T) {
	doc, err := categorySchema.forCreate(map[string]any{"name": "Electronics"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"name": "Electronics"}, doc)

	_, err = categorySchema.forCreate(map[string]any{"name": ""})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestSchema_ForUpdate(t *testing.T) {
	t.Run("only present fields", func(t *testing.T) {
		set, unset, err := productSchema.forUpdate(map[string]any{"price": float64(39.99)})
		require.NoError(t, err)
		assert.Equal(t, bson.M{"price": 39.99}, set)
		assert.Empty(t, unset)
	})

	t.Run("null clears optional field", func(t *testing.T) {
		set, unset, err := categorySchema.forUpdate(map[string]any{"name": "Gadgets", "description": nil})
		require.NoError(t, err)
		assert.Equal(t, bson.M{"name": "Gadgets"}, set)
		assert.Equal(t, bson.M{"description": ""}, unset)
	})

	t.Run("null required field rejected", func(t *testing.T) {
		_, _, err := productSchema.forUpdate(map[string]any{"name": nil})
		assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	})
}
