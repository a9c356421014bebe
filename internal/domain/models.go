package domain

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Product struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Price      float64            `json:"price" bson:"price"`
	CategoryID primitive.ObjectID `json:"-" bson:"category,omitempty"`
	Stock      int                `json:"stock" bson:"stock"`
	CreatedAt  time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updatedAt"`

	// Category holds the referenced document once it has been expanded.
	Category *Category `json:"-" bson:"-"`
}

// MarshalJSON renders category as the embedded document when it has been
// expanded and as the bare id otherwise.
func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	out := struct {
		plain
		Category any `json:"category,omitempty"`
	}{plain: plain(p)}

	switch {
	case p.Category != nil:
		out.Category = p.Category
	case !p.CategoryID.IsZero():
		out.Category = p.CategoryID
	}
	return json.Marshal(out)
}
