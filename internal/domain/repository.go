package domain

import "context"

// Repository is the per-collection store contract shared by every resource.
// Fields are raw request payloads; implementations cast and filter them
// against their own schema.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, fields map[string]any) (*T, error)
	UpdateByID(ctx context.Context, id string, fields map[string]any) (*T, error)
	DeleteByID(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*T, error)
}

type CategoryRepository = Repository[Category]

type ProductRepository = Repository[Product]
