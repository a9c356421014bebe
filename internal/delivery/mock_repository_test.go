package delivery

import "context"

// mockRepository is a domain.Repository whose behavior is set per test.
type mockRepository[T any] struct {
	ListFn       func(ctx context.Context) ([]T, error)
	CreateFn     func(ctx context.Context, fields map[string]any) (*T, error)
	UpdateByIDFn func(ctx context.Context, id string, fields map[string]any) (*T, error)
	DeleteByIDFn func(ctx context.Context, id string) error
	GetByIDFn    func(ctx context.Context, id string) (*T, error)
}

func (m *mockRepository[T]) List(ctx context.Context) ([]T, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return []T{}, nil
}

func (m *mockRepository[T]) Create(ctx context.Context, fields map[string]any) (*T, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, fields)
	}
	return new(T), nil
}

func (m *mockRepository[T]) UpdateByID(ctx context.Context, id string, fields map[string]any) (*T, error) {
	if m.UpdateByIDFn != nil {
		return m.UpdateByIDFn(ctx, id, fields)
	}
	return new(T), nil
}

func (m *mockRepository[T]) DeleteByID(ctx context.Context, id string) error {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}
	return nil
}

func (m *mockRepository[T]) GetByID(ctx context.Context, id string) (*T, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return new(T), nil
}
