package repository

import (
	"context"

	"warehouse_api/internal/domain"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoProductRepository expands each product's category reference on reads.
// Writes return the raw reference.
type mongoProductRepository struct {
	*collectionRepository[domain.Product]
	categories *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database, logger *logrus.Logger) domain.ProductRepository {
	return &mongoProductRepository{
		collectionRepository: newCollectionRepository[domain.Product](db, productsCollection, productSchema, logger),
		categories:           db.Collection(categoriesCollection),
	}
}

func (r *mongoProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	products, err := r.collectionRepository.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := r.expandCategories(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *mongoProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := r.collectionRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	batch := []domain.Product{*product}
	if err := r.expandCategories(ctx, batch); err != nil {
		return nil, err
	}
	return &batch[0], nil
}

// expandCategories loads every referenced category in one query. Products
// whose category no longer exists keep the bare id.
func (r *mongoProductRepository) expandCategories(ctx context.Context, products []domain.Product) error {
	seen := make(map[primitive.ObjectID]struct{})
	ids := make([]primitive.ObjectID, 0, len(products))
	for _, p := range products {
		if p.CategoryID.IsZero() {
			continue
		}
		if _, ok := seen[p.CategoryID]; ok {
			continue
		}
		seen[p.CategoryID] = struct{}{}
		ids = append(ids, p.CategoryID)
	}
	if len(ids) == 0 {
		return nil
	}

	cursor, err := r.categories.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		r.log.Errorf("Failed to load categories for %d products: %v", len(products), err)
		return domain.NewStoreError("could not expand product categories", err)
	}
	defer cursor.Close(ctx)

	var categories []domain.Category
	if err := cursor.All(ctx, &categories); err != nil {
		r.log.Errorf("Failed to decode categories for products: %v", err)
		return domain.NewStoreError("could not decode product categories", err)
	}

	byID := make(map[primitive.ObjectID]*domain.Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
	for i := range products {
		if c, ok := byID[products[i].CategoryID]; ok {
			products[i].Category = c
		} else if !products[i].CategoryID.IsZero() {
			r.log.Warnf("Product %s references missing category %s", products[i].ID.Hex(), products[i].CategoryID.Hex())
		}
	}
	return nil
}
