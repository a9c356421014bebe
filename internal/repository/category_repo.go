package repository

import (
	"warehouse_api/internal/domain"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	categoriesCollection = "categories"
	productsCollection   = "products"
)

func NewMongoCategoryRepository(db *mongo.Database, logger *logrus.Logger) domain.CategoryRepository {
	return newCollectionRepository[domain.Category](db, categoriesCollection, categorySchema, logger)
}
