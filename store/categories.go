package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pveldman/tasklane/models"
)

// Categories manages the categories collection.
type Categories struct {
	col *mongo.Collection
}

func NewCategories(db *mongo.Database) *Categories {
	return &Categories{col: db.Collection("categories")}
}

// CategoryPatch describes a partial category update.
type CategoryPatch struct {
	Name  *string
	Color *string
}

// DefaultCategories are created for every user at registration.
var DefaultCategories = []models.Category{
	{Name: "Work", Color: "#3B82F6"},
	{Name: "Personal", Color: "#10B981"},
	{Name: "Study", Color: "#8B5CF6"},
	{Name: "Health", Color: "#F59E0B"},
}

// ListByUser returns all of a user's categories, oldest first.
func (s *Categories) ListByUser(ctx context.Context, userID string) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := s.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cur.Close(ctx)

	categories := []models.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

// Create inserts a new category. Returns ErrDuplicate when the user already
// has a category with that name.
func (s *Categories) Create(ctx context.Context, category *models.Category) error {
	err := s.col.FindOne(ctx, bson.M{"userId": category.UserID, "name": category.Name}).Err()
	switch {
	case err == nil:
		return ErrDuplicate
	case err != mongo.ErrNoDocuments:
		return fmt.Errorf("check existing category: %w", err)
	}

	res, err := s.col.InsertOne(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	category.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// CreateDefaults seeds the stock categories for a freshly registered user.
func (s *Categories) CreateDefaults(ctx context.Context, userID string) error {
	now := time.Now()
	docs := make([]interface{}, 0, len(DefaultCategories))
	for _, c := range DefaultCategories {
		c.UserID = userID
		c.CreatedAt = now
		docs = append(docs, c)
	}
	if _, err := s.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert default categories: %w", err)
	}
	return nil
}

// FindByID returns the category identified by id, scoped to userID.
func (s *Categories) FindByID(ctx context.Context, userID, id string) (models.Category, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Category{}, ErrNotFound
	}

	var category models.Category
	err = s.col.FindOne(ctx, bson.M{"_id": oid, "userId": userID}).Decode(&category)
	switch {
	case err == mongo.ErrNoDocuments:
		return models.Category{}, ErrNotFound
	case err != nil:
		return models.Category{}, fmt.Errorf("find category: %w", err)
	}
	return category, nil
}

// Update applies a partial update to the category identified by id, scoped
// to userID.
func (s *Categories) Update(ctx context.Context, userID, id string, patch CategoryPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Color != nil {
		set["color"] = *patch.Color
	}
	if len(set) == 0 {
		// Nothing to change; still report whether the record exists.
		_, err := s.FindByID(ctx, userID, id)
		return err
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid, "userId": userID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the category identified by id, scoped to userID. The
// caller is responsible for the category-in-use check.
func (s *Categories) Delete(ctx context.Context, userID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid, "userId": userID})
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
