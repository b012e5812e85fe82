package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pveldman/tasklane/models"
)

// Users manages the users collection.
type Users struct {
	col *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection("users")}
}

// Create inserts a new user. Returns ErrDuplicate when the email is taken.
func (s *Users) Create(ctx context.Context, user *models.User) error {
	err := s.col.FindOne(ctx, bson.M{"email": user.Email}).Err()
	switch {
	case err == nil:
		return ErrDuplicate
	case err != mongo.ErrNoDocuments:
		return fmt.Errorf("check existing user: %w", err)
	}

	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByEmail looks a user up by its login key.
func (s *Users) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	switch {
	case err == mongo.ErrNoDocuments:
		return models.User{}, ErrNotFound
	case err != nil:
		return models.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

// FindByID looks a user up by its hex id.
func (s *Users) FindByID(ctx context.Context, id string) (models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	var user models.User
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	switch {
	case err == mongo.ErrNoDocuments:
		return models.User{}, ErrNotFound
	case err != nil:
		return models.User{}, fmt.Errorf("find user by id: %w", err)
	}
	return user, nil
}
