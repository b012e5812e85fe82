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

// Tasks manages the tasks collection.
type Tasks struct {
	col *mongo.Collection
}

func NewTasks(db *mongo.Database) *Tasks {
	return &Tasks{col: db.Collection("tasks")}
}

// TaskPatch describes a partial task update. Nil pointers leave the stored
// field untouched. DueDate only applies when SetDueDate is true; a nil
// DueDate with SetDueDate then clears the stored due date. A non-nil
// Subtasks replaces the stored array wholesale.
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *models.Priority
	DueDate     *time.Time
	SetDueDate  bool
	IsCompleted *bool
	Subtasks    *[]models.Subtask
}

// ListByUser returns all of a user's tasks, newest first.
func (s *Tasks) ListByUser(ctx context.Context, userID string) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cur.Close(ctx)

	tasks := []models.Task{}
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return tasks, nil
}

// Create inserts a new task owned by task.UserID.
func (s *Tasks) Create(ctx context.Context, task *models.Task) error {
	res, err := s.col.InsertOne(ctx, task)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	task.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// Update applies a partial update to the task identified by id, scoped to
// userID. updatedAt is always bumped. Returns ErrNotFound when no document
// of that user matched.
func (s *Tasks) Update(ctx context.Context, userID, id string, patch TaskPatch) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.SetDueDate {
		if patch.DueDate != nil {
			set["dueDate"] = *patch.DueDate
		} else {
			set["dueDate"] = nil
		}
	}
	if patch.IsCompleted != nil {
		set["isCompleted"] = *patch.IsCompleted
	}
	if patch.Subtasks != nil {
		set["subtasks"] = *patch.Subtasks
	}

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid, "userId": userID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the task identified by id, scoped to userID.
func (s *Tasks) Delete(ctx context.Context, userID, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid, "userId": userID})
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ExistsWithCategory reports whether any of the user's tasks references the
// given category name.
func (s *Tasks) ExistsWithCategory(ctx context.Context, userID, category string) (bool, error) {
	err := s.col.FindOne(ctx, bson.M{"userId": userID, "category": category}).Err()
	switch {
	case err == nil:
		return true, nil
	case err == mongo.ErrNoDocuments:
		return false, nil
	}
	return false, fmt.Errorf("check category usage: %w", err)
}
