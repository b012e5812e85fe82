package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/pveldman/tasklane/models"
	"github.com/pveldman/tasklane/store"
)

// UserStore is what the handlers need from the users repository.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
}

// TaskStore is what the handlers need from the tasks repository.
type TaskStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, userID, id string, patch store.TaskPatch) error
	Delete(ctx context.Context, userID, id string) error
	ExistsWithCategory(ctx context.Context, userID, category string) (bool, error)
}

// CategoryStore is what the handlers need from the categories repository.
type CategoryStore interface {
	ListByUser(ctx context.Context, userID string) ([]models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	CreateDefaults(ctx context.Context, userID string) error
	FindByID(ctx context.Context, userID, id string) (models.Category, error)
	Update(ctx context.Context, userID, id string, patch store.CategoryPatch) error
	Delete(ctx context.Context, userID, id string) error
}

// Handlers holds the stores and settings shared by all request handlers.
type Handlers struct {
	Users      UserStore
	Tasks      TaskStore
	Categories CategoryStore
	JWTSecret  string
}

// New is a constructor for the Handlers struct.
func New(users UserStore, tasks TaskStore, categories CategoryStore, jwtSecret string) *Handlers {
	return &Handlers{Users: users, Tasks: tasks, Categories: categories, JWTSecret: jwtSecret}
}

// respondWithJSON is a helper function to format and send JSON responses.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Printf("JSON marshal error: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// respondWithError sends a JSON error body with the given status code.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondStoreError maps repository failures onto the error taxonomy:
// not found -> 404, duplicate -> 409, anything else -> logged 500 with a
// generic message.
func respondStoreError(w http.ResponseWriter, err error, notFoundMsg, duplicateMsg string) {
	switch err {
	case store.ErrNotFound:
		respondWithError(w, http.StatusNotFound, notFoundMsg)
	case store.ErrDuplicate:
		respondWithError(w, http.StatusConflict, duplicateMsg)
	default:
		log.Printf("Store error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
