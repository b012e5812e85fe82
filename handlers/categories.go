package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/pveldman/tasklane/middleware"
	"github.com/pveldman/tasklane/models"
	"github.com/pveldman/tasklane/store"
)

// ListCategories handles GET /categories: the caller's categories, oldest
// first.
func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	categories, err := h.Categories.ListByUser(r.Context(), userID)
	if err != nil {
		log.Printf("Get categories error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"categories": categories})
}

// CreateCategory handles POST /categories.
func (h *Handlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.Name == "" || req.Color == "" {
		respondWithError(w, http.StatusBadRequest, "Name and color are required")
		return
	}

	category := models.Category{
		UserID:    userID,
		Name:      req.Name,
		Color:     req.Color,
		CreatedAt: time.Now(),
	}
	if err := h.Categories.Create(r.Context(), &category); err != nil {
		respondStoreError(w, err, "Category not found", "Category with this name already exists")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Category created successfully",
		"category": category,
	})
}

// UpdateCategory handles PUT /categories/{id}.
func (h *Handlers) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	categoryID := mux.Vars(r)["id"]

	var req models.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	patch := store.CategoryPatch{}
	if req.Name != "" {
		patch.Name = &req.Name
	}
	if req.Color != "" {
		patch.Color = &req.Color
	}

	if err := h.Categories.Update(r.Context(), userID, categoryID, patch); err != nil {
		respondStoreError(w, err, "Category not found", "Category with this name already exists")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Category updated successfully"})
}

// DeleteCategory handles DELETE /categories/{id}. Deletion is refused while
// any of the user's tasks still references the category by name, so task
// category references are never silently orphaned.
func (h *Handlers) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	categoryID := mux.Vars(r)["id"]

	category, err := h.Categories.FindByID(r.Context(), userID, categoryID)
	if err != nil {
		respondStoreError(w, err, "Category not found", "")
		return
	}

	inUse, err := h.Tasks.ExistsWithCategory(r.Context(), userID, category.Name)
	if err != nil {
		log.Printf("Category usage check error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if inUse {
		respondWithError(w, http.StatusBadRequest, "Cannot delete category that is being used by tasks")
		return
	}

	if err := h.Categories.Delete(r.Context(), userID, categoryID); err != nil {
		respondStoreError(w, err, "Category not found", "")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}
