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

// ListTasks handles GET /tasks: the caller's tasks, newest first.
func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	tasks, err := h.Tasks.ListByUser(r.Context(), userID)
	if err != nil {
		log.Printf("Get tasks error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"tasks": tasks})
}

// CreateTask handles POST /tasks.
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.Title == "" || req.Category == "" || req.Priority == "" {
		respondWithError(w, http.StatusBadRequest, "Title, category, and priority are required")
		return
	}
	if !req.Priority.Valid() {
		respondWithError(w, http.StatusBadRequest, "Priority must be one of low, medium, high, urgent")
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := models.ParseDueDate(req.DueDate)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid due date")
			return
		}
		dueDate = &parsed
	}

	now := time.Now()
	task := models.Task{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		DueDate:     dueDate,
		IsCompleted: false,
		Subtasks:    models.SanitizeSubtasks(req.Subtasks),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.Tasks.Create(r.Context(), &task); err != nil {
		log.Printf("Create task error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Task created successfully",
		"task":    task,
	})
}

// UpdateTask handles PUT /tasks/{id}: a partial update of any mutable field,
// including wholesale subtask-array replacement.
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	taskID := mux.Vars(r)["id"]

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.Priority != nil && !req.Priority.Valid() {
		respondWithError(w, http.StatusBadRequest, "Priority must be one of low, medium, high, urgent")
		return
	}

	patch := store.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		IsCompleted: req.IsCompleted,
	}

	if req.DueDate != nil {
		patch.SetDueDate = true
		if *req.DueDate != "" {
			parsed, err := models.ParseDueDate(*req.DueDate)
			if err != nil {
				respondWithError(w, http.StatusBadRequest, "Invalid due date")
				return
			}
			patch.DueDate = &parsed
		}
	}

	if req.Subtasks != nil {
		sanitized := models.SanitizeSubtasks(*req.Subtasks)
		patch.Subtasks = &sanitized
	}

	if err := h.Tasks.Update(r.Context(), userID, taskID, patch); err != nil {
		respondStoreError(w, err, "Task not found", "")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Task updated successfully"})
}

// DeleteTask handles DELETE /tasks/{id}.
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())
	taskID := mux.Vars(r)["id"]

	if err := h.Tasks.Delete(r.Context(), userID, taskID); err != nil {
		respondStoreError(w, err, "Task not found", "")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}
