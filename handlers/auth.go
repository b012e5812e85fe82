package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/pveldman/tasklane/auth"
	"github.com/pveldman/tasklane/middleware"
	"github.com/pveldman/tasklane/models"
	"github.com/pveldman/tasklane/store"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// Register handles POST /auth/register: creates the account, seeds the
// default categories and returns a fresh token.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.Name == "" || req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Name, email, and password are required")
		return
	}
	if len(req.Password) < MinPasswordLength {
		respondWithError(w, http.StatusBadRequest, "Password must be at least 6 characters long")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Password hashing error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	now := time.Now()
	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.Users.Create(r.Context(), &user); err != nil {
		respondStoreError(w, err, "User not found", "User with this email already exists")
		return
	}

	if err := h.Categories.CreateDefaults(r.Context(), user.ID.Hex()); err != nil {
		// The account exists; a missing starter set is not worth failing
		// registration over.
		log.Printf("Seeding default categories for %s failed: %v", user.ID.Hex(), err)
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID.Hex())
	if err != nil {
		log.Printf("Error signing token: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created successfully",
		"token":   token,
		"user":    user.Public(),
	})
}

// Login handles POST /auth/login. Unknown emails and wrong passwords get the
// same answer.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if req.Email == "" || req.Password == "" {
		respondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.Users.FindByEmail(r.Context(), req.Email)
	if err == store.ErrNotFound {
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	} else if err != nil {
		log.Printf("Database error retrieving user for login: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, user.ID.Hex())
	if err != nil {
		log.Printf("Error signing token: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    user.Public(),
	})
}

// Me handles GET /auth/me: resolves the token's user. A token for a deleted
// account yields 404.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r.Context())

	user, err := h.Users.FindByID(r.Context(), userID)
	if err != nil {
		respondStoreError(w, err, "User not found", "")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{"user": user.Public()})
}
