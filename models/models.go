package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account. Email doubles as the login key.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"` // never serialized to clients
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PublicUser is the client-facing projection of a User.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips the fields clients should never see.
func (u User) Public() PublicUser {
	return PublicUser{ID: u.ID.Hex(), Name: u.Name, Email: u.Email}
}

// Claims defines the information carried in a bearer token.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateTaskRequest is the payload for POST /tasks. DueDate is either an
// RFC 3339 timestamp or a bare yyyy-mm-dd date.
type CreateTaskRequest struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Priority    Priority       `json:"priority"`
	DueDate     string         `json:"dueDate"`
	Subtasks    []SubtaskInput `json:"subtasks"`
}

// UpdateTaskRequest is the payload for PUT /tasks/{id}. Nil pointers leave a
// field untouched. A present-but-empty dueDate clears the due date; a present
// subtasks array replaces the stored array wholesale.
type UpdateTaskRequest struct {
	Title       *string         `json:"title"`
	Description *string         `json:"description"`
	Category    *string         `json:"category"`
	Priority    *Priority       `json:"priority"`
	DueDate     *string         `json:"dueDate"`
	IsCompleted *bool           `json:"isCompleted"`
	Subtasks    *[]SubtaskInput `json:"subtasks"`
}

// CategoryRequest is the payload for POST and PUT on /categories.
type CategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}
