package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pveldman/tasklane/auth"
	"github.com/pveldman/tasklane/middleware"
	"github.com/pveldman/tasklane/models"
	"github.com/pveldman/tasklane/store"
)

const testSecret = "test-secret"

type fakeUsers struct {
	users []models.User
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return store.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUsers) FindByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

func (f *fakeUsers) FindByID(_ context.Context, id string) (models.User, error) {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			return u, nil
		}
	}
	return models.User{}, store.ErrNotFound
}

type fakeTasks struct {
	tasks []models.Task
}

func (f *fakeTasks) ListByUser(_ context.Context, userID string) ([]models.Task, error) {
	out := []models.Task{}
	for _, t := range f.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeTasks) Create(_ context.Context, task *models.Task) error {
	task.ID = primitive.NewObjectID()
	f.tasks = append(f.tasks, *task)
	return nil
}

func (f *fakeTasks) Update(_ context.Context, userID, id string, patch store.TaskPatch) error {
	for i := range f.tasks {
		t := &f.tasks[i]
		if t.ID.Hex() != id || t.UserID != userID {
			continue
		}
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Description != nil {
			t.Description = *patch.Description
		}
		if patch.Category != nil {
			t.Category = *patch.Category
		}
		if patch.Priority != nil {
			t.Priority = *patch.Priority
		}
		if patch.SetDueDate {
			t.DueDate = patch.DueDate
		}
		if patch.IsCompleted != nil {
			t.IsCompleted = *patch.IsCompleted
		}
		if patch.Subtasks != nil {
			t.Subtasks = *patch.Subtasks
		}
		t.UpdatedAt = time.Now()
		return nil
	}
	return store.ErrNotFound
}

func (f *fakeTasks) Delete(_ context.Context, userID, id string) error {
	for i, t := range f.tasks {
		if t.ID.Hex() == id && t.UserID == userID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeTasks) ExistsWithCategory(_ context.Context, userID, category string) (bool, error) {
	for _, t := range f.tasks {
		if t.UserID == userID && t.Category == category {
			return true, nil
		}
	}
	return false, nil
}

type fakeCategories struct {
	categories []models.Category
}

func (f *fakeCategories) ListByUser(_ context.Context, userID string) ([]models.Category, error) {
	out := []models.Category{}
	for _, c := range f.categories {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCategories) Create(_ context.Context, category *models.Category) error {
	for _, c := range f.categories {
		if c.UserID == category.UserID && c.Name == category.Name {
			return store.ErrDuplicate
		}
	}
	category.ID = primitive.NewObjectID()
	f.categories = append(f.categories, *category)
	return nil
}

func (f *fakeCategories) CreateDefaults(ctx context.Context, userID string) error {
	for _, c := range store.DefaultCategories {
		c.UserID = userID
		c.CreatedAt = time.Now()
		if err := f.Create(ctx, &c); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeCategories) FindByID(_ context.Context, userID, id string) (models.Category, error) {
	for _, c := range f.categories {
		if c.ID.Hex() == id && c.UserID == userID {
			return c, nil
		}
	}
	return models.Category{}, store.ErrNotFound
}

func (f *fakeCategories) Update(_ context.Context, userID, id string, patch store.CategoryPatch) error {
	for i := range f.categories {
		c := &f.categories[i]
		if c.ID.Hex() != id || c.UserID != userID {
			continue
		}
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.Color != nil {
			c.Color = *patch.Color
		}
		return nil
	}
	return store.ErrNotFound
}

func (f *fakeCategories) Delete(_ context.Context, userID, id string) error {
	for i, c := range f.categories {
		if c.ID.Hex() == id && c.UserID == userID {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type env struct {
	users      *fakeUsers
	tasks      *fakeTasks
	categories *fakeCategories
	router     *mux.Router
}

// newEnv wires the handlers over fakes with the same routing main uses.
func newEnv(t *testing.T) *env {
	t.Helper()

	e := &env{
		users:      &fakeUsers{},
		tasks:      &fakeTasks{},
		categories: &fakeCategories{},
	}
	h := New(e.users, e.tasks, e.categories, testSecret)

	router := mux.NewRouter()
	router.HandleFunc("/auth/register", h.Register).Methods("POST")
	router.HandleFunc("/auth/login", h.Login).Methods("POST")

	authed := router.NewRoute().Subrouter()
	authed.Use(middleware.Auth(testSecret))
	authed.HandleFunc("/auth/me", h.Me).Methods("GET")
	authed.HandleFunc("/tasks", h.ListTasks).Methods("GET")
	authed.HandleFunc("/tasks", h.CreateTask).Methods("POST")
	authed.HandleFunc("/tasks/{id}", h.UpdateTask).Methods("PUT")
	authed.HandleFunc("/tasks/{id}", h.DeleteTask).Methods("DELETE")
	authed.HandleFunc("/categories", h.ListCategories).Methods("GET")
	authed.HandleFunc("/categories", h.CreateCategory).Methods("POST")
	authed.HandleFunc("/categories/{id}", h.UpdateCategory).Methods("PUT")
	authed.HandleFunc("/categories/{id}", h.DeleteCategory).Methods("DELETE")
	authed.HandleFunc("/analytics", h.GetAnalytics).Methods("GET")

	e.router = router
	return e
}

// addUser creates a user directly in the fakes and returns its id and a
// valid token, bypassing registration (and its default categories).
func (e *env) addUser(t *testing.T, email string) (string, string) {
	t.Helper()
	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Name: "Test", Email: email, PasswordHash: hash}
	if err := e.users.Create(context.Background(), &user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	token, err := auth.GenerateToken(testSecret, user.ID.Hex())
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return user.ID.Hex(), token
}

func (e *env) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}
