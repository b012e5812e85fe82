package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pveldman/tasklane/config"
	"github.com/pveldman/tasklane/database"
	"github.com/pveldman/tasklane/handlers"
	"github.com/pveldman/tasklane/middleware"
	"github.com/pveldman/tasklane/store"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the database: %v", err)
	}
	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	h := handlers.New(
		store.NewUsers(db),
		store.NewTasks(db),
		store.NewCategories(db),
		cfg.JWTSecret,
	)

	router := mux.NewRouter()

	// Public auth routes.
	router.HandleFunc("/auth/register", h.Register).Methods("POST")
	router.HandleFunc("/auth/login", h.Login).Methods("POST")

	// Everything else requires a valid bearer token.
	authed := router.NewRoute().Subrouter()
	authed.Use(middleware.Auth(cfg.JWTSecret))

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

	log.Printf("Server listening on %s...", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, router))
}
