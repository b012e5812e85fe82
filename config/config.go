package config

import (
	"os"
	"strings"
)

// Config keeps runtime settings for the server.
type Config struct {
	Addr      string
	MongoURI  string
	Database  string
	JWTSecret string
}

const (
	defaultAddr     = ":8080"
	defaultMongoURI = "mongodb://localhost:27017/ToDoList"
	defaultDatabase = "ToDoList"

	// Development fallback only. Set JWT_SECRET in any real deployment.
	defaultJWTSecret = "your_super_secret_jwt_key"
)

// Load reads configuration from environment variables with sane defaults.
func Load() Config {
	cfg := Config{
		Addr:      strings.TrimSpace(os.Getenv("ADDR")),
		MongoURI:  strings.TrimSpace(os.Getenv("MONGODB_URI")),
		Database:  strings.TrimSpace(os.Getenv("MONGODB_DB")),
		JWTSecret: strings.TrimSpace(os.Getenv("JWT_SECRET")),
	}

	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = defaultMongoURI
	}
	if cfg.Database == "" {
		if name := dbNameFromURI(cfg.MongoURI); name != "" {
			cfg.Database = name
		} else {
			cfg.Database = defaultDatabase
		}
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret
	}

	return cfg
}

// dbNameFromURI extracts the database name from a mongodb:// or
// mongodb+srv:// connection string, ignoring any query options.
func dbNameFromURI(uri string) string {
	rest := uri
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	} else {
		return ""
	}
	slash := strings.Index(rest, "/")
	if slash < 0 {
		return ""
	}
	name := rest[slash+1:]
	if q := strings.Index(name, "?"); q >= 0 {
		name = name[:q]
	}
	return name
}
