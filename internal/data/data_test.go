package data

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/roguepikachu/petshop/internal/config"
)

func TestPostgresDSN(t *testing.T) {
	c := config.Config{PostgresHost: "db", PostgresPort: "5433", PostgresUser: "u", PostgresPassword: "p", PostgresDB: "petshop", PostgresSSLMode: "disable"}
	if got := PostgresDSN(c); got != "postgres://u:p@db:5433/petshop?sslmode=disable" {
		t.Fatalf("unexpected dsn: %s", got)
	}
	c.PostgresURL = "postgres://override"
	if got := PostgresDSN(c); got != "postgres://override" {
		t.Fatalf("url should win, got %s", got)
	}
}

func TestSQLiteDSN(t *testing.T) {
	tests := map[string]string{
		"petshop.db":                   "petshop.db?_pragma=foreign_keys(1)",
		"file:x.db?cache=shared":       "file:x.db?cache=shared&_pragma=foreign_keys(1)",
		"a.db?_pragma=foreign_keys(1)": "a.db?_pragma=foreign_keys(1)",
	}
	for in, want := range tests {
		if got := SQLiteDSN(in); got != want {
			t.Fatalf("SQLiteDSN(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewSQLite_Opens(t *testing.T) {
	db, err := NewSQLite(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	var fk int
	if err := db.Raw("PRAGMA foreign_keys").Scan(&fk).Error; err != nil {
		t.Fatalf("pragma: %v", err)
	}
	if fk != 1 {
		t.Fatalf("foreign keys should be on, got %d", fk)
	}
}

func TestNewRedisClient_DisabledWithoutAddr(t *testing.T) {
	if NewRedisClient(config.Config{}) != nil {
		t.Fatalf("expected nil client")
	}
	c := NewRedisClient(config.Config{RedisAddr: "127.0.0.1:6390", RedisDB: 2})
	if c == nil || c.Options().DB != 2 {
		t.Fatalf("unexpected client")
	}
	_ = c.Close()
}
