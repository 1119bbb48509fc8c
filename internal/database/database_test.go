package database

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/project-manager/internal/config"
	"github.com/jackc/pgx/v5"
)

func testDatabaseConfig() config.DatabaseConfig {
	return config.DatabaseConfig{
		Host:            "localhost",
		Port:            5432,
		User:            "pms",
		Password:        "secret",
		Name:            "pms",
		SSLMode:         "disable",
		MaxOpenConns:    20,
		MaxIdleConns:    4,
		ConnMaxLifetime: 300,
		ConnMaxIdleTime: 60,
	}
}

func TestPoolConfig(t *testing.T) {
	pc, err := PoolConfig(testDatabaseConfig())
	if err != nil {
		t.Fatalf("PoolConfig() error: %v", err)
	}

	if pc.MaxConns != 20 {
		t.Errorf("MaxConns = %d, want 20", pc.MaxConns)
	}
	if pc.MinConns != 4 {
		t.Errorf("MinConns = %d, want 4", pc.MinConns)
	}
	if pc.MaxConnLifetime != 5*time.Minute {
		t.Errorf("MaxConnLifetime = %v, want 5m", pc.MaxConnLifetime)
	}
	if pc.MaxConnIdleTime != time.Minute {
		t.Errorf("MaxConnIdleTime = %v, want 1m", pc.MaxConnIdleTime)
	}
	if pc.ConnConfig.Database != "pms" || pc.ConnConfig.Port != 5432 {
		t.Errorf("unexpected conn config: db=%q port=%d", pc.ConnConfig.Database, pc.ConnConfig.Port)
	}
}

func TestPoolConfig_IdleAboveMaxIgnored(t *testing.T) {
	cfg := testDatabaseConfig()
	cfg.MaxIdleConns = 50

	pc, err := PoolConfig(cfg)
	if err != nil {
		t.Fatalf("PoolConfig() error: %v", err)
	}
	if pc.MinConns != 0 {
		t.Errorf("MinConns = %d, want 0 when idle exceeds max", pc.MinConns)
	}
}

type ctxKey string

type recordingTracer struct {
	name  string
	calls *[]string
}

func (r recordingTracer) TraceQueryStart(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryStartData) context.Context {
	*r.calls = append(*r.calls, r.name+":start")
	return context.WithValue(ctx, ctxKey(r.name), true)
}

func (r recordingTracer) TraceQueryEnd(ctx context.Context, _ *pgx.Conn, _ pgx.TraceQueryEndData) {
	*r.calls = append(*r.calls, r.name+":end")
}

func TestMultiTracer(t *testing.T) {
	var calls []string
	mt := &multiTracer{tracers: []any{
		recordingTracer{name: "a", calls: &calls},
		struct{}{},
		recordingTracer{name: "b", calls: &calls},
	}}

	ctx := mt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT 1"})
	mt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{})

	if ctx.Value(ctxKey("a")) == nil || ctx.Value(ctxKey("b")) == nil {
		t.Error("context from every tracer should be threaded through")
	}

	want := "a:start,b:start,a:end,b:end"
	if got := strings.Join(calls, ","); got != want {
		t.Errorf("calls = %s, want %s", got, want)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	sub, err := Migrations()
	if err != nil {
		t.Fatalf("Migrations() error: %v", err)
	}

	data, err := fs.ReadFile(sub, "001_create_tables.sql")
	if err != nil {
		t.Fatalf("reading migration: %v", err)
	}

	sql := string(data)
	for _, table := range []string{"projects", "employees", "tasks"} {
		if !strings.Contains(sql, "CREATE TABLE "+table) {
			t.Errorf("migration does not create %s", table)
		}
	}
	if !strings.Contains(sql, "---- create above / drop below ----") {
		t.Error("migration is missing the tern down separator")
	}
}
