package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRootCommands(t *testing.T) {
	root := newRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"serve", "migrate", "tasks"} {
		if !names[want] {
			t.Errorf("missing subcommand %q", want)
		}
	}
}

func TestTasksRequiresIDs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing flags", []string{"tasks"}, "required flag"},
		{"non-positive ids", []string{"tasks", "--employee", "0", "--project", "2"}, "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCmd()
			root.SetArgs(tt.args)
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})

			err := root.Execute()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestServeMigrateFlagDefault(t *testing.T) {
	flag := newServeCmd().Flags().Lookup("migrate")
	if flag == nil || flag.DefValue != "true" {
		t.Errorf("--migrate default = %v, want true", flag)
	}
}

// stubServer serves with a plain http.Server and records shutdown.
type stubServer struct {
	http     *http.Server
	shutdown bool
}

func (s *stubServer) Start() error {
	return s.http.ListenAndServe()
}

func (s *stubServer) Shutdown(ctx context.Context) error {
	s.shutdown = true
	return s.http.Shutdown(ctx)
}

func TestServeUntilDone_StartFailureIsReturned(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer taken.Close()

	srv := &stubServer{http: &http.Server{Addr: taken.Addr().String()}}
	logger := zerolog.Nop()

	err = serveUntilDone(context.Background(), srv, &logger)
	if err == nil {
		t.Fatal("serveUntilDone() = nil, want the listen error")
	}
	if !srv.shutdown {
		t.Error("server was not shut down after Start failed")
	}
}

func TestServeUntilDone_CancelledContext(t *testing.T) {
	srv := &stubServer{http: &http.Server{Addr: "127.0.0.1:0"}}
	logger := zerolog.Nop()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := serveUntilDone(ctx, srv, &logger); err != nil {
		t.Fatalf("serveUntilDone() = %v, want nil on a clean shutdown", err)
	}
	if !srv.shutdown {
		t.Error("server was not shut down")
	}
}
