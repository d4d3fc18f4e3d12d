package main

import (
	"context"
	"net/http"
	"syscall"
	"testing"
	"time"
)

func TestStartServer(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	server := startServer(mux, "0")
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})

	if server.Addr != ":0" {
		t.Fatalf("addr %q, want :0", server.Addr)
	}
	if server.ReadTimeout != 15*time.Second || server.WriteTimeout != 30*time.Second {
		t.Fatalf("unexpected timeouts %v/%v", server.ReadTimeout, server.WriteTimeout)
	}
}

func TestGracefulShutdown(t *testing.T) {
	server := startServer(http.NewServeMux(), "0")

	cleaned := make(chan struct{}, 1)
	done := make(chan struct{})
	go func() {
		gracefulShutdown(context.Background(), server, func() {
			cleaned <- struct{}{}
		})
		close(done)
	}()

	// Give the goroutine time to install its signal handler before firing.
	time.Sleep(100 * time.Millisecond)
	if err := syscall.Kill(syscall.Getpid(), syscall.SIGTERM); err != nil {
		t.Fatalf("failed to signal: %v", err)
	}

	select {
	case <-cleaned:
	case <-time.After(5 * time.Second):
		t.Fatalf("cleanup was not invoked")
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("gracefulShutdown did not return")
	}
}
