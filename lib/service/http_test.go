// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/daoforge/scriptexport/lib/testutil"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestHTTPServerLifecycle(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "ok")
	})

	server := NewHTTPServer(HTTPServerConfig{
		Address: "127.0.0.1:0",
		Handler: mux,
		Logger:  testLogger(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- server.Serve(ctx)
	}()

	testutil.RequireClosed(t, server.Ready(), 5*time.Second, "server ready")

	response, err := http.Get("http://" + server.Addr().String() + "/health")
	if err != nil {
		t.Fatalf("GET /health failed: %v", err)
	}
	body, err := io.ReadAll(response.Body)
	response.Body.Close()
	if err != nil {
		t.Fatalf("reading response: %v", err)
	}
	if response.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", response.StatusCode)
	}
	if string(body) != "ok\n" {
		t.Errorf("body = %q, want ok", body)
	}

	cancel()
	if err := testutil.RequireReceive(t, serveDone, 5*time.Second, "serve return"); err != nil {
		t.Errorf("Serve returned error: %v", err)
	}
}

func TestHTTPServerListenFailure(t *testing.T) {
	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	first := NewHTTPServer(HTTPServerConfig{
		Address: "127.0.0.1:0",
		Handler: handler,
		Logger:  testLogger(),
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- first.Serve(ctx)
	}()
	testutil.RequireClosed(t, first.Ready(), 5*time.Second, "first server ready")

	// The address is already held by the first server.
	second := NewHTTPServer(HTTPServerConfig{
		Address: first.Addr().String(),
		Handler: handler,
		Logger:  testLogger(),
	})
	if err := second.Serve(context.Background()); err == nil {
		t.Error("Serve succeeded on an occupied address")
	}

	cancel()
	testutil.RequireReceive(t, serveDone, 5*time.Second, "first serve return")
}

func TestNewHTTPServerValidation(t *testing.T) {
	tests := []struct {
		name   string
		config HTTPServerConfig
	}{
		{"missing address", HTTPServerConfig{Handler: http.NewServeMux(), Logger: testLogger()}},
		{"missing handler", HTTPServerConfig{Address: ":0", Logger: testLogger()}},
		{"missing logger", HTTPServerConfig{Address: ":0", Handler: http.NewServeMux()}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("NewHTTPServer did not panic on invalid config")
				}
			}()
			NewHTTPServer(test.config)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for input, want := range tests {
		if got := ParseLevel(input); got != want {
			t.Errorf("ParseLevel(%s) = %v, want %v", input, got, want)
		}
	}
}
