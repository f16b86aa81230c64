// Copyright 2026 The Scriptexport Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scriptexport.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

const validConfig = `
listen_address: "127.0.0.1:9090"
shutdown_timeout: 5s
log_level: debug
chain:
  network: preprod
  authority_policy: "` + "abababababababababababababababababababababababababababab" + `"
  authority_name: governance-authority
`

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.ListenAddress != "127.0.0.1:9090" {
		t.Errorf("ListenAddress = %s", cfg.ListenAddress)
	}
	if cfg.ShutdownDuration() != 5*time.Second {
		t.Errorf("ShutdownDuration = %v, want 5s", cfg.ShutdownDuration())
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %s", cfg.LogLevel)
	}
	if cfg.Chain.Network != "preprod" {
		t.Errorf("Chain.Network = %s", cfg.Chain.Network)
	}
}

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, `
chain:
  network: mainnet
  authority_policy: "abababababababababababababababababababababababababababab"
  authority_name: authority
`))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.ListenAddress != ":9080" {
		t.Errorf("default ListenAddress = %s, want :9080", cfg.ListenAddress)
	}
	if cfg.ShutdownDuration() != 15*time.Second {
		t.Errorf("default ShutdownDuration = %v, want 15s", cfg.ShutdownDuration())
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default LogLevel = %s, want info", cfg.LogLevel)
	}
}

func TestLoadFileValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"missing chain", `listen_address: ":9080"`, "chain.network"},
		{"bad log level", strings.Replace(validConfig, "debug", "loud", 1), "log_level"},
		{"bad timeout", strings.Replace(validConfig, "5s", "soon", 1), "shutdown_timeout"},
		{"missing authority name", strings.Replace(validConfig, "authority_name: governance-authority", "", 1), "authority_name"},
		{"not yaml", "{{{", "parsing config"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadFile(writeConfig(t, test.content))
			if err == nil || !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("error = %v, want containing %q", err, test.wantErr)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile accepted a missing file")
	}
}

func TestLoadRequiresEnvVar(t *testing.T) {
	t.Setenv(EnvVar, "")
	if _, err := Load(); err == nil {
		t.Error("Load succeeded without the environment variable")
	}

	t.Setenv(EnvVar, writeConfig(t, validConfig))
	if _, err := Load(); err != nil {
		t.Errorf("Load failed with the environment variable set: %v", err)
	}
}
