/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hostk8s/hostk8s/pkg/errors"
)

func TestDetectKubeconfigExplicit(t *testing.T) {
	got, err := DetectKubeconfig("/custom/kubeconfig")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/custom/kubeconfig" {
		t.Errorf("expected explicit path to win, got %q", got)
	}
}

func TestDetectKubeconfigHostMode(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfgDir := filepath.Join(dir, "data", "kubeconfig")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("failed to create host kubeconfig dir: %v", err)
	}
	cfgPath := filepath.Join(cfgDir, "config")
	if err := os.WriteFile(cfgPath, []byte("apiVersion: v1\n"), 0o600); err != nil {
		t.Fatalf("failed to write kubeconfig: %v", err)
	}

	got, err := DetectKubeconfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != filepath.Join("data", "kubeconfig", "config") {
		t.Errorf("expected host-mode path, got %q", got)
	}
}

func TestDetectKubeconfigNotFound(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := DetectKubeconfig("")
	if err == nil {
		t.Fatal("expected error when no kubeconfig exists")
	}
	if !errors.HasCode(err, errors.ErrCodeConfig) {
		t.Errorf("expected CONFIG error code, got %v", err)
	}
}
