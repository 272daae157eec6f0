/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"testing"
)

func TestNewDefaults(t *testing.T) {
	c := New()

	if c.StacksDir != DefaultStacksDir {
		t.Errorf("expected stacks dir %q, got %q", DefaultStacksDir, c.StacksDir)
	}
	if c.VaultAddr != DefaultVaultAddr {
		t.Errorf("expected vault addr %q, got %q", DefaultVaultAddr, c.VaultAddr)
	}
	if c.VaultToken != DefaultVaultToken {
		t.Errorf("expected vault token %q, got %q", DefaultVaultToken, c.VaultToken)
	}
	if c.ClusterName != DefaultClusterName {
		t.Errorf("expected cluster name %q, got %q", DefaultClusterName, c.ClusterName)
	}
	if c.Kubeconfig != "" {
		t.Errorf("expected empty kubeconfig, got %q", c.Kubeconfig)
	}
}

func TestNewWithOptions(t *testing.T) {
	c := New(
		WithStacksDir("custom/stacks"),
		WithKubeconfig("/tmp/kubeconfig"),
		WithVaultAddr("https://vault.example.com:8200"),
		WithVaultToken("s.token"),
		WithClusterName("dev"),
	)

	if c.StacksDir != "custom/stacks" {
		t.Errorf("unexpected stacks dir: %q", c.StacksDir)
	}
	if c.Kubeconfig != "/tmp/kubeconfig" {
		t.Errorf("unexpected kubeconfig: %q", c.Kubeconfig)
	}
	if c.VaultAddr != "https://vault.example.com:8200" {
		t.Errorf("unexpected vault addr: %q", c.VaultAddr)
	}
	if c.VaultToken != "s.token" {
		t.Errorf("unexpected vault token: %q", c.VaultToken)
	}
	if c.ClusterName != "dev" {
		t.Errorf("unexpected cluster name: %q", c.ClusterName)
	}
}

func TestNewEmptyOptionKeepsDefault(t *testing.T) {
	c := New(WithVaultAddr(""), WithStacksDir(""), WithClusterName(""))

	if c.VaultAddr != DefaultVaultAddr {
		t.Errorf("empty vault addr should keep default, got %q", c.VaultAddr)
	}
	if c.StacksDir != DefaultStacksDir {
		t.Errorf("empty stacks dir should keep default, got %q", c.StacksDir)
	}
	if c.ClusterName != DefaultClusterName {
		t.Errorf("empty cluster name should keep default, got %q", c.ClusterName)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults are valid", mutate: func(c *Config) {}, wantErr: false},
		{name: "empty stacks dir", mutate: func(c *Config) { c.StacksDir = "" }, wantErr: true},
		{name: "empty vault token", mutate: func(c *Config) { c.VaultToken = "" }, wantErr: true},
		{name: "empty cluster name", mutate: func(c *Config) { c.ClusterName = "" }, wantErr: true},
		{name: "vault addr without scheme", mutate: func(c *Config) { c.VaultAddr = "localhost:8080" }, wantErr: true},
		{name: "vault addr bad scheme", mutate: func(c *Config) { c.VaultAddr = "ftp://vault" }, wantErr: true},
		{name: "vault addr https", mutate: func(c *Config) { c.VaultAddr = "https://vault:8200" }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.mutate(c)
			err := c.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestNodeContainer(t *testing.T) {
	c := New()
	if got := c.NodeContainer(); got != "hostk8s-control-plane" {
		t.Errorf("expected hostk8s-control-plane, got %q", got)
	}

	c = New(WithClusterName("dev"))
	if got := c.NodeContainer(); got != "dev-control-plane" {
		t.Errorf("expected dev-control-plane, got %q", got)
	}
}
