/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"fmt"
	"net/url"
)

// Defaults for the HostK8s local development environment.
const (
	DefaultStacksDir   = "software/stacks"
	DefaultVaultAddr   = "http://localhost:8080"
	DefaultVaultToken  = "hostk8s"
	DefaultClusterName = "hostk8s"
)

// Config carries the runtime configuration for contract processing.
// It is constructed once at process start (flags, environment, .env file)
// and passed into every component; nothing reads the process environment
// past this point.
type Config struct {
	// StacksDir is the root directory holding per-stack contract files.
	StacksDir string

	// Kubeconfig is the kubeconfig path, empty until detection runs.
	Kubeconfig string

	// VaultAddr is the Vault server base address.
	VaultAddr string

	// VaultToken authenticates Vault API calls.
	VaultToken string

	// ClusterName names the Kind cluster; the node container is
	// derived from it.
	ClusterName string
}

type Option func(*Config)

// WithStacksDir sets the stacks root directory.
func WithStacksDir(dir string) Option {
	return func(c *Config) {
		if dir != "" {
			c.StacksDir = dir
		}
	}
}

// WithKubeconfig sets an explicit kubeconfig path.
func WithKubeconfig(path string) Option {
	return func(c *Config) {
		c.Kubeconfig = path
	}
}

// WithVaultAddr sets the Vault server address.
func WithVaultAddr(addr string) Option {
	return func(c *Config) {
		if addr != "" {
			c.VaultAddr = addr
		}
	}
}

// WithVaultToken sets the Vault token.
func WithVaultToken(token string) Option {
	return func(c *Config) {
		if token != "" {
			c.VaultToken = token
		}
	}
}

// WithClusterName sets the Kind cluster name.
func WithClusterName(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.ClusterName = name
		}
	}
}

// New returns a Config with HostK8s defaults applied, then the given options.
func New(options ...Option) *Config {
	c := &Config{
		StacksDir:   DefaultStacksDir,
		VaultAddr:   DefaultVaultAddr,
		VaultToken:  DefaultVaultToken,
		ClusterName: DefaultClusterName,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// Validate checks if the Config has valid settings.
func (c *Config) Validate() error {
	if c.StacksDir == "" {
		return fmt.Errorf("stacks directory cannot be empty")
	}

	u, err := url.Parse(c.VaultAddr)
	if err != nil {
		return fmt.Errorf("invalid vault address %q: %w", c.VaultAddr, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("invalid vault address %q (must be http(s)://host[:port])", c.VaultAddr)
	}

	if c.VaultToken == "" {
		return fmt.Errorf("vault token cannot be empty")
	}

	if c.ClusterName == "" {
		return fmt.Errorf("cluster name cannot be empty")
	}

	return nil
}

// NodeContainer returns the name of the Kind control plane container for
// the configured cluster.
func (c *Config) NodeContainer() string {
	return c.ClusterName + "-control-plane"
}
