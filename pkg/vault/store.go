/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package vault

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	vaultapi "github.com/hashicorp/vault/api"
	"golang.org/x/time/rate"

	"github.com/hostk8s/hostk8s/pkg/defaults"
	"github.com/hostk8s/hostk8s/pkg/errors"
)

// DefaultMount is the KV v2 mount the HostK8s Vault add-on enables.
const DefaultMount = "secret"

// Store wraps the Vault API client with KV v2 path handling, a client-side
// rate limiter, and the idempotency semantics contract processing relies on.
type Store struct {
	client  *vaultapi.Client
	limiter *rate.Limiter
	mount   string
}

type Option func(*Store)

// WithMount overrides the KV v2 mount path.
func WithMount(mount string) Option {
	return func(s *Store) {
		if mount != "" {
			s.mount = mount
		}
	}
}

// WithRateLimit overrides the client-side request rate limiter.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Store) {
		s.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithClient injects a preconfigured Vault API client, for tests.
func WithClient(client *vaultapi.Client) Option {
	return func(s *Store) {
		s.client = client
	}
}

// New creates a Store talking to the Vault server at addr, authenticated
// with token.
func New(addr, token string, opts ...Option) (*Store, error) {
	s := &Store{
		limiter: rate.NewLimiter(rate.Limit(defaults.VaultRateLimit), defaults.VaultRateBurst),
		mount:   DefaultMount,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.client == nil {
		cfg := vaultapi.DefaultConfig()
		cfg.Address = addr
		cfg.Timeout = defaults.VaultRequestTimeout

		client, err := vaultapi.NewClient(cfg)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfig,
				fmt.Sprintf("failed to create vault client for %s", addr), err)
		}
		client.SetToken(token)
		s.client = client
	}

	return s, nil
}

// Health verifies the Vault server is reachable, initialized, and unsealed.
// Standby nodes pass; every secrets operation calls this before touching
// any KV path so an unreachable Vault aborts the whole run up front.
func (s *Store) Health(ctx context.Context) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	health, err := s.client.Sys().HealthWithContext(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeExternalCall,
			fmt.Sprintf("cannot connect to vault at %s", s.client.Address()), err)
	}
	if !health.Initialized {
		return errors.New(errors.ErrCodeExternalCall, "vault is not initialized")
	}
	if health.Sealed {
		return errors.New(errors.ErrCodeExternalCall, "vault is sealed")
	}

	return nil
}

// Exists reports whether any value is stored at the KV path. A path whose
// versions have all been deleted reads back without data and counts as
// absent.
func (s *Store) Exists(ctx context.Context, path string) (bool, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return false, err
	}

	secret, err := s.client.Logical().ReadWithContext(ctx, s.dataPath(path))
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeExternalCall,
			fmt.Sprintf("failed to read vault path %s", path), err)
	}
	if secret == nil || secret.Data == nil {
		return false, nil
	}

	data, ok := secret.Data["data"].(map[string]any)
	return ok && len(data) > 0, nil
}

// Put stores the key/value pairs at the KV path, creating a new version.
// The skip-if-exists policy lives in the caller; Put always writes.
func (s *Store) Put(ctx context.Context, path string, values map[string]string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	data := make(map[string]any, len(values))
	for k, v := range values {
		data[k] = v
	}

	slog.Debug("storing vault secret", "path", s.dataPath(path), "keys", len(values))

	_, err := s.client.Logical().WriteWithContext(ctx, s.dataPath(path),
		map[string]any{"data": data})
	if err != nil {
		return errors.Wrap(errors.ErrCodeExternalCall,
			fmt.Sprintf("failed to store vault secret %s", path), err)
	}

	return nil
}

// Delete removes the secret at the KV path entirely, metadata and all
// versions included. Deleting an absent path is not an error.
func (s *Store) Delete(ctx context.Context, path string) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return err
	}

	slog.Debug("removing vault secret", "path", s.metadataPath(path))

	_, err := s.client.Logical().DeleteWithContext(ctx, s.metadataPath(path))
	if err != nil {
		return errors.Wrap(errors.ErrCodeExternalCall,
			fmt.Sprintf("failed to remove vault secret %s", path), err)
	}

	return nil
}

// List returns the keys directly under the KV path. Folder keys carry a
// trailing slash, per Vault's LIST semantics. An absent path lists empty.
func (s *Store) List(ctx context.Context, path string) ([]string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	secret, err := s.client.Logical().ListWithContext(ctx, s.metadataPath(path))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExternalCall,
			fmt.Sprintf("failed to list vault path %s", path), err)
	}
	if secret == nil || secret.Data == nil {
		return []string{}, nil
	}

	raw, ok := secret.Data["keys"].([]any)
	if !ok {
		return []string{}, nil
	}

	keys := make([]string, 0, len(raw))
	for _, k := range raw {
		if key, ok := k.(string); ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (s *Store) dataPath(path string) string {
	return s.mount + "/data/" + strings.Trim(path, "/")
}

func (s *Store) metadataPath(path string) string {
	p := strings.Trim(path, "/")
	if p == "" {
		return s.mount + "/metadata"
	}
	return s.mount + "/metadata/" + p
}
