/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package secrets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hostk8s/hostk8s/pkg/config"
	"github.com/hostk8s/hostk8s/pkg/contract"
	"github.com/hostk8s/hostk8s/pkg/errors"
	"github.com/hostk8s/hostk8s/pkg/report"
)

// Store is the slice of the Vault KV surface the manager needs. pkg/vault
// implements it; tests fake it.
type Store interface {
	Health(ctx context.Context) error
	Exists(ctx context.Context, path string) (bool, error)
	Put(ctx context.Context, path string, values map[string]string) error
	Delete(ctx context.Context, path string) error
	List(ctx context.Context, path string) ([]string, error)
}

// Manager processes secret contracts: populates Vault, regenerates the
// ExternalSecret manifest file, and tears both down again.
type Manager struct {
	cfg   *config.Config
	store Store
}

// New creates a Manager using the given configuration and Vault store.
func New(cfg *config.Config, store Store) *Manager {
	return &Manager{cfg: cfg, store: store}
}

// Add processes the stack's secret contract: each secret's values are
// written to Vault unless the path already holds a value, and the
// ExternalSecret manifest file is regenerated either way.
//
// A stack without a contract is nothing to do. Vault being unreachable, a
// malformed contract, or a validation failure aborts before any entry is
// processed; a single entry failing does not stop the remaining entries.
func (m *Manager) Add(ctx context.Context, stack string) (*report.Report, error) {
	rep := report.New("secrets")

	if err := m.store.Health(ctx); err != nil {
		return nil, err
	}

	c, err := contract.LoadSecrets(m.cfg.StacksDir, stack)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeContractNotFound) {
			slog.Info("no secret contract found for stack", "stack", stack)
			return rep, nil
		}
		return nil, err
	}

	if err := contract.ValidateSecrets(c); err != nil {
		return nil, err
	}

	slog.Info("processing secrets for stack", "stack", stack, "secrets", len(c.Spec.Secrets))

	w, err := NewManifestWriter(ManifestPath(m.cfg.StacksDir, stack))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExternalCall, "failed to prepare manifest file", err)
	}
	defer func() {
		if err := w.Close(); err != nil {
			slog.Warn("failed to close manifest file", "path", w.Path(), "error", err)
		}
	}()

	for i := range c.Spec.Secrets {
		rep.Add(m.processSecret(ctx, stack, &c.Spec.Secrets[i], w))
	}

	return rep, nil
}

func (m *Manager) processSecret(ctx context.Context, stack string, s *contract.SecretSpec, w *ManifestWriter) report.Result {
	path := s.VaultPath(stack)

	exists, err := m.store.Exists(ctx, path)
	if err != nil {
		// Cannot prove the path is empty; failing the entry beats risking
		// an overwrite of a rotated value.
		return report.Result{Name: s.Name, Status: report.StatusFailed, Err: err}
	}

	status := report.StatusApplied
	if exists {
		slog.Info("secret already exists in vault, preserving stored value",
			"secret", s.Name, "path", path)
		status = report.StatusSkipped
	} else {
		values, err := ResolveData(s.Data)
		if err != nil {
			return report.Result{Name: s.Name, Status: report.StatusFailed,
				Err: fmt.Errorf("failed to resolve secret %q: %w", s.Name, err)}
		}
		if err := m.store.Put(ctx, path, values); err != nil {
			return report.Result{Name: s.Name, Status: report.StatusFailed, Err: err}
		}
		slog.Info("populated vault secret", "secret", s.Name, "namespace", s.Namespace, "path", path)
	}

	// The manifest is a derived artifact and is regenerated even for
	// preserved secrets.
	if err := w.Append(stack, s); err != nil {
		return report.Result{Name: s.Name, Status: report.StatusFailed, Err: err}
	}

	return report.Result{Name: s.Name, Status: status}
}

// Remove deletes the stack's secrets from Vault and removes the generated
// manifest file. With a contract present, the contract drives the deletions;
// without one, whatever Vault holds under the stack prefix is removed.
// Individual deletion failures are tolerated, a malformed contract is not.
func (m *Manager) Remove(ctx context.Context, stack string) error {
	if err := m.store.Health(ctx); err != nil {
		return err
	}

	slog.Info("removing secrets for stack", "stack", stack)

	c, err := contract.LoadSecrets(m.cfg.StacksDir, stack)
	switch {
	case errors.HasCode(err, errors.ErrCodeContractNotFound):
		slog.Warn("no secret contract found, removing any existing secrets by prefix", "stack", stack)
		m.removeByPrefix(ctx, stack)
	case err != nil:
		return err
	default:
		for i := range c.Spec.Secrets {
			s := &c.Spec.Secrets[i]
			if s.Name == "" || s.Namespace == "" {
				continue
			}
			path := s.VaultPath(stack)
			slog.Info("removing vault secret", "secret", s.Name, "path", path)
			if err := m.store.Delete(ctx, path); err != nil {
				slog.Warn("failed to remove vault secret", "path", path, "error", err)
			}
		}
	}

	manifestPath := ManifestPath(m.cfg.StacksDir, stack)
	if err := RemoveManifest(manifestPath); err != nil {
		slog.Warn("failed to remove manifest file", "path", manifestPath, "error", err)
	} else {
		slog.Debug("removed generated manifest", "path", manifestPath)
	}

	slog.Info("secret removal completed", "stack", stack)
	return nil
}

// removeByPrefix walks {stack}/{namespace}/{name} in Vault metadata and
// deletes whatever it finds. Listing and deletion errors are tolerated so a
// partially removed stack can be retried.
func (m *Manager) removeByPrefix(ctx context.Context, stack string) {
	namespaces, err := m.store.List(ctx, stack)
	if err != nil {
		slog.Debug("failed to list stack namespaces", "stack", stack, "error", err)
		return
	}

	for _, ns := range namespaces {
		ns = strings.TrimSuffix(ns, "/")
		names, err := m.store.List(ctx, stack+"/"+ns)
		if err != nil {
			slog.Debug("failed to list stack secrets", "stack", stack, "namespace", ns, "error", err)
			continue
		}
		for _, name := range names {
			path := fmt.Sprintf("%s/%s/%s", stack, ns, strings.TrimSuffix(name, "/"))
			if err := m.store.Delete(ctx, path); err != nil {
				slog.Debug("failed to remove vault secret", "path", path, "error", err)
			}
		}
	}
}

// List returns the Vault keys directly under the stack prefix, or under the
// KV root when stack is empty. Folder keys keep their trailing slash.
func (m *Manager) List(ctx context.Context, stack string) ([]string, error) {
	if err := m.store.Health(ctx); err != nil {
		return nil, err
	}
	return m.store.List(ctx, stack)
}
