/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	corev1 "k8s.io/api/core/v1"

	"github.com/hostk8s/hostk8s/pkg/config"
	"github.com/hostk8s/hostk8s/pkg/contract"
	"github.com/hostk8s/hostk8s/pkg/errors"
	"github.com/hostk8s/hostk8s/pkg/k8s/volume"
	"github.com/hostk8s/hostk8s/pkg/report"
)

// Provisioner is the slice of the cluster surface the manager needs.
// pkg/k8s/volume implements it; tests fake it.
type Provisioner interface {
	EnsureStorageClass(ctx context.Context, name string) (bool, error)
	EnsurePersistentVolume(ctx context.Context, pv *corev1.PersistentVolume) (bool, error)
	VolumeExists(ctx context.Context, name string) (bool, error)
	DeleteStackVolumes(ctx context.Context, stack string) ([]string, error)
}

// Preparer performs the best-effort directory setup inside the node
// container, returning warnings rather than errors.
type Preparer interface {
	Prepare(ctx context.Context, dir *contract.DirectorySpec) []string
}

// Manager processes storage contracts: derives StorageClasses and
// PersistentVolumes, applies them create-if-absent, and prepares the backing
// host directories.
type Manager struct {
	cfg  *config.Config
	prov Provisioner
	prep Preparer
}

// New creates a Manager using the given configuration, provisioner, and
// directory preparer.
func New(cfg *config.Config, prov Provisioner, prep Preparer) *Manager {
	return &Manager{cfg: cfg, prov: prov, prep: prep}
}

// Setup processes the stack's storage contract. StorageClasses are ensured
// first; a class failure aborts before any PV is touched. Directories are
// then processed in declaration order, one failing entry does not stop the
// rest, and there is no rollback of entries already applied.
func (m *Manager) Setup(ctx context.Context, stack string) (*report.Report, error) {
	rep := report.New("directories")

	c, err := contract.LoadStorage(m.cfg.StacksDir, stack)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeContractNotFound) {
			slog.Debug("no storage contract found for stack, skipping storage management", "stack", stack)
			return rep, nil
		}
		return nil, err
	}

	if err := contract.ValidateStorage(c, stack); err != nil {
		return nil, err
	}

	dirs := c.Spec.Directories
	slog.Info("processing storage contract for stack", "stack", stack, "directories", len(dirs))

	for _, class := range uniqueClasses(dirs) {
		if _, err := m.prov.EnsureStorageClass(ctx, class); err != nil {
			return nil, err
		}
	}

	for i := range dirs {
		rep.Add(m.processDirectory(ctx, stack, &dirs[i]))
	}

	return rep, nil
}

func (m *Manager) processDirectory(ctx context.Context, stack string, dir *contract.DirectorySpec) report.Result {
	created, err := m.prov.EnsurePersistentVolume(ctx, volume.NewPersistentVolume(stack, dir))
	if err != nil {
		return report.Result{Name: dir.Name, Status: report.StatusFailed, Err: err}
	}

	status := report.StatusApplied
	if !created {
		status = report.StatusSkipped
	}

	// Permission setup is best-effort either way; re-running it on an
	// existing directory is a cheap no-op.
	warnings := m.prep.Prepare(ctx, dir)

	slog.Info("directory configured", "directory", dir.Name, "path", dir.Path, "status", string(status))
	return report.Result{Name: dir.Name, Status: status, Warnings: warnings}
}

// uniqueClasses returns the distinct storageClass names in first-seen order.
func uniqueClasses(dirs []contract.DirectorySpec) []string {
	seen := make(map[string]bool, len(dirs))
	classes := make([]string, 0, len(dirs))
	for i := range dirs {
		if name := dirs[i].StorageClass; !seen[name] {
			seen[name] = true
			classes = append(classes, name)
		}
	}
	return classes
}

// Cleanup removes the stack's PersistentVolumes by label selector and
// returns the names of the deleted volumes. Host directories and their data
// are preserved for redeployment.
func (m *Manager) Cleanup(ctx context.Context, stack string) ([]string, error) {
	slog.Info("cleaning up storage for stack", "stack", stack)

	deleted, err := m.prov.DeleteStackVolumes(ctx, stack)
	if err != nil {
		return deleted, err
	}

	if len(deleted) > 0 {
		slog.Info("removed persistent volumes", "stack", stack, "count", len(deleted))
	}
	return deleted, nil
}

// StackStorage summarizes one stack's storage contract and the cluster
// state of its derived volumes.
type StackStorage struct {
	Stack       string
	HasContract bool
	Directories []DirectoryStatus
}

// DirectoryStatus is one row of the storage listing.
type DirectoryStatus struct {
	Name  string
	Size  string
	Path  string
	Ready bool
}

// List summarizes the storage contract of one stack, or of every stack under
// the stacks directory when stack is empty. A nil provisioner (no reachable
// cluster) reports every volume as missing instead of failing the listing.
func (m *Manager) List(ctx context.Context, stack string) ([]StackStorage, error) {
	stacks := []string{stack}
	if stack == "" {
		var err error
		if stacks, err = m.discoverStacks(); err != nil {
			return nil, err
		}
	}

	out := make([]StackStorage, 0, len(stacks))
	for _, name := range stacks {
		st, err := m.listStack(ctx, name)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, nil
}

func (m *Manager) listStack(ctx context.Context, stack string) (StackStorage, error) {
	st := StackStorage{Stack: stack}

	c, err := contract.LoadStorage(m.cfg.StacksDir, stack)
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeContractNotFound) {
			return st, nil
		}
		return st, err
	}

	st.HasContract = true
	for i := range c.Spec.Directories {
		dir := &c.Spec.Directories[i]

		ready := false
		if m.prov != nil {
			ready, err = m.prov.VolumeExists(ctx, volume.PVName(stack, dir.Name))
			if err != nil {
				slog.Debug("volume existence check failed", "stack", stack, "directory", dir.Name, "error", err)
				ready = false
			}
		}

		st.Directories = append(st.Directories, DirectoryStatus{
			Name:  dir.Name,
			Size:  dir.Size,
			Path:  dir.Path,
			Ready: ready,
		})
	}

	return st, nil
}

// discoverStacks scans the stacks directory for stacks carrying a storage
// contract.
func (m *Manager) discoverStacks() ([]string, error) {
	entries, err := os.ReadDir(m.cfg.StacksDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read stacks directory %s: %w", m.cfg.StacksDir, err)
	}

	stacks := make([]string, 0)
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(contract.StoragePath(m.cfg.StacksDir, e.Name())); err == nil {
			stacks = append(stacks, e.Name())
		}
	}
	return stacks, nil
}
