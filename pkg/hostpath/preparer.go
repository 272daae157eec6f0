/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package hostpath

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/hostk8s/hostk8s/pkg/contract"
	"github.com/hostk8s/hostk8s/pkg/defaults"
)

// CommandRunner executes one external command and returns its combined
// output. Isolates the docker subprocess dependency so tests can fake it.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, err
	}
	return exec.CommandContext(ctx, path, args...).CombinedOutput()
}

// Preparer sets up contract directories inside the Kind node container with
// the requested ownership and permissions. Everything here is best-effort:
// hostPath volumes use DirectoryOrCreate, so a directory this step could not
// prepare is still created on first pod mount, just with kubelet defaults.
type Preparer struct {
	container string
	runner    CommandRunner
}

type Option func(*Preparer)

// WithRunner injects a CommandRunner, for tests.
func WithRunner(r CommandRunner) Option {
	return func(p *Preparer) {
		p.runner = r
	}
}

// New creates a Preparer targeting the named node container.
func New(container string, opts ...Option) *Preparer {
	p := &Preparer{
		container: container,
		runner:    execRunner{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Prepare creates the directory inside the node container and applies the
// contract's owner and permissions. It never fails the caller: problems are
// logged at debug level and returned as warnings for the report.
func (p *Preparer) Prepare(ctx context.Context, dir *contract.DirectorySpec) []string {
	inspectCtx, cancel := context.WithTimeout(ctx, defaults.DockerInspectTimeout)
	defer cancel()

	if _, err := p.runner.Run(inspectCtx, "docker", "inspect", p.container); err != nil {
		slog.Debug("node container not available, skipping directory setup",
			"container", p.container, "directory", dir.Name, "error", err)
		return []string{fmt.Sprintf("directory %q: node container %s not available, permissions not applied", dir.Name, p.container)}
	}

	uid, gid, err := contract.ParseOwner(dir.Owner)
	if err != nil {
		// Validation runs before any executor, so this is unreachable in
		// practice; keep the guard for direct callers.
		return []string{fmt.Sprintf("directory %q: invalid owner %q", dir.Name, dir.Owner)}
	}

	script := fmt.Sprintf("mkdir -p %[1]s && { chown %[2]d:%[3]d %[1]s || true; } && chmod %[4]s %[1]s",
		dir.Path, uid, gid, dir.Permissions)

	execCtx, cancel := context.WithTimeout(ctx, defaults.DockerExecTimeout)
	defer cancel()

	out, err := p.runner.Run(execCtx, "docker", "exec", p.container, "sh", "-c", script)
	if err != nil {
		slog.Debug("directory setup failed",
			"container", p.container, "directory", dir.Name, "output", string(out), "error", err)
		return []string{fmt.Sprintf("directory %q: permission setup failed in %s", dir.Name, p.container)}
	}

	slog.Debug("directory permissions configured",
		"directory", dir.Name, "path", dir.Path, "owner", dir.Owner, "permissions", dir.Permissions)
	return nil
}
