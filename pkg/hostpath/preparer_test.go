/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package hostpath

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/hostk8s/hostk8s/pkg/contract"
)

type fakeRunner struct {
	inspectErr error
	execErr    error
	calls      [][]string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if len(args) > 0 && args[0] == "inspect" {
		return nil, f.inspectErr
	}
	return []byte("output"), f.execErr
}

func cacheDir() *contract.DirectorySpec {
	return &contract.DirectorySpec{
		Name:        "cache",
		Path:        "/mnt/pv/sample/cache",
		Owner:       "1000:1000",
		Permissions: "755",
	}
}

func TestPrepare(t *testing.T) {
	r := &fakeRunner{}
	p := New("hostk8s-control-plane", WithRunner(r))

	warnings := p.Prepare(context.Background(), cacheDir())
	if len(warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", warnings)
	}

	if len(r.calls) != 2 {
		t.Fatalf("expected inspect + exec, got %d calls", len(r.calls))
	}

	inspect := r.calls[0]
	if inspect[0] != "docker" || inspect[1] != "inspect" || inspect[2] != "hostk8s-control-plane" {
		t.Errorf("unexpected inspect call: %v", inspect)
	}

	exec := r.calls[1]
	if exec[0] != "docker" || exec[1] != "exec" || exec[2] != "hostk8s-control-plane" {
		t.Errorf("unexpected exec call: %v", exec)
	}
	script := exec[len(exec)-1]
	for _, want := range []string{
		"mkdir -p /mnt/pv/sample/cache",
		"chown 1000:1000 /mnt/pv/sample/cache || true",
		"chmod 755 /mnt/pv/sample/cache",
	} {
		if !strings.Contains(script, want) {
			t.Errorf("script missing %q: %s", want, script)
		}
	}
}

func TestPrepareContainerNotRunning(t *testing.T) {
	r := &fakeRunner{inspectErr: errors.New("no such container")}
	p := New("hostk8s-control-plane", WithRunner(r))

	warnings := p.Prepare(context.Background(), cacheDir())
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "not available") {
		t.Errorf("unexpected warning: %q", warnings[0])
	}

	// Exec must not be attempted once the gate fails.
	if len(r.calls) != 1 {
		t.Errorf("expected only the inspect call, got %v", r.calls)
	}
}

func TestPrepareExecFailure(t *testing.T) {
	r := &fakeRunner{execErr: errors.New("exit status 1")}
	p := New("dev-control-plane", WithRunner(r))

	warnings := p.Prepare(context.Background(), cacheDir())
	if len(warnings) != 1 {
		t.Fatalf("expected one warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "permission setup failed") {
		t.Errorf("unexpected warning: %q", warnings[0])
	}
}
