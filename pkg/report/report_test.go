/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package report

import (
	"errors"
	"testing"

	hostk8serrors "github.com/hostk8s/hostk8s/pkg/errors"
)

func TestReportComplete(t *testing.T) {
	r := New("directories")
	r.Add(Result{Name: "cache", Status: StatusApplied})
	r.Add(Result{Name: "uploads", Status: StatusSkipped})

	if !r.Complete() {
		t.Error("expected report to be complete")
	}
	if r.Succeeded() != 2 {
		t.Errorf("expected 2 succeeded, got %d", r.Succeeded())
	}
	if r.Total() != 2 {
		t.Errorf("expected total 2, got %d", r.Total())
	}
	if err := r.Err(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if len(r.FailedNames()) != 0 {
		t.Errorf("expected no failed names, got %v", r.FailedNames())
	}
}

func TestReportPartialFailure(t *testing.T) {
	r := New("directories")
	r.Add(Result{Name: "cache", Status: StatusApplied})
	r.Add(Result{Name: "uploads", Status: StatusFailed, Err: errors.New("boom")})
	r.Add(Result{Name: "logs", Status: StatusApplied})

	if r.Complete() {
		t.Error("expected report to be incomplete")
	}
	if r.Succeeded() != 2 {
		t.Errorf("expected 2 succeeded, got %d", r.Succeeded())
	}

	err := r.Err()
	if err == nil {
		t.Fatal("expected error for partial failure")
	}
	if !hostk8serrors.HasCode(err, hostk8serrors.ErrCodePartialSuccess) {
		t.Errorf("expected PARTIAL_SUCCESS, got %v", err)
	}
	want := "only 2/3 directories processed successfully"
	if got := err.Error(); got != "[PARTIAL_SUCCESS] "+want {
		t.Errorf("expected %q, got %q", want, got)
	}

	failed := r.FailedNames()
	if len(failed) != 1 || failed[0] != "uploads" {
		t.Errorf("expected failed [uploads], got %v", failed)
	}
}

func TestReportWarnings(t *testing.T) {
	r := New("directories")
	r.Add(Result{Name: "cache", Status: StatusApplied, Warnings: []string{"chown failed"}})
	r.Add(Result{Name: "uploads", Status: StatusApplied})
	r.Add(Result{Name: "logs", Status: StatusApplied, Warnings: []string{"chmod failed", "mkdir failed"}})

	warnings := r.Warnings()
	if len(warnings) != 3 {
		t.Errorf("expected 3 warnings, got %v", warnings)
	}
}

func TestResultSucceeded(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusApplied, true},
		{StatusSkipped, true},
		{StatusFailed, false},
	}

	for _, tt := range tests {
		res := Result{Name: "x", Status: tt.status}
		if res.Succeeded() != tt.want {
			t.Errorf("Succeeded() for %s = %v, want %v", tt.status, res.Succeeded(), tt.want)
		}
	}
}

func TestEmptyReport(t *testing.T) {
	r := New("secrets")
	if !r.Complete() {
		t.Error("empty report should be complete")
	}
	if err := r.Err(); err != nil {
		t.Errorf("empty report should not error, got %v", err)
	}
}
