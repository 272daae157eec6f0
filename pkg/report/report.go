/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package report accumulates per-entry processing results for one contract
// operation and derives the overall outcome from them.
package report

import (
	"fmt"

	"github.com/hostk8s/hostk8s/pkg/errors"
)

// Status classifies the outcome of processing one contract entry.
type Status string

const (
	// StatusApplied indicates the resource was created.
	StatusApplied Status = "applied"

	// StatusSkipped indicates the resource already existed and was
	// preserved untouched.
	StatusSkipped Status = "skipped"

	// StatusFailed indicates the entry could not be processed.
	StatusFailed Status = "failed"
)

// Result records the outcome of one contract entry.
type Result struct {
	// Name is the contract entry name (directory or secret).
	Name string

	// Status is the processing outcome.
	Status Status

	// Err holds the failure when Status is StatusFailed.
	Err error

	// Warnings collects non-fatal problems from best-effort side steps,
	// e.g. node directory permission setup.
	Warnings []string
}

// Succeeded reports whether the entry completed.
func (r Result) Succeeded() bool {
	return r.Status != StatusFailed
}

// Report accumulates results for one operation over a named kind of entry
// ("directories", "secrets").
type Report struct {
	subject string
	results []Result
}

// New creates an empty Report for the given entry kind.
func New(subject string) *Report {
	return &Report{
		subject: subject,
		results: make([]Result, 0),
	}
}

// Add appends one entry result.
func (r *Report) Add(res Result) {
	r.results = append(r.results, res)
}

// Results returns the accumulated entry results in processing order.
func (r *Report) Results() []Result {
	return r.results
}

// Total returns the number of processed entries.
func (r *Report) Total() int {
	return len(r.results)
}

// Succeeded returns the number of entries that completed.
func (r *Report) Succeeded() int {
	n := 0
	for _, res := range r.results {
		if res.Succeeded() {
			n++
		}
	}
	return n
}

// FailedNames returns the names of entries that did not complete.
func (r *Report) FailedNames() []string {
	names := make([]string, 0)
	for _, res := range r.results {
		if !res.Succeeded() {
			names = append(names, res.Name)
		}
	}
	return names
}

// Warnings returns every warning gathered across entries.
func (r *Report) Warnings() []string {
	warnings := make([]string, 0)
	for _, res := range r.results {
		warnings = append(warnings, res.Warnings...)
	}
	return warnings
}

// Complete reports whether every entry succeeded.
func (r *Report) Complete() bool {
	return r.Succeeded() == r.Total()
}

// Err returns nil when every entry succeeded, otherwise a PARTIAL_SUCCESS
// error carrying the failed entry names.
func (r *Report) Err() error {
	if r.Complete() {
		return nil
	}
	return errors.NewWithContext(
		errors.ErrCodePartialSuccess,
		fmt.Sprintf("only %d/%d %s processed successfully", r.Succeeded(), r.Total(), r.subject),
		map[string]any{"failed": r.FailedNames()},
	)
}
