/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostk8s/hostk8s/pkg/errors"
	"github.com/hostk8s/hostk8s/pkg/report"
)

func TestRootCommandTree(t *testing.T) {
	root := Root()
	assert.Equal(t, "hostk8s", root.Name)

	names := make([]string, 0)
	for _, c := range root.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"storage", "secrets"}, names)

	sub := make(map[string][]string)
	for _, c := range root.Commands {
		for _, s := range c.Commands {
			sub[c.Name] = append(sub[c.Name], s.Name)
		}
	}
	assert.Equal(t, []string{"setup", "cleanup", "list"}, sub["storage"])
	assert.Equal(t, []string{"add", "remove", "list"}, sub["secrets"])
}

func TestStorageSetupRequiresStack(t *testing.T) {
	err := Root().Run(context.Background(), []string{"hostk8s", "storage", "setup"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stack name required")
}

func TestSecretsAddRequiresStack(t *testing.T) {
	err := Root().Run(context.Background(), []string{"hostk8s", "secrets", "add"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stack name required")
}

func TestInvalidVaultAddrRejected(t *testing.T) {
	err := Root().Run(context.Background(),
		[]string{"hostk8s", "secrets", "list", "--vault-addr", "not-a-url"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid vault address")
}

func TestPrintReportComplete(t *testing.T) {
	rep := report.New("directories")
	rep.Add(report.Result{Name: "cache", Status: report.StatusApplied})
	rep.Add(report.Result{Name: "logs", Status: report.StatusSkipped})

	assert.NoError(t, printReport(rep, "storage setup", "sample"))
}

func TestPrintReportEmpty(t *testing.T) {
	assert.NoError(t, printReport(report.New("secrets"), "secrets add", "sample"))
}

func TestPrintReportPartialFailure(t *testing.T) {
	rep := report.New("secrets")
	rep.Add(report.Result{Name: "db-credentials", Status: report.StatusApplied})
	rep.Add(report.Result{Name: "api-key", Status: report.StatusFailed, Err: fmt.Errorf("permission denied")})

	err := printReport(rep, "secrets add", "sample")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodePartialSuccess))
}
