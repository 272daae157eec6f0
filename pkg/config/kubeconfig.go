/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hostk8s/hostk8s/pkg/errors"
)

// Kubeconfig locations checked by DetectKubeconfig, in order.
const (
	containerKubeconfig = "/kubeconfig/config"
	hostKubeconfigDir   = "data/kubeconfig"
)

// DetectKubeconfig resolves the kubeconfig path following HostK8s
// conventions: an explicit path (flag or KUBECONFIG) wins, then the
// container-mode mount, then the host-mode data directory.
func DetectKubeconfig(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if _, err := os.Stat(containerKubeconfig); err == nil {
		slog.Info("using container kubeconfig", "path", containerKubeconfig)
		return containerKubeconfig, nil
	}

	hostPath := filepath.Join(hostKubeconfigDir, "config")
	if _, err := os.Stat(hostPath); err == nil {
		slog.Info("using host-mode kubeconfig", "path", hostPath)
		return hostPath, nil
	}

	return "", errors.New(errors.ErrCodeConfig, "no kubeconfig found, ensure cluster is running")
}
