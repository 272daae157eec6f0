/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package defaults

import "time"

// Vault client settings for KV operations against the local dev Vault.
const (
	// VaultRequestTimeout is the total timeout for a single Vault API call.
	VaultRequestTimeout = 30 * time.Second

	// VaultRateLimit is the sustained Vault request rate. A large contract
	// should not hammer the single-node dev Vault.
	VaultRateLimit = 10.0

	// VaultRateBurst is the Vault request burst allowance.
	VaultRateBurst = 5
)

// Kubernetes timeouts for PersistentVolume and StorageClass operations.
const (
	// K8sEnsureTimeout is the timeout for a single get-or-create call.
	K8sEnsureTimeout = 30 * time.Second

	// K8sCleanupTimeout is the timeout for label-selected PV deletion.
	K8sCleanupTimeout = 60 * time.Second
)

// Docker timeouts for node-container directory preparation.
const (
	// DockerInspectTimeout gates the node container liveness probe.
	DockerInspectTimeout = 10 * time.Second

	// DockerExecTimeout bounds the mkdir/chown/chmod exec inside the node
	// container.
	DockerExecTimeout = 30 * time.Second
)
