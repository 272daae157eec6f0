/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package defaults centralizes timeout and rate-limit constants for calls to
// external systems (Vault, the Kubernetes API, docker). Keeping them in one
// place makes the operational envelope of the processor reviewable at a
// glance.
//
// Usage:
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.K8sEnsureTimeout)
//	defer cancel()
package defaults
