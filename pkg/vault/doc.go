/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package vault wraps Vault's KV v2 secret engine for contract processing.
//
// The Store speaks to a single mount (secret/ by default) and exposes the
// small surface the secrets manager needs: a health gate, existence checks,
// versioned writes, metadata deletes, and folder listing. All calls are
// rate-limited client side so a large contract cannot hammer the single-node
// dev Vault.
package vault
