/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package volume derives PersistentVolume and StorageClass objects from
// storage contract entries and applies them idempotently through the typed
// Kubernetes client.
//
// Naming is deterministic: directory "cache" under stack "sample" always
// yields PV "hostk8s-sample-cache-pv". Every derived PV carries the
// hostk8s.stack label so cleanup can remove a stack's volumes by selector
// without consulting the contract again.
package volume
