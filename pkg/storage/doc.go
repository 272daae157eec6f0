/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package storage processes storage contracts.
//
// Setup is create-if-absent: existing StorageClasses and PersistentVolumes
// are left untouched, so a second run against the same contract is a no-op.
// Cleanup deletes the stack's volumes by label selector while the host
// directories, and the data in them, survive for the next deployment.
package storage
