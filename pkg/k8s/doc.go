/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package k8s groups the Kubernetes-facing sub-packages.
//
// client holds the shared singleton Kubernetes client; volume derives
// StorageClasses and hostPath PersistentVolumes from storage contracts and
// applies them create-if-absent.
package k8s
