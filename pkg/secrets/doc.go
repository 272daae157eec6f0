/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package secrets processes secret contracts.
//
// Values live in Vault under {stack}/{namespace}/{name} and are written
// exactly once: a path that already holds a value is preserved, protecting
// rotations and manual edits from being clobbered by a re-run. The
// ExternalSecret manifest file is the opposite: a derived artifact
// regenerated in full on every add.
package secrets
