/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package contract defines the typed schemas for HostK8s storage and
// secrets contracts, loads them from a stack's directory, and validates
// their structural invariants before any resource is mutated.
package contract
