/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package hostpath prepares contract directories inside the Kind node
// container via docker exec. The step is strictly best-effort: failures
// surface as report warnings, never as run-aborting errors.
package hostpath
