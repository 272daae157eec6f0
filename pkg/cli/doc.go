/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the hostk8s contract
// processor.
//
// # Commands
//
// storage - process a stack's storage contract:
//
//	hostk8s storage setup <stack>
//	hostk8s storage cleanup <stack>
//	hostk8s storage list [stack]
//
// setup provisions StorageClasses and hostPath PersistentVolumes from
// hostk8s.storage.yaml and prepares the backing directories inside the Kind
// node container. cleanup deletes the stack's volumes while preserving data.
// list shows contract directories and their cluster state.
//
// secrets - process a stack's secret contract:
//
//	hostk8s secrets add <stack>
//	hostk8s secrets remove <stack>
//	hostk8s secrets list [stack]
//
// add writes secret data from hostk8s.secrets.yaml to Vault (preserving
// values already stored) and regenerates the stack's ExternalSecret
// manifests. remove deletes the stack's Vault paths and manifest file.
//
// # Configuration
//
// Flags fall back to environment variables (HOSTK8S_STACKS_DIR, KUBECONFIG,
// VAULT_ADDR, VAULT_TOKEN, CLUSTER_NAME, HOSTK8S_DEBUG); a .env file in the
// working directory is loaded first without overriding existing variables.
// LOG_LEVEL controls logging verbosity.
//
// # Exit Codes
//
//	0  every contract entry processed
//	1  any failure, including partial success
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/hostk8s/hostk8s/pkg/cli.version=1.0.0'"
package cli
