/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package client provides a singleton Kubernetes client.
//
// The client is built once per process from the detected kubeconfig and
// shared by every component that talks to the cluster:
//
//	kc, err := client.GetKubeClient(cfg.Kubeconfig)
//	if err != nil {
//	    return err
//	}
//
// An empty kubeconfig path falls back to the in-cluster service account
// configuration. Tests consume the Interface alias with fake.NewClientset().
package client
