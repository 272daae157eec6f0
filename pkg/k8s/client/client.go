/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package client

import (
	"fmt"
	"sync"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

// Interface is an alias for kubernetes.Interface to allow easier mocking in
// tests. This enables using fake.NewClientset() wherever a client is consumed.
type Interface = kubernetes.Interface

var (
	clientOnce   sync.Once
	cachedClient *kubernetes.Clientset
	clientErr    error
)

// GetKubeClient returns a singleton Kubernetes client built from the given
// kubeconfig, creating it on first call. Subsequent calls return the cached
// client regardless of the argument, for connection reuse across commands
// that touch several stacks in one run.
//
// Use BuildKubeClient when a fresh client with explicit configuration is
// required.
func GetKubeClient(kubeconfig string) (Interface, error) {
	clientOnce.Do(func() {
		cachedClient, clientErr = BuildKubeClient(kubeconfig)
	})
	return cachedClient, clientErr
}

// BuildKubeClient creates a Kubernetes client from the given kubeconfig file.
// The path normally comes from config.DetectKubeconfig; when it is empty the
// in-cluster service account configuration is used, which covers running the
// processor inside the cluster itself.
func BuildKubeClient(kubeconfig string) (*kubernetes.Clientset, error) {
	var cfg *rest.Config
	var err error

	if kubeconfig == "" {
		cfg, err = rest.InClusterConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to get in-cluster config: %w", err)
		}
	} else {
		cfg, err = clientcmd.BuildConfigFromFlags("", kubeconfig)
		if err != nil {
			return nil, fmt.Errorf("failed to build kube config from %s: %w", kubeconfig, err)
		}
	}

	clientset, err := kubernetes.NewForConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return clientset, nil
}
