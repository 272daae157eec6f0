/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package volume

import (
	"context"
	"fmt"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/hostk8s/hostk8s/pkg/errors"
	"github.com/hostk8s/hostk8s/pkg/k8s/client"
)

// Provisioner creates and removes the PersistentVolumes and StorageClasses a
// storage contract derives. Creation is create-if-absent only: existing
// objects are never diffed or updated.
type Provisioner struct {
	client client.Interface
}

// New creates a Provisioner on top of a Kubernetes client.
func New(c client.Interface) *Provisioner {
	return &Provisioner{client: c}
}

// EnsureStorageClass creates the StorageClass if it does not exist yet.
// Returns true when the class was created, false when it already existed.
// An existence check that fails for any reason other than NotFound is
// treated as "does not exist" and creation is attempted anyway.
func (p *Provisioner) EnsureStorageClass(ctx context.Context, name string) (bool, error) {
	_, err := p.client.StorageV1().StorageClasses().Get(ctx, name, metav1.GetOptions{})
	if err == nil {
		slog.Debug("storage class already exists", "name", name)
		return false, nil
	}
	if !apierrors.IsNotFound(err) {
		slog.Debug("storage class existence check failed, attempting creation", "name", name, "error", err)
	}

	_, err = p.client.StorageV1().StorageClasses().Create(ctx, NewStorageClass(name), metav1.CreateOptions{})
	if apierrors.IsAlreadyExists(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeExternalCall,
			fmt.Sprintf("failed to create StorageClass %q", name), err)
	}

	slog.Debug("created storage class", "name", name)
	return true, nil
}

// EnsurePersistentVolume creates the PV if it does not exist yet, with the
// same create-if-absent semantics as EnsureStorageClass.
func (p *Provisioner) EnsurePersistentVolume(ctx context.Context, pv *corev1.PersistentVolume) (bool, error) {
	_, err := p.client.CoreV1().PersistentVolumes().Get(ctx, pv.Name, metav1.GetOptions{})
	if err == nil {
		slog.Debug("persistent volume already exists", "name", pv.Name)
		return false, nil
	}
	if !apierrors.IsNotFound(err) {
		slog.Debug("persistent volume existence check failed, attempting creation", "name", pv.Name, "error", err)
	}

	_, err = p.client.CoreV1().PersistentVolumes().Create(ctx, pv, metav1.CreateOptions{})
	if apierrors.IsAlreadyExists(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeExternalCall,
			fmt.Sprintf("failed to create PersistentVolume %q", pv.Name), err)
	}

	slog.Debug("created persistent volume", "name", pv.Name, "path", pv.Spec.HostPath.Path)
	return true, nil
}

// VolumeExists reports whether the named PersistentVolume is present.
func (p *Provisioner) VolumeExists(ctx context.Context, name string) (bool, error) {
	_, err := p.client.CoreV1().PersistentVolumes().Get(ctx, name, metav1.GetOptions{})
	if err == nil {
		return true, nil
	}
	if apierrors.IsNotFound(err) {
		return false, nil
	}
	return false, errors.Wrap(errors.ErrCodeExternalCall,
		fmt.Sprintf("failed to get PersistentVolume %q", name), err)
}

// DeleteStackVolumes removes every PersistentVolume labeled for the stack
// and returns the names of the volumes it deleted. Volumes that vanish
// between list and delete are ignored.
func (p *Provisioner) DeleteStackVolumes(ctx context.Context, stack string) ([]string, error) {
	list, err := p.client.CoreV1().PersistentVolumes().List(ctx, metav1.ListOptions{
		LabelSelector: StackSelector(stack),
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExternalCall,
			fmt.Sprintf("failed to list PersistentVolumes for stack %q", stack), err)
	}

	deleted := make([]string, 0, len(list.Items))
	for i := range list.Items {
		name := list.Items[i].Name
		err := p.client.CoreV1().PersistentVolumes().Delete(ctx, name, metav1.DeleteOptions{})
		if err != nil && !apierrors.IsNotFound(err) {
			return deleted, errors.Wrap(errors.ErrCodeExternalCall,
				fmt.Sprintf("failed to delete PersistentVolume %q", name), err)
		}
		slog.Debug("deleted persistent volume", "name", name)
		deleted = append(deleted, name)
	}

	return deleted, nil
}
