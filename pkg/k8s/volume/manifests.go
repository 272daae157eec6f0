/*
Copyright © 2026 HostK8s Authors
SPDX-License-Identifier: Apache-2.0
*/
package volume

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	storagev1 "k8s.io/api/storage/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	"github.com/hostk8s/hostk8s/pkg/contract"
)

// Labels stamped on every derived PersistentVolume. Cleanup selects on
// StackLabel, so changing it strands volumes created by earlier versions.
const (
	StackLabel = "hostk8s.stack"
	NameLabel  = "hostk8s.storage.name"
)

// PVName returns the deterministic PersistentVolume name for a directory.
func PVName(stack, name string) string {
	return fmt.Sprintf("hostk8s-%s-%s-pv", stack, name)
}

// StackSelector returns the label selector matching every PV of a stack.
func StackSelector(stack string) string {
	return fmt.Sprintf("%s=%s", StackLabel, stack)
}

// NewStorageClass builds the manual-provisioning StorageClass used for all
// contract storage. Volumes bind on first consumer so hostPath directories
// are only touched once a pod lands on the node.
func NewStorageClass(name string) *storagev1.StorageClass {
	return &storagev1.StorageClass{
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
		},
		Provisioner:          "kubernetes.io/no-provisioner",
		ReclaimPolicy:        ptr.To(corev1.PersistentVolumeReclaimRetain),
		VolumeBindingMode:    ptr.To(storagev1.VolumeBindingWaitForFirstConsumer),
		AllowVolumeExpansion: ptr.To(false),
	}
}

// NewPersistentVolume builds the hostPath PersistentVolume derived from one
// validated directory entry. The size has already passed quantity validation,
// so parsing here cannot fail.
func NewPersistentVolume(stack string, dir *contract.DirectorySpec) *corev1.PersistentVolume {
	modes := make([]corev1.PersistentVolumeAccessMode, 0, len(dir.AccessModes))
	for _, m := range dir.AccessModes {
		modes = append(modes, corev1.PersistentVolumeAccessMode(m))
	}

	return &corev1.PersistentVolume{
		ObjectMeta: metav1.ObjectMeta{
			Name: PVName(stack, dir.Name),
			Labels: map[string]string{
				StackLabel: stack,
				NameLabel:  dir.Name,
			},
		},
		Spec: corev1.PersistentVolumeSpec{
			Capacity: corev1.ResourceList{
				corev1.ResourceStorage: resource.MustParse(dir.Size),
			},
			AccessModes:                   modes,
			PersistentVolumeReclaimPolicy: corev1.PersistentVolumeReclaimRetain,
			StorageClassName:              dir.StorageClass,
			PersistentVolumeSource: corev1.PersistentVolumeSource{
				HostPath: &corev1.HostPathVolumeSource{
					Path: dir.Path,
					Type: ptr.To(corev1.HostPathDirectoryOrCreate),
				},
			},
		},
	}
}
