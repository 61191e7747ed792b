// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package k8s

import (
	"context"

	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// GetPods returns all pods in a namespace.
func GetPods(client kubernetes.Interface, namespace string) (*v1.PodList, error) {
	return client.CoreV1().Pods(namespace).List(context.TODO(), metav1.ListOptions{})
}

// ContainerImages returns the images of the containers of a pod.
func ContainerImages(pod *v1.Pod) []string {
	images := make([]string, 0, len(pod.Spec.Containers))
	for _, c := range pod.Spec.Containers {
		images = append(images, c.Image)
	}
	return images
}
