// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package client

import (
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
)

// KubeInfo holds everything needed to talk to one cluster.
type KubeInfo struct {
	KubeconfigPath string
	RestConfig     *rest.Config
	Client         kubernetes.Interface
}

// fakeClient is for unit testing
var fakeClient kubernetes.Interface

// SetFakeClient for unit tests
func SetFakeClient(client kubernetes.Interface) {
	fakeClient = client
}

// ClearFakeClient for unit tests
func ClearFakeClient() {
	fakeClient = nil
}

// GetGoClient returns a go-client
func GetGoClient(config *rest.Config) (kubernetes.Interface, error) {
	if fakeClient != nil {
		return fakeClient, nil
	}
	return kubernetes.NewForConfig(config)
}

// CreateKubeInfo locates a kubeconfig and builds a client for it.
func CreateKubeInfo(kubeconfigPath string) (*KubeInfo, error) {
	path, err := GetKubeConfigLocation(kubeconfigPath)
	if err != nil {
		return nil, err
	}

	restConfig, err := BuildKubeConfig(path)
	if err != nil {
		return nil, err
	}

	cli, err := GetGoClient(restConfig)
	if err != nil {
		return nil, err
	}

	RedirectKlog()
	return &KubeInfo{
		KubeconfigPath: path,
		RestConfig:     restConfig,
		Client:         cli,
	}, nil
}
