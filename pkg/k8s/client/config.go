// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// EnvVarKubeConfig Name of Environment Variable for KUBECONFIG
const EnvVarKubeConfig = "KUBECONFIG"

// EnvVarTestKubeConfig Name of Environment Variable for test KUBECONFIG
const EnvVarTestKubeConfig = "TEST_KUBECONFIG"

const APIServerBurst = 150
const APIServerQPS = 100

// ErrKubeConfigNotFound is returned when no usable kubeconfig exists.
var ErrKubeConfigNotFound = errors.New("unable to find kubeconfig")

// DefaultKubeConfigPaths are tried in order when no kubeconfig is given and
// the usual locations are empty.  The first is where the container image
// expects a kubeconfig to be mounted, the others are written by RKE2 and K3s
// on server nodes.
var DefaultKubeConfigPaths = []string{
	"/kubeconfig",
	"/etc/rancher/rke2/rke2.yaml",
	"/etc/rancher/k3s/k3s.yaml",
}

// sanitizePath converts the input path to an absolute path
// and check if the file exists.  If it does not exist, an error
// is returned.
func sanitizePath(path string) (string, error) {
	log.Debugf("Sanitizing %s", path)
	path, err := filepath.Abs(path)
	if err != nil {
		return path, err
	}

	_, err = os.Stat(path)
	if err != nil {
		return path, fmt.Errorf("%w: %v", ErrKubeConfigNotFound, err)
	}

	return path, nil
}

// GetKubeConfigLocation finds the kubeconfig to use.  An explicit path wins,
// followed by the TEST_KUBECONFIG and KUBECONFIG environment variables,
// ~/.kube/config and finally DefaultKubeConfigPaths.
func GetKubeConfigLocation(kubeconfigPath string) (string, error) {
	if kubeconfigPath != "" {
		return sanitizePath(kubeconfigPath)
	}

	for _, envVar := range []string{EnvVarTestKubeConfig, EnvVarKubeConfig} {
		if kubeConfig := os.Getenv(envVar); len(kubeConfig) > 0 {
			path, err := sanitizePath(kubeConfig)
			if err != nil {
				err = fmt.Errorf("Failed to access the kubeconfig set by the environment variable %s: %w", envVar, err)
			}
			return path, err
		}
	}

	candidates := DefaultKubeConfigPaths
	if home := homedir.HomeDir(); home != "" {
		candidates = append([]string{filepath.Join(home, ".kube", "config")}, candidates...)
	}
	for _, c := range candidates {
		if path, err := sanitizePath(c); err == nil {
			return path, nil
		}
	}

	return "", ErrKubeConfigNotFound
}

// BuildKubeConfig returns the rest configuration of a kubeconfig file.
func BuildKubeConfig(kubeconfig string) (*rest.Config, error) {
	config, err := clientcmd.BuildConfigFromFlags("", kubeconfig)
	if err != nil {
		return nil, err
	}

	setConfigQPSBurst(config)
	return config, nil
}

func setConfigQPSBurst(config *rest.Config) {
	config.Burst = APIServerBurst
	config.QPS = APIServerQPS
}
