/*
Copyright 2019 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package readiness

import (
	"fmt"
	"net/http"

	"k8s.io/klog"
)

// BrokerRegistry is the part of the broker registry the readiness check
// looks at.
type BrokerRegistry interface {
	Len() int
}

// ReadinessRegistry provides functionality that ensures that the mock server
// registry is able to serve requests
type ReadinessRegistry struct {
	registry BrokerRegistry
	serving  func() bool
}

// NewRegistryCheck returns pointer to ReadinessRegistry. serving
// reports whether the server owning the registry still accepts requests.
func NewRegistryCheck(registry BrokerRegistry, serving func() bool) *ReadinessRegistry {
	return &ReadinessRegistry{registry: registry, serving: serving}
}

// Name returns the healthz check name
func (r ReadinessRegistry) Name() string {
	return "ready-registry"
}

// Check if the registry is ready
func (r *ReadinessRegistry) Check(_ *http.Request) error {
	result, err := r.check()
	if result && err == nil {
		return nil
	}

	return fmt.Errorf("registry is not ready")
}

// IsReady returns true if the registry can serve requests
func (r *ReadinessRegistry) IsReady() (bool, error) {
	return r.check()
}

func (r *ReadinessRegistry) check() (bool, error) {
	if r.registry == nil {
		return false, fmt.Errorf("no registry configured")
	}
	if r.serving != nil && !r.serving() {
		klog.V(4).Infof("Readiness check %s: server is shut down", r.Name())
		return false, nil
	}

	klog.V(4).Infof("Readiness check %s checked. There are %d brokers", r.Name(), r.registry.Len())
	return true, nil
}
