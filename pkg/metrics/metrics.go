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
// Package metrics creates and registers metrics objects with Prometheus
// and sets the Prometheus HTTP handler for /metrics
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"k8s.io/klog"
)

var registerMetrics sync.Once

const (
	catalogNamespace = "servicecatalog" // Prometheus namespace (nothing to do with k8s namespace)
	mockSubsystem    = "mock"
)

var (
	// Metrics are identified in Prometheus by concatinating Namespace,
	// Subsystem and Name while omitting any nulls and separating each key with
	// an underscore.  Note that in this context, Namespace is the Prometheus
	// Namespace and there is no correlation with Kubernetes Namespace.

	// RequestCount exposes the number of API requests served by the mock
	// server, by HTTP method and response code.
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: catalogNamespace,
			Subsystem: mockSubsystem,
			Name:      "requests_total",
			Help:      "Number of API requests served by the mock server.",
		},
		[]string{"code", "method"},
	)

	// BrokerOperations counts registry operations by verb and outcome.
	BrokerOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: catalogNamespace,
			Subsystem: mockSubsystem,
			Name:      "broker_operations_total",
			Help:      "Number of ClusterServiceBroker operations by verb and result.",
		},
		[]string{"verb", "result"},
	)
)

func register() {
	registerMetrics.Do(func() {
		prometheus.MustRegister(RequestCount)
		prometheus.MustRegister(BrokerOperations)
	})
}

// InstrumentHandler registers the metrics and wraps h so every request it
// serves is counted in RequestCount.
func InstrumentHandler(h http.Handler) http.Handler {
	register()
	return promhttp.InstrumentHandlerCounter(RequestCount, h)
}

// RegisterMetricsAndInstallHandler registers the mock server metrics
// objects with Prometheus and installs the Prometheus http handler at the
// default context.
func RegisterMetricsAndInstallHandler(m *http.ServeMux) {
	register()
	m.Handle("/metrics", promhttp.Handler())
	klog.V(4).Info("Registered /metrics with promhttp")
}
