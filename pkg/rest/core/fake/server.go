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

package fake

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"k8s.io/apiserver/pkg/server/healthz"
	"k8s.io/client-go/rest"
	"k8s.io/klog"

	"github.com/kubernetes-sigs/service-catalog-mock/pkg/client/clientset_generated/clientset"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/metrics"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/readiness"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/registry/servicecatalog/clusterservicebroker"
)

const (
	// InProcessHost is the host used by clients that reach the server
	// through RoundTripper rather than over a socket.
	InProcessHost = "http://servicecatalog.mock"

	shutdownTimeout = 5 * time.Second

	// client side throttling is pointless against an in-memory server
	clientQPS   = 1000
	clientBurst = 1000
)

// Server is a mock Service Catalog API server holding ClusterServiceBrokers
// in memory. Every Server owns its own registry, so two servers never see
// each other's brokers.
type Server struct {
	storage *clusterservicebroker.Storage
	handler http.Handler

	mu         sync.Mutex
	httpServer *httptest.Server
	closed     int32
}

// NewServer returns a Server with an empty registry. The server does not
// listen on any socket until Start is called, but it can already be reached
// in-process through RoundTripper and RESTConfig.
func NewServer() *Server {
	s := &Server{storage: clusterservicebroker.NewStorage()}

	m := http.NewServeMux()
	metrics.RegisterMetricsAndInstallHandler(m)
	// liveness registered at /healthz indicates if the server is responding
	healthz.InstallHandler(m, healthz.PingHealthz)
	healthz.InstallPathHandler(m, "/readyz", readiness.NewRegistryCheck(s.storage, s.serving))
	m.Handle("/", metrics.InstrumentHandler(NewRouter(s.storage)))
	s.handler = m

	return s
}

// Storage returns the registry backing the server.
func (s *Server) Storage() *clusterservicebroker.Storage {
	return s.storage
}

// Handler returns the http.Handler serving the API, /metrics, /healthz and
// /readyz.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start serves the API on a loopback address. Calling Start on a started
// server does nothing.
func (s *Server) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.httpServer != nil {
		return
	}
	s.httpServer = httptest.NewServer(s.handler)
	klog.V(2).Infof("Mock Service Catalog API server listening on %s", s.httpServer.URL)
}

// URL returns the base URL of a started server, or "" if Start was not
// called.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.URL
}

// Close stops the server. Requests made after Close fail.
func (s *Server) Close() {
	atomic.StoreInt32(&s.closed, 1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.httpServer != nil {
		s.httpServer.Close()
	}
}

func (s *Server) serving() bool {
	return atomic.LoadInt32(&s.closed) == 0
}

// RoundTripper returns a transport that serves every request with the
// server's handler in the calling goroutine, without a socket.
func (s *Server) RoundTripper() http.RoundTripper {
	inner := handlerRoundTripper(s.handler)
	return roundTripFunc(func(req *http.Request) (*http.Response, error) {
		if !s.serving() {
			return nil, errors.Errorf("mock server is closed, cannot serve %s %s", req.Method, req.URL.Path)
		}
		return inner.RoundTrip(req)
	})
}

// RESTConfig returns a client configuration for the server. A started
// server is reached over loopback HTTP, otherwise requests go through
// RoundTripper.
func (s *Server) RESTConfig() *rest.Config {
	if url := s.URL(); url != "" {
		return &rest.Config{Host: url, QPS: clientQPS, Burst: clientBurst}
	}
	return s.inProcessConfig()
}

func (s *Server) inProcessConfig() *rest.Config {
	return &rest.Config{
		Host:      InProcessHost,
		Transport: s.RoundTripper(),
		QPS:       clientQPS,
		Burst:     clientBurst,
	}
}

// Client returns a typed clientset bound to the server.
func (s *Server) Client() (*clientset.Clientset, error) {
	cs, err := clientset.NewForConfig(s.RESTConfig())
	if err != nil {
		return nil, errors.Wrap(err, "while creating the clientset for the mock server")
	}
	return cs, nil
}

// NewRESTClient returns a RESTClient for the servicecatalog.k8s.io group
// that serves requests in-process.
func (s *Server) NewRESTClient() (rest.Interface, error) {
	cs, err := clientset.NewForConfig(s.inProcessConfig())
	if err != nil {
		return nil, errors.Wrap(err, "while creating the in-process REST client")
	}
	return cs.ServicecatalogV1beta1().RESTClient(), nil
}

// ListenAndServe serves the API on addr until stopCh is closed, then shuts
// the listener down gracefully.
func (s *Server) ListenAndServe(addr string, stopCh <-chan struct{}) error {
	server := &http.Server{
		Addr:    addr,
		Handler: s.handler,
	}

	errCh := make(chan error, 1)
	go func() {
		klog.Infof("Mock Service Catalog API server listening on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrapf(err, "while serving on %s", addr)
	case <-stopCh:
	}

	atomic.StoreInt32(&s.closed, 1)
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	klog.Info("Shutting down the mock Service Catalog API server")
	if err := server.Shutdown(ctx); err != nil {
		return errors.Wrap(err, "while shutting down the server")
	}
	return nil
}
