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
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	sc "github.com/kubernetes-sigs/service-catalog-mock/pkg/apis/servicecatalog/v1beta1"
)

// servers returns the ways a test can reach a fresh Server.
func servers() map[string]func() *Server {
	return map[string]func() *Server{
		"in-process": NewServer,
		"loopback": func() *Server {
			s := NewServer()
			s.Start()
			return s
		},
	}
}

func TestServerCRUDThroughClientset(t *testing.T) {
	for tn, newServer := range servers() {
		t.Run(tn, func(t *testing.T) {
			// given
			server := newServer()
			defer server.Close()
			cs, err := server.Client()
			require.NoError(t, err)
			brokers := cs.ServicecatalogV1beta1().ClusterServiceBrokers()
			broker := sc.NewClusterServiceBrokerBuilder().WithName(name1).WithURL("https://name1.example.com").Build()

			// when
			created, err := brokers.Create(broker)

			// then
			require.NoError(t, err)
			assert.Equal(t, name1, created.Name)
			assert.Equal(t, broker.Spec, created.Spec)

			got, err := brokers.Get(name1, metav1.GetOptions{})
			require.NoError(t, err)
			assert.Equal(t, created.UID, got.UID)

			list, err := brokers.List(metav1.ListOptions{})
			require.NoError(t, err)
			require.Len(t, list.Items, 1)
			assert.Equal(t, name1, list.Items[0].Name)

			require.NoError(t, brokers.Delete(name1, &metav1.DeleteOptions{}))
			_, err = brokers.Get(name1, metav1.GetOptions{})
			assert.True(t, apierrors.IsNotFound(err), "unexpected error: %v", err)
		})
	}
}

func TestServerErrorsThroughClientset(t *testing.T) {
	for tn, newServer := range servers() {
		t.Run(tn, func(t *testing.T) {
			// given
			server := newServer()
			defer server.Close()
			cs, err := server.Client()
			require.NoError(t, err)
			brokers := cs.ServicecatalogV1beta1().ClusterServiceBrokers()
			_, err = brokers.Create(sc.NewClusterServiceBrokerBuilder().WithName(name1).WithURL("https://name1.example.com").Build())
			require.NoError(t, err)

			// when
			_, dupErr := brokers.Create(sc.NewClusterServiceBrokerBuilder().WithName(name1).WithURL("https://other.example.com").Build())
			_, invalidErr := brokers.Create(sc.NewClusterServiceBrokerBuilder().WithName(name2).Build())
			deleteErr := brokers.Delete(name3, nil)

			// then
			assert.True(t, apierrors.IsAlreadyExists(dupErr), "unexpected error: %v", dupErr)
			assert.True(t, apierrors.IsInvalid(invalidErr), "unexpected error: %v", invalidErr)
			assert.True(t, apierrors.IsNotFound(deleteErr), "unexpected error: %v", deleteErr)
			assert.Equal(t, 1, server.Storage().Len())
		})
	}
}

func TestServersDoNotShareBrokers(t *testing.T) {
	// given
	first, second := NewServer(), NewServer()
	_, err := first.Storage().Create(sc.NewClusterServiceBrokerBuilder().WithName(name1).WithURL("https://name1.example.com").Build())
	require.NoError(t, err)

	// when
	cs, err := second.Client()
	require.NoError(t, err)
	list, err := cs.ServicecatalogV1beta1().ClusterServiceBrokers().List(metav1.ListOptions{})

	// then
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestServerURL(t *testing.T) {
	server := NewServer()
	assert.Empty(t, server.URL())
	assert.Equal(t, InProcessHost, server.RESTConfig().Host)

	server.Start()
	defer server.Close()
	url := server.URL()
	assert.NotEmpty(t, url)
	assert.Equal(t, url, server.RESTConfig().Host)

	server.Start()
	assert.Equal(t, url, server.URL(), "a second Start must keep the listener")
}

func TestServerHealthEndpoints(t *testing.T) {
	for _, path := range []string{"/healthz", "/readyz", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			// given
			server := NewServer()
			defer server.Close()
			rw := httptest.NewRecorder()

			// when
			server.Handler().ServeHTTP(rw, httptest.NewRequest(http.MethodGet, path, nil))

			// then
			assert.Equal(t, http.StatusOK, rw.Code)
		})
	}
}

func TestServerNotReadyAfterClose(t *testing.T) {
	// given
	server := NewServer()
	server.Close()
	rw := httptest.NewRecorder()

	// when
	server.Handler().ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	// then
	assert.Equal(t, http.StatusInternalServerError, rw.Code)
}

func TestRoundTripperAfterClose(t *testing.T) {
	// given
	server := NewServer()
	rt := server.RoundTripper()
	server.Close()

	// when
	_, err := rt.RoundTrip(httptest.NewRequest(http.MethodGet, InProcessHost+BrokersPath, nil))

	// then
	assert.Error(t, err)
}

func TestNewRESTClient(t *testing.T) {
	// given
	server := NewServer()
	defer server.Close()
	_, err := server.Storage().Create(sc.NewClusterServiceBrokerBuilder().WithName(name1).WithURL("https://name1.example.com").Build())
	require.NoError(t, err)
	client, err := server.NewRESTClient()
	require.NoError(t, err)

	// when
	body, err := client.Get().Resource("clusterservicebrokers").Name(name1).DoRaw()

	// then
	require.NoError(t, err)
	assert.Contains(t, string(body), `"name":"name1"`)
}

func TestServerServesOverHTTP(t *testing.T) {
	// given
	server := NewServer()
	server.Start()
	defer server.Close()

	// when
	response, err := http.Get(server.URL() + BrokersPath)

	// then
	require.NoError(t, err)
	defer response.Body.Close()
	assert.Equal(t, http.StatusOK, response.StatusCode)
	body, err := ioutil.ReadAll(response.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"kind":"ClusterServiceBrokerList"`)
}
