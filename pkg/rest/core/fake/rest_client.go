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
	"bytes"
	"fmt"
	"io/ioutil"
	"net/http"

	"github.com/gorilla/mux"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/kubernetes-sigs/service-catalog-mock/pkg/api"
	sc "github.com/kubernetes-sigs/service-catalog-mock/pkg/apis/servicecatalog/v1beta1"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/logging"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/metrics"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/registry/servicecatalog/clusterservicebroker"
)

const (
	// BrokersPath is the collection path of the ClusterServiceBroker resource.
	BrokersPath = "/apis/servicecatalog.k8s.io/v1beta1/" + clusterservicebroker.ResourceName

	contentTypeJSON = "application/json"
)

var brokerKind = sc.SchemeGroupVersion.WithKind("ClusterServiceBroker")

// NewRouter returns the handler serving the ClusterServiceBroker REST
// endpoints backed by storage.
func NewRouter(storage *clusterservicebroker.Storage) *mux.Router {
	r := mux.NewRouter()
	r.StrictSlash(true)
	r.HandleFunc(BrokersPath, getItems(storage)).Methods(http.MethodGet)
	r.HandleFunc(BrokersPath, createItem(storage)).Methods(http.MethodPost)
	r.HandleFunc(BrokersPath+"/{name}", getItem(storage)).Methods(http.MethodGet)
	r.HandleFunc(BrokersPath+"/{name}", deleteItem(storage)).Methods(http.MethodDelete)
	r.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)
	return r
}

func getItems(storage *clusterservicebroker.Storage) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		lcb := logging.NewLogContextBuilder("list", logging.ClusterServiceBrokerList, "")
		selector, err := labels.Parse(r.URL.Query().Get("labelSelector"))
		if err != nil {
			writeError(rw, lcb, apierrors.NewBadRequest(fmt.Sprintf("invalid labelSelector: %v", err)))
			return
		}
		list := storage.List()
		if !selector.Empty() {
			items := list.Items[:0]
			for _, item := range list.Items {
				if selector.Matches(labels.Set(item.Labels)) {
					items = append(items, item)
				}
			}
			list.Items = items
		}
		lcb.Debugf("returning %d items", len(list.Items))
		observe("list", "success")
		writeObject(rw, lcb, http.StatusOK, list)
	}
}

func createItem(storage *clusterservicebroker.Storage) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		lcb := logging.NewLogContextBuilder("create", logging.ClusterServiceBroker, "")
		bodyBytes, err := ioutil.ReadAll(r.Body)
		if err != nil {
			writeError(rw, lcb, apierrors.NewBadRequest(fmt.Sprintf("error reading body: %v", err)))
			return
		}
		broker, err := decodeBroker(bodyBytes)
		if err != nil {
			writeError(rw, lcb, err)
			return
		}
		lcb.SetName(broker.Name)
		created, err := storage.Create(broker)
		if err != nil {
			writeError(rw, lcb, err)
			return
		}
		lcb.SetName(created.Name)
		lcb.Debugf("created")
		observe("create", "success")
		writeObject(rw, lcb, http.StatusCreated, created)
	}
}

func getItem(storage *clusterservicebroker.Storage) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]
		lcb := logging.NewLogContextBuilder("get", logging.ClusterServiceBroker, name)
		item, ok := storage.Get(name)
		if !ok {
			writeError(rw, lcb, apierrors.NewNotFound(sc.Resource(clusterservicebroker.ResourceName), name))
			return
		}
		observe("get", "success")
		writeObject(rw, lcb, http.StatusOK, item)
	}
}

func deleteItem(storage *clusterservicebroker.Storage) http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		name := mux.Vars(r)["name"]
		lcb := logging.NewLogContextBuilder("delete", logging.ClusterServiceBroker, name)
		if !storage.Delete(name) {
			writeError(rw, lcb, apierrors.NewNotFound(sc.Resource(clusterservicebroker.ResourceName), name))
			return
		}
		lcb.Debugf("deleted")
		observe("delete", "success")
		writeObject(rw, lcb, http.StatusOK, &metav1.Status{
			Status: metav1.StatusSuccess,
			Code:   http.StatusOK,
			Details: &metav1.StatusDetails{
				Name:  name,
				Group: sc.GroupName,
				Kind:  clusterservicebroker.ResourceName,
			},
		})
	}
}

// unknownVerb labels requests that match no route. The request method is
// client controlled and never becomes a label value.
const unknownVerb = "unknown"

func notFoundHandler(rw http.ResponseWriter, r *http.Request) {
	lcb := logging.NewLogContextBuilder(unknownVerb, 0, r.URL.Path)
	writeError(rw, lcb, apierrors.NewNotFound(schema.GroupResource{}, r.URL.Path))
}

func methodNotAllowedHandler(rw http.ResponseWriter, r *http.Request) {
	lcb := logging.NewLogContextBuilder(unknownVerb, 0, r.URL.Path)
	writeError(rw, lcb, apierrors.NewMethodNotSupported(sc.Resource(clusterservicebroker.ResourceName), r.Method))
}

// decodeBroker decodes a request body into a ClusterServiceBroker. A body
// without apiVersion and kind is read as a v1beta1 ClusterServiceBroker.
func decodeBroker(body []byte) (*sc.ClusterServiceBroker, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, apierrors.NewBadRequest("request body is empty")
	}
	obj, _, err := api.Codecs.UniversalDeserializer().Decode(body, &brokerKind, clusterservicebroker.EmptyObject())
	if err != nil {
		return nil, apierrors.NewBadRequest(fmt.Sprintf("error decoding body: %v", err))
	}
	if err := clusterservicebroker.CheckObject(obj); err != nil {
		return nil, apierrors.NewBadRequest(fmt.Sprintf("%v, got %T", err, obj))
	}
	return obj.(*sc.ClusterServiceBroker), nil
}

func writeObject(rw http.ResponseWriter, lcb *logging.LogContextBuilder, status int, obj runtime.Object) {
	data, err := runtime.Encode(api.Encoder(), obj)
	if err != nil {
		lcb.Warningf("error encoding %T: %v", obj, err)
		rw.Header().Set("Content-Type", "text/plain")
		rw.WriteHeader(http.StatusInternalServerError)
		rw.Write([]byte(err.Error()))
		return
	}
	rw.Header().Set("Content-Type", contentTypeJSON)
	rw.WriteHeader(status)
	rw.Write(data)
}

func writeError(rw http.ResponseWriter, lcb *logging.LogContextBuilder, err error) {
	statusErr, ok := err.(apierrors.APIStatus)
	if !ok {
		statusErr = apierrors.NewInternalError(err)
	}
	status := statusErr.Status()
	status.Kind = "Status"
	status.APIVersion = "v1"
	lcb.Debugf("%s", status.Message)
	observe(lcb.Verb, string(status.Reason))
	writeObject(rw, lcb, int(status.Code), &status)
}

func observe(verb, result string) {
	metrics.BrokerOperations.WithLabelValues(verb, result).Inc()
}

// responseWriter buffers a response so that it can be handed back to a
// client as an *http.Response without going through a socket.
type responseWriter struct {
	header    http.Header
	headerSet bool
	status    int
	body      []byte
}

func newResponseWriter() *responseWriter {
	return &responseWriter{
		header: make(http.Header),
	}
}

func (rw *responseWriter) Header() http.Header {
	return rw.header
}

func (rw *responseWriter) Write(bytes []byte) (int, error) {
	if !rw.headerSet {
		rw.WriteHeader(http.StatusOK)
	}
	rw.body = append(rw.body, bytes...)
	return len(bytes), nil
}

func (rw *responseWriter) WriteHeader(status int) {
	if rw.headerSet {
		return
	}
	rw.headerSet = true
	rw.status = status
}

// getResponse panics if nothing was written to rw.
func (rw *responseWriter) getResponse() *http.Response {
	if !rw.headerSet {
		panic("no status was written to the response")
	}
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", rw.status, http.StatusText(rw.status)),
		StatusCode:    rw.status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        rw.header,
		ContentLength: int64(len(rw.body)),
		Body:          ioutil.NopCloser(bytes.NewBuffer(rw.body)),
	}
}

// roundTripFunc serves requests with an http.Handler in the calling
// goroutine.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func handlerRoundTripper(h http.Handler) http.RoundTripper {
	return roundTripFunc(func(req *http.Request) (*http.Response, error) {
		rw := newResponseWriter()
		h.ServeHTTP(rw, req)
		resp := rw.getResponse()
		resp.Request = req
		return resp, nil
	})
}
