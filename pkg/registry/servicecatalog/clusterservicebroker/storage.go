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

package clusterservicebroker

import (
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"

	sc "github.com/kubernetes-sigs/service-catalog-mock/pkg/apis/servicecatalog/v1beta1"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/logging"
)

const (
	kind     = "ClusterServiceBroker"
	listKind = "ClusterServiceBrokerList"

	// ResourceName is the plural, lower case resource name used in request paths.
	ResourceName = "clusterservicebrokers"
)

var (
	errNotAClusterServiceBroker = errors.New("not a clusterservicebroker")
)

// EmptyObject returns an empty broker
func EmptyObject() runtime.Object {
	return &sc.ClusterServiceBroker{}
}

// NewList returns a new shell of a broker list
func NewList() *sc.ClusterServiceBrokerList {
	return &sc.ClusterServiceBrokerList{
		TypeMeta: metav1.TypeMeta{
			APIVersion: sc.SchemeGroupVersion.String(),
			Kind:       listKind,
		},
		Items: []sc.ClusterServiceBroker{},
	}
}

// CheckObject returns a non-nil error if obj is not a broker object
func CheckObject(obj runtime.Object) error {
	_, ok := obj.(*sc.ClusterServiceBroker)
	if !ok {
		return errNotAClusterServiceBroker
	}
	return nil
}

// Storage is an in-memory, name keyed store of ClusterServiceBrokers. Every
// method is atomic with respect to the others. Objects handed in and out are
// deep copies, callers never share memory with the store.
type Storage struct {
	mu      sync.RWMutex
	brokers map[string]*sc.ClusterServiceBroker
	// version is the last resourceVersion handed out.
	version uint64

	strategy clusterServiceBrokerRESTStrategy
	now      func() time.Time
}

// NewStorage returns an empty Storage.
func NewStorage() *Storage {
	return &Storage{
		brokers:  make(map[string]*sc.ClusterServiceBroker),
		strategy: clusterServiceBrokerRESTStrategies,
		now:      time.Now,
	}
}

// Create stores a new broker and returns the stored representation, with
// the server owned metadata filled in. It returns an Invalid error if the
// broker does not pass validation and an AlreadyExists error if a broker of
// the same name is already stored.
func (s *Storage) Create(broker *sc.ClusterServiceBroker) (*sc.ClusterServiceBroker, error) {
	if broker == nil {
		return nil, apierrors.NewBadRequest("a ClusterServiceBroker is required")
	}
	obj := broker.DeepCopy()
	s.strategy.PrepareForCreate(obj)

	lcb := logging.NewLogContextBuilder("create", logging.ClusterServiceBroker, obj.Name)

	if errs := s.strategy.Validate(obj); len(errs) > 0 {
		lcb.Debugf("rejected by validation")
		return nil, apierrors.NewInvalid(sc.Kind(kind), obj.Name, errs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.brokers[obj.Name]; ok {
		lcb.Debugf("already exists")
		return nil, apierrors.NewAlreadyExists(sc.Resource(ResourceName), obj.Name)
	}

	s.version++
	obj.ResourceVersion = strconv.FormatUint(s.version, 10)
	obj.UID = types.UID(uuid.New().String())
	obj.CreationTimestamp = metav1.NewTime(s.now())

	s.brokers[obj.Name] = obj
	lcb.Debugf("stored with resourceVersion %s", obj.ResourceVersion)
	return obj.DeepCopy(), nil
}

// Get returns the broker with the given name. The second return value
// reports whether the broker exists; a missing broker is not an error.
func (s *Storage) Get(name string) (*sc.ClusterServiceBroker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	broker, ok := s.brokers[name]
	if !ok {
		return nil, false
	}
	return broker.DeepCopy(), true
}

// List returns every stored broker, ordered by name.
func (s *Storage) List() *sc.ClusterServiceBrokerList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := NewList()
	list.ResourceVersion = strconv.FormatUint(s.version, 10)
	for _, broker := range s.brokers {
		list.Items = append(list.Items, *broker.DeepCopy())
	}
	sort.Slice(list.Items, func(i, j int) bool {
		return list.Items[i].Name < list.Items[j].Name
	})
	return list
}

// Delete removes the broker with the given name and reports whether there
// was anything to remove.
func (s *Storage) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.brokers[name]; !ok {
		return false
	}
	delete(s.brokers, name)
	s.version++
	logging.NewLogContextBuilder("delete", logging.ClusterServiceBroker, name).Debugf("removed")
	return true
}

// Len returns the number of stored brokers.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.brokers)
}
