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

package servicecatalog

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	v1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/validation/field"
	"sigs.k8s.io/yaml"

	"github.com/kubernetes-sigs/service-catalog-mock/pkg/apis/servicecatalog/v1beta1"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/apis/servicecatalog/validation"
)

const brokerKind = "ClusterServiceBroker"

// Broker provides a unifying layer over broker resources.
type Broker interface {

	// GetName returns the broker's name.
	GetName() string

	// GetNamespace returns the broker's namespace, or "" if it's cluster-scoped.
	GetNamespace() string

	// GetURL returns the broker's URL.
	GetURL() string

	// GetSpec returns the broker's spec.
	GetSpec() v1beta1.CommonServiceBrokerSpec

	// GetUID returns the uid the server assigned on create.
	GetUID() types.UID

	// GetResourceVersion returns the version the server stamped on create.
	GetResourceVersion() string

	// GetCreationTimestamp returns when the server stored the broker.
	GetCreationTimestamp() v1.Time

	// GetLabels returns the broker's labels.
	GetLabels() map[string]string
}

// CreateBroker stores a new broker. The broker is validated before any
// request is made, so a broker without a name or url never reaches the
// server.
func (sdk *SDK) CreateBroker(broker *v1beta1.ClusterServiceBroker) (*v1beta1.ClusterServiceBroker, error) {
	if broker == nil {
		return nil, apierrors.NewBadRequest("a broker is required")
	}
	if broker.Name == "" && broker.GenerateName == "" {
		return nil, apierrors.NewInvalid(v1beta1.Kind(brokerKind), "", field.ErrorList{
			field.Required(field.NewPath("metadata", "name"), "name or generateName is required"),
		})
	}
	if broker.Name != "" {
		if errs := validation.ValidateClusterServiceBroker(broker); len(errs) > 0 {
			return nil, apierrors.NewInvalid(v1beta1.Kind(brokerKind), broker.Name, errs)
		}
	}

	result, err := sdk.ServiceCatalog().ClusterServiceBrokers().Create(broker)
	if err != nil {
		return nil, errors.Wrapf(err, "create request failed for broker '%s'", broker.Name)
	}
	return result, nil
}

// RetrieveBrokers lists all brokers known to the server.
func (sdk *SDK) RetrieveBrokers() ([]v1beta1.ClusterServiceBroker, error) {
	list, err := sdk.RetrieveBrokerList()
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

// RetrieveBrokerList lists all brokers known to the server and keeps the
// list metadata.
func (sdk *SDK) RetrieveBrokerList() (*v1beta1.ClusterServiceBrokerList, error) {
	list, err := sdk.ServiceCatalog().ClusterServiceBrokers().List(v1.ListOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "unable to list brokers")
	}
	return list, nil
}

// RetrieveBroker gets a broker by its name. A broker that does not exist is
// reported as a nil broker and a nil error, including names no broker can
// be created with.
func (sdk *SDK) RetrieveBroker(name string) (*v1beta1.ClusterServiceBroker, error) {
	if len(validateBrokerName(name)) > 0 {
		return nil, nil
	}
	broker, err := sdk.ServiceCatalog().ClusterServiceBrokers().Get(name, v1.GetOptions{})
	if apierrors.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to get broker '%s'", name)
	}

	return broker, nil
}

// DeregisterBroker deletes a broker. It returns false when there was no
// broker with that name.
func (sdk *SDK) DeregisterBroker(brokerName string) (bool, error) {
	if len(validateBrokerName(brokerName)) > 0 {
		return false, nil
	}
	err := sdk.ServiceCatalog().ClusterServiceBrokers().Delete(brokerName, &v1.DeleteOptions{})
	if apierrors.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "deregister request failed for broker '%s'", brokerName)
	}
	return true, nil
}

// LoadBroker reads a YAML or JSON broker descriptor. Nothing is sent to the
// server. The descriptor may omit apiVersion and kind, but if it sets them
// they must name a servicecatalog.k8s.io/v1beta1 ClusterServiceBroker.
func (sdk *SDK) LoadBroker(r io.Reader) (*v1beta1.ClusterServiceBroker, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read the broker descriptor")
	}
	if len(data) == 0 {
		return nil, errors.New("the broker descriptor is empty")
	}

	broker := &v1beta1.ClusterServiceBroker{}
	if err := yaml.Unmarshal(data, broker); err != nil {
		return nil, errors.Wrap(err, "unable to parse the broker descriptor")
	}

	if broker.Kind == "" {
		broker.Kind = brokerKind
	}
	if broker.APIVersion == "" {
		broker.APIVersion = v1beta1.SchemeGroupVersion.String()
	}
	if broker.Kind != brokerKind || broker.APIVersion != v1beta1.SchemeGroupVersion.String() {
		return nil, apierrors.NewBadRequest(fmt.Sprintf("expected a %s %s descriptor, got %s %s",
			v1beta1.SchemeGroupVersion, brokerKind, broker.APIVersion, broker.Kind))
	}

	if errs := validateBrokerName(broker.Name); len(errs) > 0 {
		return nil, apierrors.NewInvalid(v1beta1.Kind(brokerKind), broker.Name, errs)
	}
	return broker, nil
}

// LoadBrokerFile reads a broker descriptor from a file.
func (sdk *SDK) LoadBrokerFile(path string) (*v1beta1.ClusterServiceBroker, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open broker descriptor %s", path)
	}
	defer f.Close()

	broker, err := sdk.LoadBroker(f)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load broker descriptor %s", path)
	}
	return broker, nil
}

func validateBrokerName(name string) field.ErrorList {
	fldPath := field.NewPath("metadata", "name")
	if name == "" {
		return field.ErrorList{field.Required(fldPath, "name is required")}
	}
	allErrs := field.ErrorList{}
	for _, msg := range validation.ValidateClusterServiceBrokerName(name, false) {
		allErrs = append(allErrs, field.Invalid(fldPath, name, msg))
	}
	return allErrs
}

//Register creates a broker
func (sdk *SDK) Register(brokerName string, url string, opts *RegisterOptions) (*v1beta1.ClusterServiceBroker, error) {
	var err error
	var caBytes []byte
	if opts.CAFile != "" {
		caBytes, err = ioutil.ReadFile(opts.CAFile)
		if err != nil {
			return nil, errors.Wrap(err, "Error opening CA file")
		}
	}

	request := &v1beta1.ClusterServiceBroker{
		ObjectMeta: v1.ObjectMeta{
			Name:   brokerName,
			Labels: opts.Labels,
		},
		Spec: v1beta1.ClusterServiceBrokerSpec{
			CommonServiceBrokerSpec: v1beta1.CommonServiceBrokerSpec{
				CABundle:              caBytes,
				InsecureSkipTLSVerify: opts.SkipTLS,
				RelistBehavior:        opts.RelistBehavior,
				RelistDuration:        opts.RelistDuration,
				URL:                   url,
			},
		},
	}
	if opts.BasicSecret != "" {
		request.Spec.AuthInfo = &v1beta1.ClusterServiceBrokerAuthInfo{
			Basic: &v1beta1.ClusterBasicAuthConfig{
				SecretRef: &v1beta1.ObjectReference{
					Name:      opts.BasicSecret,
					Namespace: opts.Namespace,
				},
			},
		}
	} else if opts.BearerSecret != "" {
		request.Spec.AuthInfo = &v1beta1.ClusterServiceBrokerAuthInfo{
			Bearer: &v1beta1.ClusterBearerTokenAuthConfig{
				SecretRef: &v1beta1.ObjectReference{
					Name:      opts.BearerSecret,
					Namespace: opts.Namespace,
				},
			},
		}
	}

	result, err := sdk.CreateBroker(request)
	if err != nil {
		return nil, errors.Wrap(err, "register request failed")
	}
	return result, nil
}
