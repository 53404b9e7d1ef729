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
	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/apiserver/pkg/storage/names"

	sc "github.com/kubernetes-sigs/service-catalog-mock/pkg/apis/servicecatalog/v1beta1"
	scv "github.com/kubernetes-sigs/service-catalog-mock/pkg/apis/servicecatalog/validation"
)

// clusterServiceBrokerRESTStrategy holds the create rules applied to every
// incoming broker before it is stored.
type clusterServiceBrokerRESTStrategy struct {
	names.NameGenerator // GenerateName method for CreateStrategy
}

var clusterServiceBrokerRESTStrategies = clusterServiceBrokerRESTStrategy{
	NameGenerator: names.SimpleNameGenerator,
}

// PrepareForCreate receives the incoming ClusterServiceBroker and clears its
// Status and the fields owned by the server. Status is not a user settable
// field.
func (s clusterServiceBrokerRESTStrategy) PrepareForCreate(broker *sc.ClusterServiceBroker) {
	if broker.Name == "" && broker.GenerateName != "" {
		broker.Name = s.GenerateName(broker.GenerateName)
	}

	broker.TypeMeta.APIVersion = sc.SchemeGroupVersion.String()
	broker.TypeMeta.Kind = kind

	broker.UID = ""
	broker.ResourceVersion = ""
	broker.SelfLink = ""
	broker.DeletionTimestamp = nil
	broker.DeletionGracePeriodSeconds = nil

	// Creating a brand new object, thus it must have no
	// status. We can't fail here if they passed a status in, so
	// we just wipe it clean.
	broker.Status = sc.ClusterServiceBrokerStatus{}
	broker.Status.Conditions = []sc.ServiceBrokerCondition{}
	broker.Generation = 1
}

// Validate runs the broker validation rules.
func (clusterServiceBrokerRESTStrategy) Validate(broker *sc.ClusterServiceBroker) field.ErrorList {
	return scv.ValidateClusterServiceBroker(broker)
}
