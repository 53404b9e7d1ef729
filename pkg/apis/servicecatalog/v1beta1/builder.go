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

package v1beta1

import (
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ClusterServiceBrokerBuilder assembles a ClusterServiceBroker field by
// field. The zero value is not usable, use NewClusterServiceBrokerBuilder.
type ClusterServiceBrokerBuilder struct {
	broker *ClusterServiceBroker
}

// NewClusterServiceBrokerBuilder returns a builder for a broker with the
// apiVersion and kind already filled in.
func NewClusterServiceBrokerBuilder() *ClusterServiceBrokerBuilder {
	return &ClusterServiceBrokerBuilder{
		broker: &ClusterServiceBroker{
			TypeMeta: metav1.TypeMeta{
				APIVersion: SchemeGroupVersion.String(),
				Kind:       "ClusterServiceBroker",
			},
		},
	}
}

// WithName sets metadata.name.
func (b *ClusterServiceBrokerBuilder) WithName(name string) *ClusterServiceBrokerBuilder {
	b.broker.Name = name
	return b
}

// WithLabels merges the given labels into metadata.labels.
func (b *ClusterServiceBrokerBuilder) WithLabels(labels map[string]string) *ClusterServiceBrokerBuilder {
	if b.broker.Labels == nil {
		b.broker.Labels = make(map[string]string, len(labels))
	}
	for k, v := range labels {
		b.broker.Labels[k] = v
	}
	return b
}

// WithURL sets spec.url.
func (b *ClusterServiceBrokerBuilder) WithURL(url string) *ClusterServiceBrokerBuilder {
	b.broker.Spec.URL = url
	return b
}

// WithInsecureSkipTLSVerify sets spec.insecureSkipTLSVerify.
func (b *ClusterServiceBrokerBuilder) WithInsecureSkipTLSVerify(skip bool) *ClusterServiceBrokerBuilder {
	b.broker.Spec.InsecureSkipTLSVerify = skip
	return b
}

// WithCABundle sets spec.caBundle.
func (b *ClusterServiceBrokerBuilder) WithCABundle(ca []byte) *ClusterServiceBrokerBuilder {
	b.broker.Spec.CABundle = ca
	return b
}

// WithRelistDuration switches the broker to duration based relisting.
func (b *ClusterServiceBrokerBuilder) WithRelistDuration(d time.Duration) *ClusterServiceBrokerBuilder {
	b.broker.Spec.RelistBehavior = ServiceBrokerRelistBehaviorDuration
	b.broker.Spec.RelistDuration = &metav1.Duration{Duration: d}
	return b
}

// WithManualRelist switches the broker to manual relisting.
func (b *ClusterServiceBrokerBuilder) WithManualRelist() *ClusterServiceBrokerBuilder {
	b.broker.Spec.RelistBehavior = ServiceBrokerRelistBehaviorManual
	b.broker.Spec.RelistDuration = nil
	return b
}

// WithBasicAuthSecret authenticates against the broker with the username and
// password stored in the referenced secret.
func (b *ClusterServiceBrokerBuilder) WithBasicAuthSecret(namespace, name string) *ClusterServiceBrokerBuilder {
	b.broker.Spec.AuthInfo = &ClusterServiceBrokerAuthInfo{
		Basic: &ClusterBasicAuthConfig{
			SecretRef: &ObjectReference{Namespace: namespace, Name: name},
		},
	}
	return b
}

// WithBearerAuthSecret authenticates against the broker with the token
// stored in the referenced secret.
func (b *ClusterServiceBrokerBuilder) WithBearerAuthSecret(namespace, name string) *ClusterServiceBrokerBuilder {
	b.broker.Spec.AuthInfo = &ClusterServiceBrokerAuthInfo{
		Bearer: &ClusterBearerTokenAuthConfig{
			SecretRef: &ObjectReference{Namespace: namespace, Name: name},
		},
	}
	return b
}

// Build returns a copy of the broker assembled so far. The builder can keep
// being used afterwards without affecting returned brokers.
func (b *ClusterServiceBrokerBuilder) Build() *ClusterServiceBroker {
	return b.broker.DeepCopy()
}
