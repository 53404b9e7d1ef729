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

package validation

import (
	apivalidation "k8s.io/apimachinery/pkg/api/validation"
	"k8s.io/apimachinery/pkg/api/validation/path"
	"k8s.io/apimachinery/pkg/util/validation/field"

	sc "github.com/kubernetes-sigs/service-catalog-mock/pkg/apis/servicecatalog/v1beta1"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/logging"
)

// ValidateClusterServiceBrokerName is the validation function for broker
// names. Brokers are addressed by name in request paths, so the name must
// be a legal path segment.
var ValidateClusterServiceBrokerName = path.ValidatePathSegmentName

// ValidateClusterServiceBroker implements the validation rules for a
// ClusterServiceBroker.
func ValidateClusterServiceBroker(broker *sc.ClusterServiceBroker) field.ErrorList {
	allErrs := field.ErrorList{}

	allErrs = append(allErrs,
		apivalidation.ValidateObjectMeta(&broker.ObjectMeta,
			false, /* namespace required */
			ValidateClusterServiceBrokerName,
			field.NewPath("metadata"))...)

	allErrs = append(allErrs, validateClusterServiceBrokerSpec(&broker.Spec, field.NewPath("spec"))...)

	lcb := logging.NewLogContextBuilder("validate", logging.ClusterServiceBroker, broker.Name)
	for i, err := range allErrs {
		lcb.Debugf("error %d: %v", i, err)
	}
	return allErrs
}

func validateClusterServiceBrokerSpec(spec *sc.ClusterServiceBrokerSpec, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if spec.AuthInfo != nil {
		allErrs = append(allErrs, validateClusterServiceBrokerAuthInfo(spec.AuthInfo, fldPath.Child("authInfo"))...)
	}

	allErrs = append(allErrs, validateCommonServiceBrokerSpec(&spec.CommonServiceBrokerSpec, fldPath)...)
	return allErrs
}

func validateClusterServiceBrokerAuthInfo(authInfo *sc.ClusterServiceBrokerAuthInfo, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if authInfo.Basic != nil && authInfo.Bearer != nil {
		allErrs = append(allErrs, field.Forbidden(fldPath, "only one of basic or bearer auth may be specified"))
	}
	if authInfo.Basic != nil {
		allErrs = append(allErrs, validateSecretRef(authInfo.Basic.SecretRef, fldPath.Child("basic", "secretRef"))...)
	}
	if authInfo.Bearer != nil {
		allErrs = append(allErrs, validateSecretRef(authInfo.Bearer.SecretRef, fldPath.Child("bearer", "secretRef"))...)
	}
	return allErrs
}

func validateSecretRef(ref *sc.ObjectReference, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if ref == nil {
		return append(allErrs, field.Required(fldPath, "a secret reference is required"))
	}
	if ref.Namespace == "" {
		allErrs = append(allErrs, field.Required(fldPath.Child("namespace"), "the secret namespace is required"))
	}
	if ref.Name == "" {
		allErrs = append(allErrs, field.Required(fldPath.Child("name"), "the secret name is required"))
	}
	return allErrs
}

func validateCommonServiceBrokerSpec(spec *sc.CommonServiceBrokerSpec, fldPath *field.Path) field.ErrorList {
	allErrs := field.ErrorList{}

	if spec.URL == "" {
		allErrs = append(allErrs,
			field.Required(fldPath.Child("url"),
				"brokers must have a remote url to contact"))
	}

	if spec.InsecureSkipTLSVerify && len(spec.CABundle) > 0 {
		allErrs = append(allErrs, field.Invalid(fldPath.Child("caBundle"), spec.CABundle, "caBundle cannot be used when insecureSkipTLSVerify is true"))
	}

	if spec.RelistRequests < 0 {
		allErrs = append(allErrs,
			field.Invalid(fldPath.Child("relistRequests"),
				spec.RelistRequests,
				"relistRequests must be greater than zero"))
	}

	switch spec.RelistBehavior {
	case "", sc.ServiceBrokerRelistBehaviorManual:
		if spec.RelistDuration != nil {
			allErrs = append(allErrs,
				field.Forbidden(fldPath.Child("relistDuration"),
					"relistDuration may only be set when relistBehavior is Duration"))
		}
	case sc.ServiceBrokerRelistBehaviorDuration:
		if spec.RelistDuration != nil && spec.RelistDuration.Duration <= 0 {
			allErrs = append(allErrs,
				field.Invalid(fldPath.Child("relistDuration"),
					spec.RelistDuration,
					"relistDuration must be greater than zero"))
		}
	default:
		allErrs = append(allErrs,
			field.NotSupported(fldPath.Child("relistBehavior"),
				spec.RelistBehavior,
				[]string{string(sc.ServiceBrokerRelistBehaviorDuration), string(sc.ServiceBrokerRelistBehaviorManual)}))
	}

	return allErrs
}
