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

package svcat

import (
	"github.com/pkg/errors"
	"k8s.io/client-go/rest"

	"github.com/kubernetes-sigs/service-catalog-mock/pkg/client/clientset_generated/clientset"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/svcat/service-catalog"
)

// App is the underlying application behind the svcat-mock cli.
type App struct {
	*servicecatalog.SDK

	// Server is the base URL of the mock API server the app talks to.
	Server string
}

// NewApp creates an svcat-mock application talking to the mock API server
// at serverURL.
func NewApp(serverURL string) (*App, error) {
	cl, err := getServiceCatalogClient(&rest.Config{Host: serverURL})
	if err != nil {
		return nil, err
	}

	return NewAppForClient(serverURL, cl), nil
}

// NewAppForClient creates an svcat-mock application using an existing
// clientset.
func NewAppForClient(serverURL string, cl clientset.Interface) *App {
	return &App{
		SDK: &servicecatalog.SDK{
			ServiceCatalogClient: cl,
		},
		Server: serverURL,
	}
}

// getServiceCatalogClient creates a Service Catalog client for a given config.
func getServiceCatalogClient(restConfig *rest.Config) (*clientset.Clientset, error) {
	client, err := clientset.NewForConfig(restConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create a client for server %q", restConfig.Host)
	}
	return client, nil
}
