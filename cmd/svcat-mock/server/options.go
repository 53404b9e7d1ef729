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

package server

import (
	"fmt"
	"net"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/vrischmann/envconfig"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// EnvPrefix is prepended to every environment variable read into
// MockServerOptions, e.g. SCMOCK_PORT.
const EnvPrefix = "SCMOCK"

// MockServerOptions is the configuration of the mock API server. Values are
// read from the environment first and flags override them.
type MockServerOptions struct {
	BindAddress string `envconfig:"default=0.0.0.0"`
	Port        int    `envconfig:"default=8080"`
	// Preload lists broker descriptor files created on startup.
	Preload []string `envconfig:"optional"`
}

// NewMockServerOptions creates MockServerOptions populated from the
// environment.
func NewMockServerOptions() (*MockServerOptions, error) {
	opts := &MockServerOptions{}
	if err := envconfig.InitWithPrefix(opts, EnvPrefix); err != nil {
		return nil, errors.Wrap(err, "while reading server configuration from environment")
	}
	return opts, nil
}

// AddFlags adds flags for the mock server to the specified FlagSet.
func (o *MockServerOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.BindAddress, "bind-address", o.BindAddress, "The IP address on which to listen")
	fs.IntVar(&o.Port, "port", o.Port, "The port on which to serve the mock API")
	fs.StringArrayVar(&o.Preload, "preload", o.Preload, "Broker descriptor file to create on startup. May be repeated")
}

// Validate checks all options and returns every problem found.
func (o *MockServerOptions) Validate() error {
	var errs []error
	if net.ParseIP(o.BindAddress) == nil {
		errs = append(errs, fmt.Errorf("--bind-address %q is not a valid IP address", o.BindAddress))
	}
	if o.Port < 0 || o.Port > 65535 {
		errs = append(errs, fmt.Errorf("--port %d must be between 0 and 65535, inclusive", o.Port))
	}
	return utilerrors.NewAggregate(errs)
}

// Address returns the host:port the server listens on.
func (o *MockServerOptions) Address() string {
	return net.JoinHostPort(o.BindAddress, strconv.Itoa(o.Port))
}
