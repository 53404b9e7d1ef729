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

package environment

import (
	"github.com/spf13/pflag"
)

const (
	// ServerEnvVar overrides the default mock server address. It is bound
	// to the --server flag by the CLI's viper configuration.
	ServerEnvVar = "SVCAT_MOCK_SERVER"

	// DefaultServer is the address used when neither the flag nor the
	// environment names one.
	DefaultServer = "http://localhost:8080"
)

// EnvSettings describes all of the environment settings.
type EnvSettings struct {
	// Server is the base URL of the mock API server.
	Server string
}

// AddFlags binds flags to the given flagset.
func (s *EnvSettings) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.Server, "server", "", "base URL of the mock Service Catalog API server. Overrides $"+ServerEnvVar)
}

// Init applies defaults to the settings that were not set by a flag or
// the environment.
func (s *EnvSettings) Init() {
	if s.Server == "" {
		s.Server = DefaultServer
	}
}
