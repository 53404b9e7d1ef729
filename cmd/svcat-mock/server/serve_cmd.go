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
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	genericserver "k8s.io/apiserver/pkg/server"
	"k8s.io/klog"

	"github.com/kubernetes-sigs/service-catalog-mock/cmd/svcat-mock/command"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/rest/core/fake"
	servicecatalog "github.com/kubernetes-sigs/service-catalog-mock/pkg/svcat/service-catalog"
)

// ServeCmd contains the information needed to run the mock API server
type ServeCmd struct {
	*command.Base

	Options *MockServerOptions
	// StopCh stops the server when closed. The process signal handler is
	// used when nil.
	StopCh <-chan struct{}
}

// NewServeCmd builds a "svcat-mock serve" command
func NewServeCmd(cxt *command.Context, opts *MockServerOptions) *cobra.Command {
	serveCmd := &ServeCmd{
		Base:    command.NewBaseCommand(cxt),
		Options: opts,
	}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Runs the mock Service Catalog API server",
		Example: command.NormalizeExamples(`
		svcat-mock serve --port 8080
		SCMOCK_PORT=9090 svcat-mock serve --preload ups-broker.yaml
		`),
		Annotations: map[string]string{
			SkipAppAnnotation: "true",
		},
		PreRunE: command.PreRunE(serveCmd),
		RunE:    command.RunE(serveCmd),
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

// SkipAppAnnotation marks commands that do not talk to a remote server and
// so need no client application.
const SkipAppAnnotation = "svcat-mock/skip-app"

// Validate checks that the server options are usable
func (c *ServeCmd) Validate(args []string) error {
	return c.Options.Validate()
}

// Run preloads the configured descriptors and serves until stopped
func (c *ServeCmd) Run() error {
	srv := fake.NewServer()
	if err := Preload(srv, c.Options.Preload); err != nil {
		return err
	}

	stopCh := c.StopCh
	if stopCh == nil {
		stopCh = genericserver.SetupSignalHandler()
	}
	return srv.ListenAndServe(c.Options.Address(), stopCh)
}

// Preload creates a broker on srv for every descriptor file. Every file is
// tried and the failures are returned together.
func Preload(srv *fake.Server, filenames []string) error {
	if len(filenames) == 0 {
		return nil
	}
	cl, err := srv.Client()
	if err != nil {
		return errors.Wrap(err, "while creating the preload client")
	}
	sdk := &servicecatalog.SDK{ServiceCatalogClient: cl}

	var result *multierror.Error
	for _, filename := range filenames {
		broker, err := sdk.LoadBrokerFile(filename)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		created, err := sdk.CreateBroker(broker)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "while preloading %s", filename))
			continue
		}
		klog.Infof("Preloaded broker %q from %s", created.Name, filename)
	}
	return result.ErrorOrNil()
}
