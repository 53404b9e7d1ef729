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

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog"

	"github.com/kubernetes-sigs/service-catalog-mock/cmd/svcat-mock/broker"
	"github.com/kubernetes-sigs/service-catalog-mock/cmd/svcat-mock/command"
	"github.com/kubernetes-sigs/service-catalog-mock/cmd/svcat-mock/server"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/svcat"
	"github.com/kubernetes-sigs/service-catalog-mock/pkg/svcat/environment"
)

// envPrefix scopes the environment variables bound to flags, e.g.
// SVCAT_MOCK_OUTPUT for --output and SVCAT_MOCK_BIND_ADDRESS for
// --bind-address.
const envPrefix = "svcat_mock"

func init() {
	// k8s.io/component-base/logs, linked in through the apiserver, may
	// already have registered the klog flags
	if flag.CommandLine.Lookup("v") == nil {
		klog.InitFlags(nil)
	}
}

func main() {
	// root command context
	cxt := &command.Context{
		Viper: viper.New(),
	}
	cmd, err := buildRootCommand(cxt)
	if err != nil {
		klog.Errorf("%+v", err)
		os.Exit(1)
	}
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildRootCommand(cxt *command.Context) (*cobra.Command, error) {
	// Make cobra aware of select klog flags
	pflag.CommandLine.AddGoFlag(flag.CommandLine.Lookup("v"))
	pflag.CommandLine.AddGoFlag(flag.CommandLine.Lookup("logtostderr"))
	pflag.CommandLine.Set("logtostderr", "true")

	serverOpts, err := server.NewMockServerOptions()
	if err != nil {
		return nil, err
	}

	settings := &environment.EnvSettings{}

	cmd := &cobra.Command{
		Use:          "svcat-mock",
		Short:        "A mock Service Catalog API server for ClusterServiceBrokers and its CLI",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Enable tests to swap the output
			if cxt.Output == nil {
				cxt.Output = cmd.OutOrStdout()
			}

			// Initialize flags from environment variables
			bindViperToCobra(cxt.Viper, cmd)

			if cmd.Annotations[server.SkipAppAnnotation] != "" {
				return nil
			}

			// Initialize the context if not already configured (by tests)
			if cxt.App == nil {
				settings.Init()
				app, err := svcat.NewApp(settings.Server)
				if err != nil {
					return err
				}

				cxt.App = app
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cxt.Output, cmd.UsageString())
			return nil
		},
	}
	settings.AddFlags(cmd.PersistentFlags())

	cmd.AddCommand(server.NewServeCmd(cxt, serverOpts))
	cmd.AddCommand(newGetCmd(cxt))
	cmd.AddCommand(broker.NewCreateCmd(cxt))
	cmd.AddCommand(broker.NewRegisterCmd(cxt))
	cmd.AddCommand(broker.NewDeregisterCmd(cxt))

	return cmd, nil
}

func newGetCmd(cxt *command.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "List a resource, optionally filtered by name",
	}
	cmd.AddCommand(broker.NewGetCmd(cxt))

	return cmd
}

// Bind the viper configuration back to the cobra command flags.
// Allows us to interact with the cobra flags normally, and while still
// using viper's automatic environment variable binding. The flags are not
// bound into viper, so IsSet only reports values from the environment or
// an explicit Set and never a flag default.
func bindViperToCobra(vip *viper.Viper, cmd *cobra.Command) {
	vip.SetEnvPrefix(envPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && vip.IsSet(f.Name) {
			cmd.Flags().Set(f.Name, vip.GetString(f.Name))
		}
	})
}
