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

package broker

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kubernetes-sigs/service-catalog-mock/cmd/svcat-mock/command"
	"github.com/kubernetes-sigs/service-catalog-mock/cmd/svcat-mock/output"
)

// DeregisterCmd contains the info needed to delete a broker
type DeregisterCmd struct {
	*command.Base

	BrokerName string
	// IgnoreNotFound makes deregistering a missing broker succeed.
	IgnoreNotFound bool
}

// NewDeregisterCmd builds a "svcat-mock deregister" command
func NewDeregisterCmd(cxt *command.Context) *cobra.Command {
	deregisterCmd := &DeregisterCmd{
		Base: command.NewBaseCommand(cxt),
	}
	cmd := &cobra.Command{
		Use:   "deregister NAME",
		Short: "Deregisters an existing broker",
		Example: command.NormalizeExamples(`
		svcat-mock deregister mysqlbroker
		svcat-mock deregister mysqlbroker --ignore-not-found
		`),
		PreRunE: command.PreRunE(deregisterCmd),
		RunE:    command.RunE(deregisterCmd),
	}
	cmd.Flags().BoolVar(&deregisterCmd.IgnoreNotFound, "ignore-not-found", false,
		"Treat a broker that does not exist as successfully removed")
	return cmd
}

// Validate checks that the required arguments have been provided
func (c *DeregisterCmd) Validate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("a broker name is required")
	}
	c.BrokerName = args[0]

	return nil
}

// Run runs the command
func (c *DeregisterCmd) Run() error {
	return c.Deregister()
}

// Deregister calls out to the pkg lib to delete the broker and display the output
func (c *DeregisterCmd) Deregister() error {
	deleted, err := c.App.DeregisterBroker(c.BrokerName)
	if err != nil {
		return err
	}
	if !deleted && !c.IgnoreNotFound {
		return fmt.Errorf("broker %q not found", c.BrokerName)
	}

	output.WriteDeletedBrokerName(c.Output, c.BrokerName)
	return nil
}
