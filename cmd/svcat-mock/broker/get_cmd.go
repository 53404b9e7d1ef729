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

// GetCmd contains the information needed to get a broker or list of brokers
type GetCmd struct {
	*command.Base
	*command.Formatted

	Name string
}

// NewGetCmd builds a "svcat-mock get brokers" command
func NewGetCmd(cxt *command.Context) *cobra.Command {
	getCmd := &GetCmd{
		Base:      command.NewBaseCommand(cxt),
		Formatted: command.NewFormatted(),
	}
	cmd := &cobra.Command{
		Use:     "brokers [NAME]",
		Aliases: []string{"broker", "brk"},
		Short:   "List brokers, optionally filtered by name",
		Example: command.NormalizeExamples(`
  svcat-mock get brokers
  svcat-mock get brokers -o yaml
  svcat-mock get broker ups-broker
`),
		PreRunE: command.PreRunE(getCmd),
		RunE:    command.RunE(getCmd),
	}
	getCmd.AddOutputFlags(cmd.Flags())
	return cmd
}

// Validate checks that the required arguments have been provided
func (c *GetCmd) Validate(args []string) error {
	if len(args) > 0 {
		c.Name = args[0]
	}

	return nil
}

// Run determines if we're getting all brokers or a single broker,
// then queries the backend to get that information
func (c *GetCmd) Run() error {
	if c.Name == "" {
		return c.getAll()
	}

	return c.get()
}

func (c *GetCmd) getAll() error {
	list, err := c.App.RetrieveBrokerList()
	if err != nil {
		return err
	}

	output.WriteBrokerList(c.Output, c.OutputFormat, list)
	return nil
}

func (c *GetCmd) get() error {
	broker, err := c.App.RetrieveBroker(c.Name)
	if err != nil {
		return err
	}
	if broker == nil {
		return fmt.Errorf("broker %q not found", c.Name)
	}
	output.WriteBroker(c.Output, c.OutputFormat, *broker)
	return nil
}
