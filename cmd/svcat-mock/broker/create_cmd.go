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

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kubernetes-sigs/service-catalog-mock/cmd/svcat-mock/command"
	"github.com/kubernetes-sigs/service-catalog-mock/cmd/svcat-mock/output"
)

// CreateCmd contains the information needed to create brokers from
// descriptor files
type CreateCmd struct {
	*command.Base
	*command.Formatted

	Filenames []string
}

// NewCreateCmd builds a "svcat-mock create" command
func NewCreateCmd(cxt *command.Context) *cobra.Command {
	createCmd := &CreateCmd{
		Base:      command.NewBaseCommand(cxt),
		Formatted: command.NewFormatted(),
	}
	cmd := &cobra.Command{
		Use:   "create -f FILENAME",
		Short: "Creates brokers from YAML or JSON descriptor files",
		Example: command.NormalizeExamples(`
		svcat-mock create -f ups-broker.yaml
		svcat-mock create -f broker1.yaml -f broker2.yaml -o json
		`),
		PreRunE: command.PreRunE(createCmd),
		RunE:    command.RunE(createCmd),
	}
	cmd.Flags().StringArrayVarP(&createCmd.Filenames, "filename", "f", nil,
		"Broker descriptor file to create. May be repeated")
	createCmd.AddOutputFlags(cmd.Flags())
	return cmd
}

// Validate checks that the required arguments have been provided
func (c *CreateCmd) Validate(args []string) error {
	if len(c.Filenames) == 0 {
		return fmt.Errorf("at least one --filename is required")
	}
	if len(args) > 0 {
		return fmt.Errorf("unexpected arguments %v, descriptors are passed with --filename", args)
	}
	return nil
}

// Run loads every descriptor and creates the brokers they describe. A
// failing file does not stop the others, all failures are reported
// together.
func (c *CreateCmd) Run() error {
	var result *multierror.Error
	for _, filename := range c.Filenames {
		broker, err := c.App.LoadBrokerFile(filename)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		created, err := c.App.CreateBroker(broker)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "while creating broker from %s", filename))
			continue
		}
		output.WriteBroker(c.Output, c.OutputFormat, *created)
	}
	return result.ErrorOrNil()
}
