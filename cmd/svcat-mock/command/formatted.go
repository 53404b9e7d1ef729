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

package command

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/kubernetes-sigs/service-catalog-mock/cmd/svcat-mock/output"
)

// HasFormatFlags is a command whose result can be printed as a table, json or yaml.
type HasFormatFlags interface {
	ApplyFormatFlags(flags *pflag.FlagSet) error
}

// Formatted holds the --output value of the get and create commands.
type Formatted struct {
	OutputFormat string
}

// NewFormatted returns a Formatted that prints tables.
func NewFormatted() *Formatted {
	return &Formatted{
		OutputFormat: output.FormatTable,
	}
}

// AddOutputFlags registers --output on flags.
func (c *Formatted) AddOutputFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.OutputFormat, "output", "o", output.FormatTable,
		fmt.Sprintf("How to print brokers, one of: %s", strings.Join(output.Formats, ", ")),
	)
}

// ApplyFormatFlags lower-cases --output and rejects unknown formats.
func (c *Formatted) ApplyFormatFlags(flags *pflag.FlagSet) error {
	c.OutputFormat = strings.ToLower(c.OutputFormat)
	if !output.IsFormat(c.OutputFormat) {
		return fmt.Errorf("invalid --output format %q, allowed values are: %s", c.OutputFormat, strings.Join(output.Formats, ", "))
	}
	return nil
}
