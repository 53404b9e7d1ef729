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
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ghodss/yaml"
)

// Output formats accepted by the --output flag.
const (
	FormatJSON  = "json"
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Formats lists every accepted --output value, table first.
var Formats = []string{FormatTable, FormatJSON, FormatYAML}

// IsFormat reports whether format names one of Formats.
func IsFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// writeEncoded serializes obj as JSON or YAML. It returns false for any
// other format so the caller can render its own table.
func writeEncoded(w io.Writer, format string, obj interface{}) bool {
	var (
		b   []byte
		err error
	)
	switch format {
	case FormatJSON:
		b, err = json.MarshalIndent(obj, "", strings.Repeat(" ", 3))
		b = append(b, '\n')
	case FormatYAML:
		b, err = yaml.Marshal(obj)
	default:
		return false
	}
	if err != nil {
		fmt.Fprintf(w, "err marshaling %s: %v\n", format, err)
		return true
	}
	w.Write(b)
	return true
}
