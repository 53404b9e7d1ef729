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

package logging

import (
	"fmt"

	"k8s.io/klog"
)

// Kind is used for the enum of the Type of object we are building context for.
type Kind int

const (
	// ClusterServiceBroker is the only kind served by the mock API server.
	ClusterServiceBroker Kind = 1
	// ClusterServiceBrokerList is the kind returned by list requests.
	ClusterServiceBrokerList Kind = 2
)

func (k Kind) String() string {
	switch k {
	case ClusterServiceBroker:
		return "ClusterServiceBroker"
	case ClusterServiceBrokerList:
		return "ClusterServiceBrokerList"
	default:
		return ""
	}
}

// LogContextBuilder allows building up log lines with context that is important
// for debugging and tracing. This class helps create log line formatting
// consistently. Logging should always be in the form:
// <verb> <Kind> "<Name>": <message>
type LogContextBuilder struct {
	Verb string
	Kind Kind
	Name string
}

// NewLogContextBuilder returns a new LogContextBuilder that can be used to format messages in the
// form `<verb> <Kind> "<Name>": <message>`.
// verb, kind and name are all optional.
func NewLogContextBuilder(verb string, kind Kind, name string) *LogContextBuilder {
	return &LogContextBuilder{
		Verb: verb,
		Kind: kind,
		Name: name,
	}
}

// SetName sets the name to use in the source context for messages.
func (l *LogContextBuilder) SetName(n string) *LogContextBuilder {
	l.Name = n
	return l
}

// Message returns a string with message prepended with the current source context.
func (l *LogContextBuilder) Message(msg string) string {
	if l.Verb != "" || l.Kind > 0 || l.Name != "" {
		return fmt.Sprintf(`%s: %s`, l, msg)
	}
	return msg
}

// Debugf logs a formatted message with the current source context at
// verbosity 4, where request and registry tracing lives.
func (l *LogContextBuilder) Debugf(format string, args ...interface{}) {
	if klog.V(4) {
		klog.InfoDepth(1, l.Message(fmt.Sprintf(format, args...)))
	}
}

// Warningf logs a formatted warning with the current source context.
func (l *LogContextBuilder) Warningf(format string, args ...interface{}) {
	klog.WarningDepth(1, l.Message(fmt.Sprintf(format, args...)))
}

func (l LogContextBuilder) String() string {
	s := ""
	space := ""
	if l.Verb != "" {
		s += l.Verb
		space = " "
	}
	if l.Kind > 0 {
		s += space + l.Kind.String()
		space = " "
	}
	if l.Name != "" {
		s += fmt.Sprintf(`%s"%s"`, space, l.Name)
	}
	return s
}
