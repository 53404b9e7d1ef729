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

// Base of all svcat-mock commands.
type Base struct {
	*Context
}

// NewBaseCommand returns a base command sharing the given context.
func NewBaseCommand(cxt *Context) *Base {
	return &Base{Context: cxt}
}

// GetContext retrieves the command's context.
func (cmd *Base) GetContext() *Context {
	return cmd.Context
}
