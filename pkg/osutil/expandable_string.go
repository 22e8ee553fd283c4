// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package osutil holds small operating system helpers shared across pado.
package osutil

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/drone/envsubst"
)

func NewExpandableString(template string) ExpandableString {
	return ExpandableString{
		template: template,
	}
}

// ExpandableString is a string that has ${foo} style references inside which can be evaluated.
type ExpandableString struct {
	template string
}

// Template returns the unevaluated string.
func (e ExpandableString) Template() string {
	return e.template
}

// Empty reports whether the template is the empty string.
func (e ExpandableString) Empty() bool {
	return e.template == ""
}

// Envsubst evaluates the template, substituting values as [envsubst.Eval] would.
func (e ExpandableString) Envsubst(mapping func(string) string) (string, error) {
	return envsubst.Eval(e.template, mapping)
}

// ExpandEnv evaluates the template against the process environment.
func (e ExpandableString) ExpandEnv() (string, error) {
	return e.Envsubst(os.Getenv)
}

// MustEnvsubst evaluates the template, substituting values as [envsubst.Eval] would and panics if there
// is an error (for example, the string is malformed).
func (e ExpandableString) MustEnvsubst(mapping func(string) string) string {
	if v, err := envsubst.Eval(e.template, mapping); err != nil {
		panic(fmt.Sprintf("MustEnvsubst: %v", err))
	} else {
		return v
	}
}

func (e ExpandableString) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.template)
}

func (e *ExpandableString) UnmarshalJSON(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	if str, ok := value.(string); ok {
		e.template = str
	}

	return nil
}
