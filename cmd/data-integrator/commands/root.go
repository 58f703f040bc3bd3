/*
Copyright 2025 The Data Integrator Authors.

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

// Package commands wires the data-integrator CLI.
package commands

import (
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"

	"github.com/charmtech/data-integrator/apis/integration/v1alpha1"
)

// New returns the data-integrator root command.
func New(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "data-integrator",
		Short: "Request named resources from backing services and republish the granted credentials",
		Long: `data-integrator mediates between a desired resource request (a database,
a message topic, a search index, or a key prefix) and the backing services
that can provision it, and exposes the granted credentials via a single
query.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCommand())
	root.AddCommand(newGetCredentialsCommand())

	return root
}

// newScheme returns a scheme holding the client-go types and ours.
func newScheme() (*runtime.Scheme, error) {
	s := runtime.NewScheme()
	if err := clientgoscheme.AddToScheme(s); err != nil {
		return nil, err
	}
	if err := v1alpha1.AddToScheme(s); err != nil {
		return nil, err
	}
	return s, nil
}
