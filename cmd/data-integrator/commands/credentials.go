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

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/yaml"

	"github.com/crossplane/crossplane-runtime/pkg/errors"

	"github.com/charmtech/data-integrator/apis/integration/v1alpha1"
	"github.com/charmtech/data-integrator/pkg/bundle"
)

// Error messages.
const (
	errCreateClient  = "cannot create API server client"
	errGetDI         = "cannot get data integrator"
	errRenderBundle  = "cannot render credential bundle"
	errWriteBundle   = "cannot write credential bundle"
	errUnknownOutput = "unknown output format"
	errMissingName   = "a data integrator name is required"
	errTooManyNames  = "only one data integrator name may be supplied"
)

func newGetCredentialsCommand() *cobra.Command {
	var (
		namespace  string
		output     string
		outputFile string
	)

	fs := afero.Afero{Fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   "get-credentials NAME",
		Short: "Query the credentials every connected backend has published",
		Long: `get-credentials aggregates whatever credential fields each connected
backend has published for the named data integrator and returns them as a
single response. The query fails with an {"ok": false} result if no resource
name is configured yet, or if no backend has provisioned anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) < 1:
				return errors.New(errMissingName)
			case len(args) > 1:
				return errors.New(errTooManyNames)
			}

			cfg, err := ctrl.GetConfig()
			if err != nil {
				return errors.Wrap(err, errGetConfig)
			}
			scheme, err := newScheme()
			if err != nil {
				return err
			}
			c, err := client.New(cfg, client.Options{Scheme: scheme})
			if err != nil {
				return errors.Wrap(err, errCreateClient)
			}

			di := &v1alpha1.DataIntegrator{}
			if err := c.Get(cmd.Context(), types.NamespacedName{Namespace: namespace, Name: args[0]}, di); err != nil {
				return errors.Wrap(err, errGetDI)
			}

			b, err := bundle.NewManager(c).Get(cmd.Context(), di)
			if err != nil {
				// Structured failure: render the {"ok": false} result, then
				// fail with the reason.
				if rerr := render(cmd, fs, bundle.Bundle{}, output, outputFile); rerr != nil {
					return rerr
				}
				return err
			}

			return render(cmd, fs, b, output, outputFile)
		},
	}

	cmd.Flags().StringVarP(&namespace, "namespace", "n", "default", "Namespace of the data integrator")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "Output format, one of json or yaml")
	cmd.Flags().StringVar(&outputFile, "output-file", "", "Write the bundle to a file instead of stdout")

	return cmd
}

func render(cmd *cobra.Command, fs afero.Afero, b bundle.Bundle, output, outputFile string) error {
	var (
		data []byte
		err  error
	)
	switch output {
	case "json":
		data, err = json.MarshalIndent(b, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(b)
	default:
		return errors.Errorf("%s %q", errUnknownOutput, output)
	}
	if err != nil {
		return errors.Wrap(err, errRenderBundle)
	}

	if outputFile != "" {
		return errors.Wrap(fs.WriteFile(outputFile, append(data, '\n'), 0o600), errWriteBundle)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
