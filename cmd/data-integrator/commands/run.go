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
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/crossplane/crossplane-runtime/pkg/logging"

	"github.com/charmtech/data-integrator/internal/controller/integrator"
)

// Error messages.
const (
	errGetConfig     = "cannot get API server rest config"
	errCreateManager = "cannot create controller manager"
	errAddHealth     = "cannot add health check"
	errSetup         = "cannot setup integrator controller"
	errStartManager  = "cannot start controller manager"
)

func newRunCommand() *cobra.Command {
	var (
		debug          bool
		metricsAddr    string
		probeAddr      string
		leaderElection bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the integrator controller manager",
		RunE: func(cmd *cobra.Command, _ []string) error {
			zl := zap.New(zap.UseDevMode(debug))
			ctrl.SetLogger(zl)
			klog.SetLogger(zl.WithName("klog"))
			log := logging.NewLogrLogger(zl.WithName("data-integrator"))

			cfg, err := ctrl.GetConfig()
			if err != nil {
				return errors.Wrap(err, errGetConfig)
			}

			scheme, err := newScheme()
			if err != nil {
				return err
			}

			mgr, err := ctrl.NewManager(cfg, ctrl.Options{
				Scheme:                 scheme,
				Metrics:                metricsserver.Options{BindAddress: metricsAddr},
				HealthProbeBindAddress: probeAddr,
				// Shared durable state is leader-writable only. Replicas
				// that are not the leader serve nothing but probes.
				LeaderElection:   leaderElection,
				LeaderElectionID: "election.integration.charmtech.io",
			})
			if err != nil {
				return errors.Wrap(err, errCreateManager)
			}

			if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
				return errors.Wrap(err, errAddHealth)
			}
			if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
				return errors.Wrap(err, errAddHealth)
			}

			if err := integrator.Setup(mgr, log); err != nil {
				return errors.Wrap(err, errSetup)
			}

			log.Info("Starting", "leader-election", leaderElection)
			return errors.Wrap(mgr.Start(ctrl.SetupSignalHandler()), errStartManager)
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.Flags().StringVar(&metricsAddr, "metrics-bind-address", ":8080", "Address the metrics endpoint binds to")
	cmd.Flags().StringVar(&probeAddr, "health-probe-bind-address", ":8081", "Address the probe endpoint binds to")
	cmd.Flags().BoolVar(&leaderElection, "leader-election", true, "Use leader election for the controller manager")

	return cmd
}
