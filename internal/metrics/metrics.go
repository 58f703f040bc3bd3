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

// Package metrics exposes the integrator's counters on the controller
// runtime metrics registry, which the manager serves alongside the standard
// controller metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

const subsystem = "data_integrator"

var (
	// Reconciles counts reconciliations by resolved outcome.
	Reconciles = prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      "reconciles_total",
		Help:      "The number of reconciliations, by resolved status.",
	}, []string{"outcome"})

	// Propagations counts outbound databag writes by backend kind.
	Propagations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Subsystem: subsystem,
		Name:      "propagations_total",
		Help:      "The number of outbound relation data updates, by backend kind.",
	}, []string{"kind"})
)

func init() {
	metrics.Registry.MustRegister(Reconciles, Propagations)
}
