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

// Package bundle aggregates the credentials every active backend has
// published for a DataIntegrator into a single query response. A bundle is
// recomputed on every query and never persisted.
package bundle

import (
	"context"
	"encoding/json"
	"sort"

	"dario.cat/mergo"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/crossplane/crossplane-runtime/pkg/logging"

	"github.com/charmtech/data-integrator/apis/integration/v1alpha1"
	"github.com/charmtech/data-integrator/pkg/backend"
)

// Error messages. The first two are the query contract: callers match on
// them to distinguish "configure me" from "relate me".
const (
	ErrNotSpecified = "the database name or topic name is not specified in the config"
	ErrNoRelation   = "the action can be run only after relation is created"

	errListRelations = "cannot list backend relations"
	errGetSecret     = "cannot get relation credentials secret"
	errMergeFields   = "cannot merge negotiated fields with credentials"
)

// A Bundle is the aggregation, at query time, of whatever fields every
// currently active backend has published. Backends that exist but are not
// active are omitted, not included empty.
type Bundle struct {
	OK       bool
	Backends map[v1alpha1.BackendKind]map[string]string
}

// MarshalJSON renders the bundle in its wire shape: the ok flag and one
// sub-object per active backend kind at the top level.
func (b Bundle) MarshalJSON() ([]byte, error) {
	out := map[string]interface{}{"ok": b.OK}
	for kind, fields := range b.Backends {
		out[string(kind)] = fields
	}
	return json.Marshal(out)
}

// A Manager answers credential queries for DataIntegrators.
type Manager struct {
	client client.Client
	log    logging.Logger
}

// A ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithLogger specifies how the Manager should log messages.
func WithLogger(l logging.Logger) ManagerOption {
	return func(m *Manager) {
		m.log = l
	}
}

// NewManager returns a Manager that aggregates credentials with the
// supplied client.
func NewManager(c client.Client, o ...ManagerOption) *Manager {
	m := &Manager{client: c, log: logging.NewNopLogger()}
	for _, mo := range o {
		mo(m)
	}
	return m
}

// Get aggregates the credentials of every active relation of the supplied
// integrator. It fails with ErrNotSpecified if no resource name is
// configured, and with ErrNoRelation if nothing is connected yet; in both
// cases the returned bundle carries OK: false rather than being discarded,
// so the caller can still render a structured response.
func (m *Manager) Get(ctx context.Context, di *v1alpha1.DataIntegrator) (Bundle, error) {
	if di.Spec.Empty() {
		return Bundle{}, errors.New(ErrNotSpecified)
	}

	rl := &v1alpha1.BackendRelationList{}
	if err := m.client.List(ctx, rl, client.InNamespace(di.GetNamespace())); err != nil {
		return Bundle{}, errors.Wrap(err, errListRelations)
	}

	// One sub-object per kind. With several relations of a kind the first by
	// name wins, matching the first-databag behavior of the query this
	// replaces.
	rels := []v1alpha1.BackendRelation{}
	for _, r := range rl.Items {
		if r.Spec.IntegratorRef.Name == di.GetName() && r.Active() && r.GetDeletionTimestamp() == nil {
			rels = append(rels, r)
		}
	}
	sort.Slice(rels, func(i, j int) bool { return rels[i].GetName() < rels[j].GetName() })

	if len(rels) == 0 {
		return Bundle{}, errors.New(ErrNoRelation)
	}

	b := Bundle{OK: true, Backends: map[v1alpha1.BackendKind]map[string]string{}}
	for _, r := range rels {
		if _, ok := b.Backends[r.Spec.Kind]; ok {
			continue
		}
		k, ok := backend.Lookup(r.Spec.Kind)
		if !ok {
			m.log.Debug("Skipping relation of unknown backend kind", "kind", r.Spec.Kind, "relation", r.GetName())
			continue
		}

		fields := k.Fields(r.Status.Negotiated)

		// Backends publish version strings in whatever shape they like.
		// Parsable ones are rendered canonically; the rest pass through
		// verbatim.
		if v := backend.Version(r.Status.Negotiated); v != nil {
			fields["version"] = v.String()
		}

		creds, err := m.credentials(ctx, r.GetNamespace(), r.Status.Negotiated.CredentialsSecretRef.Name)
		if err != nil {
			return Bundle{}, err
		}
		if err := mergo.Merge(&fields, creds, mergo.WithOverride); err != nil {
			return Bundle{}, errors.Wrap(err, errMergeFields)
		}

		b.Backends[r.Spec.Kind] = fields
	}

	return b, nil
}

func (m *Manager) credentials(ctx context.Context, namespace, name string) (map[string]string, error) {
	s := &corev1.Secret{}
	if err := m.client.Get(ctx, types.NamespacedName{Namespace: namespace, Name: name}, s); err != nil {
		return nil, errors.Wrap(err, errGetSecret)
	}
	out := make(map[string]string, len(s.Data))
	for k, v := range s.Data {
		out[k] = string(v)
	}
	return out, nil
}
