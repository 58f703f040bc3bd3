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

// Package integrator reconciles DataIntegrators: on every notification it
// recomputes the desired state against the relations that exist, propagates
// the request into each relation's outbound data or refuses to and reports
// why, and keeps the peer data bag's negotiation records current.
package integrator

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	"sigs.k8s.io/controller-runtime/pkg/manager"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
	"github.com/crossplane/crossplane-runtime/pkg/errors"
	"github.com/crossplane/crossplane-runtime/pkg/event"
	"github.com/crossplane/crossplane-runtime/pkg/logging"
	"github.com/crossplane/crossplane-runtime/pkg/resource"

	"github.com/charmtech/data-integrator/apis/integration/v1alpha1"
	"github.com/charmtech/data-integrator/internal/metrics"
	"github.com/charmtech/data-integrator/pkg/backend"
	"github.com/charmtech/data-integrator/pkg/peers"
	"github.com/charmtech/data-integrator/pkg/resolver"
)

// ControllerName is the recommended name for this controller.
const ControllerName = "dataintegrator"

const reconcileTimeout = 1 * time.Minute

// Error messages.
const (
	errGetIntegrator       = "cannot get data integrator"
	errListRelations       = "cannot list backend relations"
	errUpdateRelation      = "cannot update backend relation request data"
	errUpdateStatus        = "cannot update data integrator status"
	errPeerStore           = "cannot access peer data bag"
	errGetRequestedSecrets = "cannot get requested secrets bundle"
)

// Event reasons.
const (
	reasonPropagated        event.Reason = "PropagatedRequest"
	reasonBlocked           event.Reason = "BlockedChange"
	reasonRelationRemoved   event.Reason = "RelationRemoved"
	reasonSecretUnavailable event.Reason = "RequestedSecretsUnavailable"
)

// Metric outcome for the requested-secrets pre-check, which short-circuits
// before a status is resolved.
const outcomeBlockedSecret = "blocked-secret"

// A StoreFn returns the peer store for the supplied integrator.
type StoreFn func(c client.Client, di *v1alpha1.DataIntegrator) peers.Store

// DefaultStore returns the ConfigMap-backed peer store for an integrator.
// The bag is named after the integrator, one bag per logical instance.
func DefaultStore(c client.Client, di *v1alpha1.DataIntegrator) peers.Store {
	return peers.NewConfigMapStore(c, types.NamespacedName{
		Namespace: di.GetNamespace(),
		Name:      fmt.Sprintf("%s-peers", di.GetName()),
	})
}

// A Reconciler reconciles DataIntegrators.
type Reconciler struct {
	client   client.Client
	newStore StoreFn

	log    logging.Logger
	record event.Recorder
}

// A ReconcilerOption configures a Reconciler.
type ReconcilerOption func(*Reconciler)

// WithLogger specifies how the Reconciler should log messages.
func WithLogger(l logging.Logger) ReconcilerOption {
	return func(r *Reconciler) {
		r.log = l
	}
}

// WithRecorder specifies how the Reconciler should record events.
func WithRecorder(er event.Recorder) ReconcilerOption {
	return func(r *Reconciler) {
		r.record = er
	}
}

// WithStore specifies how the Reconciler obtains the peer store for an
// integrator.
func WithStore(fn StoreFn) ReconcilerOption {
	return func(r *Reconciler) {
		r.newStore = fn
	}
}

// NewReconciler returns a Reconciler of DataIntegrators.
func NewReconciler(m manager.Manager, o ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		client:   m.GetClient(),
		newStore: DefaultStore,
		log:      logging.NewNopLogger(),
		record:   event.NewNopRecorder(),
	}

	for _, ro := range o {
		ro(r)
	}

	return r
}

// Setup adds a controller that reconciles DataIntegrators, watching the
// relations and the peer data bag they own.
func Setup(mgr ctrl.Manager, l logging.Logger) error {
	r := NewReconciler(mgr,
		WithLogger(l.WithValues("controller", ControllerName)),
		WithRecorder(event.NewAPIRecorder(mgr.GetEventRecorderFor(ControllerName))))

	return ctrl.NewControllerManagedBy(mgr).
		Named(ControllerName).
		For(&v1alpha1.DataIntegrator{}).
		Owns(&corev1.ConfigMap{}).
		Watches(&v1alpha1.BackendRelation{}, handler.EnqueueRequestsFromMapFunc(EnqueueIntegrator)).
		Complete(r)
}

// EnqueueIntegrator maps a BackendRelation notification to its integrator.
func EnqueueIntegrator(_ context.Context, o client.Object) []reconcile.Request {
	rel, ok := o.(*v1alpha1.BackendRelation)
	if !ok || rel.Spec.IntegratorRef.Name == "" {
		return nil
	}
	return []reconcile.Request{{NamespacedName: types.NamespacedName{
		Namespace: rel.GetNamespace(),
		Name:      rel.Spec.IntegratorRef.Name,
	}}}
}

// Reconcile a DataIntegrator against the relations that exist for it.
func (r *Reconciler) Reconcile(ctx context.Context, req reconcile.Request) (reconcile.Result, error) {
	log := r.log.WithValues("request", req)
	log.Debug("Reconciling")

	ctx, cancel := context.WithTimeout(ctx, reconcileTimeout)
	defer cancel()

	di := &v1alpha1.DataIntegrator{}
	if err := r.client.Get(ctx, req.NamespacedName, di); err != nil {
		// The integrator is gone; its relations and peer bag go with it via
		// garbage collection. Nothing to reconcile.
		log.Debug("Cannot get data integrator", "error", err)
		return reconcile.Result{}, errors.Wrap(resource.IgnoreNotFound(err), errGetIntegrator)
	}

	// A requested-secrets reference that cannot be resolved blocks the
	// request before anything is propagated. It never crashes the loop.
	if ref := di.Spec.RequestedSecrets; ref != nil {
		s := &corev1.Secret{}
		if err := r.client.Get(ctx, types.NamespacedName{Namespace: di.GetNamespace(), Name: ref.Name}, s); err != nil {
			log.Debug("Cannot get requested secrets bundle", "error", err, "secret", ref.Name)
			r.record.Event(di, event.Warning(reasonSecretUnavailable, err))
			di.SetConditions(
				v1alpha1.SecretUnavailable().WithMessage(fmt.Sprintf("%s %q", errGetRequestedSecrets, ref.Name)),
				xpv1.ReconcileSuccess())
			metrics.Reconciles.WithLabelValues(outcomeBlockedSecret).Inc()
			return reconcile.Result{}, errors.Wrap(r.client.Status().Update(ctx, di), errUpdateStatus)
		}
	}

	rels, err := r.relationsFor(ctx, di)
	if err != nil {
		return reconcile.Result{}, errors.Wrap(err, errListRelations)
	}

	store := r.newStore(r.client, di)
	prior, err := peers.LoadPrior(ctx, store)
	if err != nil {
		return reconcile.Result{}, errors.Wrap(err, errPeerStore)
	}

	decision := resolver.Resolve(di.Spec, relationViews(rels), prior)
	log = log.WithValues("status", string(decision.Status))

	propagated, err := r.propagate(ctx, di, rels, decision)
	if err != nil {
		return reconcile.Result{}, err
	}
	if propagated > 0 {
		log.Debug("Propagated request data", "relations", propagated)
		r.record.Event(di, event.Normal(reasonPropagated, fmt.Sprintf("Propagated request data to %d relation(s)", propagated)))
	}

	if err := r.trackRelations(ctx, store, di, rels, decision); err != nil {
		return reconcile.Result{}, errors.Wrap(err, errPeerStore)
	}

	if decision.Status == resolver.StatusBlockedConflict {
		r.record.Event(di, event.Warning(reasonBlocked, errors.New(decision.Message)))
	}

	di.SetConditions(readyCondition(decision), xpv1.ReconcileSuccess())
	di.Status.ConnectedKinds = connectedKinds(rels)
	metrics.Reconciles.WithLabelValues(string(decision.Status)).Inc()

	return reconcile.Result{}, errors.Wrap(r.client.Status().Update(ctx, di), errUpdateStatus)
}

// relationsFor lists the relations declared against the supplied integrator.
func (r *Reconciler) relationsFor(ctx context.Context, di *v1alpha1.DataIntegrator) ([]v1alpha1.BackendRelation, error) {
	rl := &v1alpha1.BackendRelationList{}
	if err := r.client.List(ctx, rl, client.InNamespace(di.GetNamespace())); err != nil {
		return nil, err
	}
	rels := []v1alpha1.BackendRelation{}
	for _, rel := range rl.Items {
		if rel.Spec.IntegratorRef.Name == di.GetName() {
			rels = append(rels, rel)
		}
	}
	return rels, nil
}

// propagate writes the outbound databag into every relation whose kind the
// decision allows. Unchanged relations are left untouched so that repeated
// reconciles of the same inputs are no-ops.
func (r *Reconciler) propagate(ctx context.Context, di *v1alpha1.DataIntegrator, rels []v1alpha1.BackendRelation, d resolver.Decision) (int, error) {
	propagated := 0
	for i := range rels {
		rel := &rels[i]
		if !d.Propagate[rel.Spec.Kind] || rel.GetDeletionTimestamp() != nil {
			continue
		}
		k, ok := backend.Lookup(rel.Spec.Kind)
		if !ok {
			continue
		}
		want := k.BuildRequest(di.Spec)
		if rel.Spec.Request == want {
			continue
		}
		rel.Spec.Request = want
		if err := r.client.Update(ctx, rel); err != nil {
			return propagated, errors.Wrap(err, errUpdateRelation)
		}
		metrics.Propagations.WithLabelValues(string(rel.Spec.Kind)).Inc()
		propagated++
	}
	return propagated, nil
}

// trackRelations keeps the peer data bag's negotiation records current, so a
// relation that disappears after a restart is recognized as a teardown of
// something that was real rather than silently ignored.
func (r *Reconciler) trackRelations(ctx context.Context, store peers.Store, di *v1alpha1.DataIntegrator, rels []v1alpha1.BackendRelation, d resolver.Decision) error {
	byKind := map[v1alpha1.BackendKind][]v1alpha1.BackendRelation{}
	for _, rel := range rels {
		byKind[rel.Spec.Kind] = append(byKind[rel.Spec.Kind], rel)
	}

	for _, k := range backend.Kinds() {
		kindRels := byKind[k.Name]

		var present, active, deleting bool
		for _, rel := range kindRels {
			present = true
			if rel.GetDeletionTimestamp() != nil {
				deleting = true
				continue
			}
			if rel.Active() {
				active = true
			}
		}

		recorded, ok, err := peers.GetRelationState(ctx, store, k.Name)
		if err != nil {
			return err
		}

		switch {
		case active:
			if err := peers.SetRelationState(ctx, store, k.Name, peers.StateActive); err != nil {
				return err
			}
			if d.Propagate[k.Name] {
				if err := peers.RecordAccepted(ctx, store, di.Spec, k); err != nil {
					return err
				}
			}
		case present && deleting && ok && recorded == peers.StateActive:
			if err := peers.SetRelationState(ctx, store, k.Name, peers.StateBroken); err != nil {
				return err
			}
		case !present && ok && recorded != peers.StateRemoved:
			if err := peers.SetRelationState(ctx, store, k.Name, peers.StateRemoved); err != nil {
				return err
			}
			r.record.Event(di, event.Normal(reasonRelationRemoved, fmt.Sprintf("Relation with %s was removed after being active", k.Name)))
		}
	}

	return nil
}

func relationViews(rels []v1alpha1.BackendRelation) []resolver.Relation {
	views := make([]resolver.Relation, 0, len(rels))
	for _, rel := range rels {
		v := resolver.Relation{
			Name:     rel.GetName(),
			Kind:     rel.Spec.Kind,
			Active:   rel.Active(),
			Deleting: rel.GetDeletionTimestamp() != nil,
		}
		if rel.Status.Negotiated != nil {
			v.Negotiated = rel.Status.Negotiated.ResourceName
		}
		views = append(views, v)
	}
	return views
}

func readyCondition(d resolver.Decision) xpv1.Condition {
	var c xpv1.Condition
	switch d.Status {
	case resolver.StatusWaiting:
		c = v1alpha1.Waiting()
	case resolver.StatusBlockedRelate:
		c = v1alpha1.MissingRelation()
	case resolver.StatusBlockedConflict:
		c = v1alpha1.Conflicted()
	case resolver.StatusBlockedConfigCleared:
		c = v1alpha1.ConfigCleared()
	case resolver.StatusActive:
		c = v1alpha1.Connected()
	}
	return c.WithMessage(d.Message)
}

func connectedKinds(rels []v1alpha1.BackendRelation) []v1alpha1.BackendKind {
	byKind := map[v1alpha1.BackendKind]bool{}
	for _, rel := range rels {
		if rel.Active() && rel.GetDeletionTimestamp() == nil {
			byKind[rel.Spec.Kind] = true
		}
	}
	kinds := []v1alpha1.BackendKind{}
	for _, k := range backend.Kinds() {
		if byKind[k.Name] {
			kinds = append(kinds, k.Name)
		}
	}
	if len(kinds) == 0 {
		return nil
	}
	return kinds
}
