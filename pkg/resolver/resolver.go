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

// Package resolver computes the status of a desired resource request against
// the relations that exist for it. It is a pure decision table: no I/O, no
// clients. Callers supply the request, a snapshot of every relation, and the
// prior state recorded in the peer store, and get back a status plus a
// per-kind verdict on whether outbound data may be propagated.
//
// The source of truth for conflict detection is the value the backend
// committed to on its live relation, never a locally cached copy. The peer
// store's accepted values only classify "was anything ever active" after a
// restart.
package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmtech/data-integrator/apis/integration/v1alpha1"
	"github.com/charmtech/data-integrator/pkg/backend"
)

// A Status summarizes one reconciliation of config against relation state.
type Status string

// The possible outcomes, from softest to hardest.
const (
	// StatusWaiting: nothing requested, nothing ever connected. Waiting for
	// the user to configure a resource name.
	StatusWaiting Status = "waiting"

	// StatusBlockedRelate: a resource name is requested but no relation
	// exists that could provision it.
	StatusBlockedRelate Status = "blocked-relate"

	// StatusBlockedConflict: a requested value differs from one an active
	// backend already committed to.
	StatusBlockedConflict Status = "blocked-conflict"

	// StatusBlockedConfigCleared: every resource name was removed while a
	// relation was, or had been, active.
	StatusBlockedConfigCleared Status = "blocked-config-cleared"

	// StatusActive: the request is propagated and consistent.
	StatusActive Status = "active"
)

// Status messages. The conflict prefix is part of the operator-facing
// contract; administrators grep for it.
const (
	msgWaiting           = "a database, topic, index or prefix name is not specified"
	msgConfigCleared     = "resource names were removed while a relation is active; please remove the relation first"
	msgConfigClearedGone = "resource names were removed after a relation was active; please set them again"
	msgConflict          = "please remove relation and add it again"
)

// A Relation is the resolver's view of one BackendRelation.
type Relation struct {
	// Name of the relation object, used only in messages.
	Name string

	// Kind of backend the relation is declared against.
	Kind v1alpha1.BackendKind

	// Active is true once the backend has provisioned and published
	// credentials.
	Active bool

	// Negotiated is the resource name the backend committed to, empty until
	// it provisions.
	Negotiated string

	// Deleting is true while the relation is being torn down.
	Deleting bool
}

// Prior is the state recorded in the peer store by earlier reconciliations.
// It survives process restarts; in-memory state does not.
type Prior struct {
	// EverActive is true if any relation of any kind was ever observed
	// active.
	EverActive bool

	// AcceptedNames holds the last resource name propagated and accepted,
	// per family.
	AcceptedNames map[backend.Family]string

	// Accepted role strings. Nil means never recorded, which is distinct
	// from recorded-as-empty.
	AcceptedUserRoles  *string
	AcceptedGroupRoles *string
	AcceptedEntityType *string
}

// A Conflict describes one value that cannot change while its backend is
// active.
type Conflict struct {
	Kind      v1alpha1.BackendKind
	Field     string
	Requested string
	Committed string
}

// A Decision is the resolver's output. Propagate carries one verdict per
// backend kind whose family has a requested name; kinds absent from the map
// must not receive outbound data.
type Decision struct {
	Status    Status
	Message   string
	Propagate map[v1alpha1.BackendKind]bool
	Conflicts []Conflict
}

// Resolve computes the Decision for the supplied request. It is pure:
// resolving the same inputs twice yields the same Decision.
func Resolve(spec v1alpha1.DataIntegratorSpec, rels []Relation, prior Prior) Decision {
	d := Decision{Propagate: map[v1alpha1.BackendKind]bool{}}

	anyActive := false
	live := 0
	for _, r := range rels {
		if r.Deleting {
			continue
		}
		live++
		if r.Active {
			anyActive = true
		}
	}

	if spec.Empty() {
		switch {
		case anyActive:
			d.Status = StatusBlockedConfigCleared
			d.Message = msgConfigCleared
			return d
		case prior.EverActive:
			d.Status = StatusBlockedConfigCleared
			d.Message = msgConfigClearedGone
			return d
		}
		d.Status = StatusWaiting
		d.Message = msgWaiting
		return d
	}

	byKind := map[v1alpha1.BackendKind][]Relation{}
	for _, r := range rels {
		byKind[r.Kind] = append(byKind[r.Kind], r)
	}

	for _, k := range backend.Kinds() {
		requested := k.ResourceName(spec)
		kindRels := byKind[k.Name]
		if requested == "" {
			// A family cleared while one of its backends is still active is
			// the same conflict as a rename: the backend holds a value the
			// request no longer carries.
			for _, r := range kindRels {
				if r.Active && !r.Deleting && r.Negotiated != "" {
					d.Conflicts = append(d.Conflicts, Conflict{Kind: k.Name, Field: string(k.Family), Requested: "", Committed: r.Negotiated})
				}
			}
			continue
		}

		propagate := true
		for _, r := range kindRels {
			if r.Active && !r.Deleting && r.Negotiated != "" && r.Negotiated != requested {
				d.Conflicts = append(d.Conflicts, Conflict{Kind: k.Name, Field: string(k.Family), Requested: requested, Committed: r.Negotiated})
				propagate = false
			}
		}
		d.Propagate[k.Name] = propagate
	}

	// Role and entity changes cannot be renegotiated on a live relation
	// either. They are global, so a change vetoes propagation everywhere.
	if anyActive {
		for _, c := range []struct {
			field     string
			requested string
			accepted  *string
		}{
			{"extra-user-roles", spec.ExtraUserRoles, prior.AcceptedUserRoles},
			{"extra-group-roles", spec.ExtraGroupRoles, prior.AcceptedGroupRoles},
			{"entity-type", spec.EntityType, prior.AcceptedEntityType},
		} {
			if c.accepted != nil && *c.accepted != c.requested {
				d.Conflicts = append(d.Conflicts, Conflict{Field: c.field, Requested: c.requested, Committed: *c.accepted})
				for k := range d.Propagate {
					d.Propagate[k] = false
				}
			}
		}
	}

	if len(d.Conflicts) > 0 {
		d.Status = StatusBlockedConflict
		d.Message = conflictMessage(d.Conflicts)
		return d
	}

	// Relations on their way out do not count as connected; a tree holding
	// only deleting relations still asks for one.
	if live == 0 {
		d.Status = StatusBlockedRelate
		d.Message = fmt.Sprintf("%s; please add a relation with a backend", requestedSummary(spec))
		return d
	}

	d.Status = StatusActive
	d.Message = requestedSummary(spec)
	return d
}

// requestedSummary renders the configured names as "database: foo, topic:
// bar" in family order.
func requestedSummary(spec v1alpha1.DataIntegratorSpec) string {
	parts := []string{}
	for _, k := range backend.Kinds() {
		name := k.ResourceName(spec)
		if name == "" {
			continue
		}
		p := fmt.Sprintf("%s: %s", k.Family, name)
		if len(parts) == 0 || parts[len(parts)-1] != p {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

func conflictMessage(conflicts []Conflict) string {
	details := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		switch {
		case c.Kind != "" && c.Requested == "":
			details = append(details, fmt.Sprintf("%s still holds %s %q", c.Kind, c.Field, c.Committed))
		case c.Kind != "":
			details = append(details, fmt.Sprintf("%s holds %s %q, cannot change it to %q", c.Kind, c.Field, c.Committed, c.Requested))
		default:
			details = append(details, fmt.Sprintf("%s changed from %q to %q while a relation is active", c.Field, c.Committed, c.Requested))
		}
	}
	sort.Strings(details)
	return fmt.Sprintf("%s: %s", msgConflict, strings.Join(details, "; "))
}
