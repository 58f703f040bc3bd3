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

package peers

import (
	"context"

	"github.com/charmtech/data-integrator/apis/integration/v1alpha1"
	"github.com/charmtech/data-integrator/pkg/backend"
	"github.com/charmtech/data-integrator/pkg/resolver"
)

// A RelationState records what this integrator last observed about a
// relation of a given kind. It lets a relation-removed notification after a
// restart be classified as a real teardown rather than silently ignored.
type RelationState string

// Relation states.
const (
	// StateActive: the backend provisioned the request and published
	// credentials.
	StateActive RelationState = "active"

	// StateBroken: the relation object is being torn down but still exists.
	StateBroken RelationState = "broken"

	// StateRemoved: a relation that was active has disappeared.
	StateRemoved RelationState = "removed"
)

// Peer data bag key prefixes.
const (
	relationKeyPrefix = "relation."
	acceptedKeyPrefix = "accepted."
)

// Keys for the accepted role records.
const (
	keyAcceptedUserRoles  = acceptedKeyPrefix + "extra-user-roles"
	keyAcceptedGroupRoles = acceptedKeyPrefix + "extra-group-roles"
	keyAcceptedEntityType = acceptedKeyPrefix + "entity-type"
)

// RelationKey is the data bag key recording the state of the relation of the
// supplied kind. One record per kind; the status logic treats backends of a
// kind as one logical connection.
func RelationKey(kind v1alpha1.BackendKind) string {
	return relationKeyPrefix + string(kind)
}

// AcceptedNameKey is the data bag key recording the last accepted resource
// name for a family.
func AcceptedNameKey(f backend.Family) string {
	return acceptedKeyPrefix + string(f)
}

// GetRelationState reads the recorded state for a kind.
func GetRelationState(ctx context.Context, s Store, kind v1alpha1.BackendKind) (RelationState, bool, error) {
	v, ok, err := s.Get(ctx, RelationKey(kind))
	return RelationState(v), ok, err
}

// SetRelationState records the state for a kind.
func SetRelationState(ctx context.Context, s Store, kind v1alpha1.BackendKind, st RelationState) error {
	return s.Set(ctx, RelationKey(kind), string(st))
}

// RecordAccepted durably records the values that were propagated to an
// active backend, so that drift can be detected after a restart even if the
// relation is gone by then.
func RecordAccepted(ctx context.Context, s Store, spec v1alpha1.DataIntegratorSpec, k backend.Kind) error {
	req := k.BuildRequest(spec)
	if err := s.Set(ctx, AcceptedNameKey(k.Family), req.ResourceName); err != nil {
		return err
	}
	if err := s.Set(ctx, keyAcceptedUserRoles, spec.ExtraUserRoles); err != nil {
		return err
	}
	if err := s.Set(ctx, keyAcceptedGroupRoles, spec.ExtraGroupRoles); err != nil {
		return err
	}
	return s.Set(ctx, keyAcceptedEntityType, spec.EntityType)
}

// LoadPrior assembles the resolver's view of previously recorded state. Any
// relation record at all, whatever its state, means something was once
// active.
func LoadPrior(ctx context.Context, s Store) (resolver.Prior, error) {
	p := resolver.Prior{AcceptedNames: map[backend.Family]string{}}

	for _, k := range backend.Kinds() {
		_, ok, err := GetRelationState(ctx, s, k.Name)
		if err != nil {
			return resolver.Prior{}, err
		}
		if ok {
			p.EverActive = true
		}
	}

	for _, f := range backend.Families() {
		v, ok, err := s.Get(ctx, AcceptedNameKey(f))
		if err != nil {
			return resolver.Prior{}, err
		}
		if ok {
			p.AcceptedNames[f] = v
		}
	}

	for key, into := range map[string]**string{
		keyAcceptedUserRoles:  &p.AcceptedUserRoles,
		keyAcceptedGroupRoles: &p.AcceptedGroupRoles,
		keyAcceptedEntityType: &p.AcceptedEntityType,
	} {
		v, ok, err := s.Get(ctx, key)
		if err != nil {
			return resolver.Prior{}, err
		}
		if ok {
			value := v
			*into = &value
		}
	}

	return p, nil
}
