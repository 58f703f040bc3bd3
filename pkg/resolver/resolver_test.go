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

package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"k8s.io/utils/ptr"

	"github.com/charmtech/data-integrator/apis/integration/v1alpha1"
	"github.com/charmtech/data-integrator/pkg/backend"
)

func propagateDatabases(v bool) map[v1alpha1.BackendKind]bool {
	return map[v1alpha1.BackendKind]bool{
		v1alpha1.BackendMySQL:      v,
		v1alpha1.BackendPostgreSQL: v,
		v1alpha1.BackendMongoDB:    v,
		v1alpha1.BackendMongos:     v,
		v1alpha1.BackendCassandra:  v,
		v1alpha1.BackendKyuubi:     v,
	}
}

func TestResolve(t *testing.T) {
	type args struct {
		spec  v1alpha1.DataIntegratorSpec
		rels  []Relation
		prior Prior
	}

	cases := map[string]struct {
		reason string
		args   args
		want   Decision
	}{
		"EmptyNeverConnected": {
			reason: "An empty request with no history is a soft waiting status that propagates nothing.",
			args:   args{},
			want: Decision{
				Status:    StatusWaiting,
				Message:   "a database, topic, index or prefix name is not specified",
				Propagate: map[v1alpha1.BackendKind]bool{},
			},
		},
		"EmptyAfterRecordedActivity": {
			reason: "Clearing every name after a relation was once active is still the hard blocked status, with wording that fits the relation already being gone.",
			args: args{
				prior: Prior{EverActive: true},
			},
			want: Decision{
				Status:    StatusBlockedConfigCleared,
				Message:   "resource names were removed after a relation was active; please set them again",
				Propagate: map[v1alpha1.BackendKind]bool{},
			},
		},
		"EmptyWithActiveRelation": {
			reason: "Clearing every name while a relation is live is the hard blocked status, not the soft waiting one.",
			args: args{
				rels: []Relation{{Name: "mysql-a", Kind: v1alpha1.BackendMySQL, Active: true, Negotiated: "foo"}},
			},
			want: Decision{
				Status:    StatusBlockedConfigCleared,
				Message:   "resource names were removed while a relation is active; please remove the relation first",
				Propagate: map[v1alpha1.BackendKind]bool{},
			},
		},
		"RequestedButUnrelated": {
			reason: "A configured name with no relation at all asks the operator to add one.",
			args: args{
				spec: v1alpha1.DataIntegratorSpec{DatabaseName: "foo"},
			},
			want: Decision{
				Status:    StatusBlockedRelate,
				Message:   "database: foo; please add a relation with a backend",
				Propagate: propagateDatabases(true),
			},
		},
		"RequestedRelationNotYetProvisioned": {
			reason: "A relation that has not negotiated anything yet cannot conflict; the request propagates.",
			args: args{
				spec: v1alpha1.DataIntegratorSpec{DatabaseName: "foo"},
				rels: []Relation{{Name: "mysql-a", Kind: v1alpha1.BackendMySQL}},
			},
			want: Decision{
				Status:    StatusActive,
				Message:   "database: foo",
				Propagate: propagateDatabases(true),
			},
		},
		"ActiveAndConsistent": {
			reason: "A request matching what the backend committed to is active and keeps propagating.",
			args: args{
				spec: v1alpha1.DataIntegratorSpec{DatabaseName: "foo"},
				rels: []Relation{{Name: "mysql-a", Kind: v1alpha1.BackendMySQL, Active: true, Negotiated: "foo"}},
			},
			want: Decision{
				Status:    StatusActive,
				Message:   "database: foo",
				Propagate: propagateDatabases(true),
			},
		},
		"RenamedWhileActive": {
			reason: "Changing a name a live backend committed to is blocked, and only that kind's propagation is vetoed.",
			args: args{
				spec: v1alpha1.DataIntegratorSpec{DatabaseName: "foo1"},
				rels: []Relation{{Name: "mysql-a", Kind: v1alpha1.BackendMySQL, Active: true, Negotiated: "foo"}},
			},
			want: Decision{
				Status:  StatusBlockedConflict,
				Message: `please remove relation and add it again: mysql holds database "foo", cannot change it to "foo1"`,
				Propagate: func() map[v1alpha1.BackendKind]bool {
					p := propagateDatabases(true)
					p[v1alpha1.BackendMySQL] = false
					return p
				}(),
				Conflicts: []Conflict{{Kind: v1alpha1.BackendMySQL, Field: "database", Requested: "foo1", Committed: "foo"}},
			},
		},
		"RenamedWhileActiveOtherFamilyUnaffected": {
			reason: "A conflict on one kind must not stop propagation to other kinds.",
			args: args{
				spec: v1alpha1.DataIntegratorSpec{DatabaseName: "foo1", TopicName: "events"},
				rels: []Relation{
					{Name: "mysql-a", Kind: v1alpha1.BackendMySQL, Active: true, Negotiated: "foo"},
					{Name: "kafka-a", Kind: v1alpha1.BackendKafka, Active: true, Negotiated: "events"},
				},
			},
			want: Decision{
				Status:  StatusBlockedConflict,
				Message: `please remove relation and add it again: mysql holds database "foo", cannot change it to "foo1"`,
				Propagate: func() map[v1alpha1.BackendKind]bool {
					p := propagateDatabases(true)
					p[v1alpha1.BackendMySQL] = false
					p[v1alpha1.BackendKafka] = true
					return p
				}(),
				Conflicts: []Conflict{{Kind: v1alpha1.BackendMySQL, Field: "database", Requested: "foo1", Committed: "foo"}},
			},
		},
		"FamilyClearedWhileActive": {
			reason: "Removing one family's name while its backend is active is the same conflict as renaming it.",
			args: args{
				spec: v1alpha1.DataIntegratorSpec{TopicName: "events"},
				rels: []Relation{
					{Name: "mysql-a", Kind: v1alpha1.BackendMySQL, Active: true, Negotiated: "foo"},
					{Name: "kafka-a", Kind: v1alpha1.BackendKafka, Active: true, Negotiated: "events"},
				},
			},
			want: Decision{
				Status:  StatusBlockedConflict,
				Message: `please remove relation and add it again: mysql still holds database "foo"`,
				Propagate: map[v1alpha1.BackendKind]bool{
					v1alpha1.BackendKafka: true,
				},
				Conflicts: []Conflict{{Kind: v1alpha1.BackendMySQL, Field: "database", Requested: "", Committed: "foo"}},
			},
		},
		"RolesChangedWhileActive": {
			reason: "A role change while any backend is active vetoes propagation everywhere.",
			args: args{
				spec: v1alpha1.DataIntegratorSpec{DatabaseName: "foo", ExtraUserRoles: "admin"},
				rels: []Relation{{Name: "mysql-a", Kind: v1alpha1.BackendMySQL, Active: true, Negotiated: "foo"}},
				prior: Prior{
					EverActive:        true,
					AcceptedUserRoles: ptr.To("readonly"),
				},
			},
			want: Decision{
				Status:    StatusBlockedConflict,
				Message:   `please remove relation and add it again: extra-user-roles changed from "readonly" to "admin" while a relation is active`,
				Propagate: propagateDatabases(false),
				Conflicts: []Conflict{{Field: "extra-user-roles", Requested: "admin", Committed: "readonly"}},
			},
		},
		"RolesNeverRecorded": {
			reason: "Roles that were never recorded as accepted cannot conflict.",
			args: args{
				spec: v1alpha1.DataIntegratorSpec{DatabaseName: "foo", ExtraUserRoles: "admin"},
				rels: []Relation{{Name: "mysql-a", Kind: v1alpha1.BackendMySQL, Active: true, Negotiated: "foo"}},
			},
			want: Decision{
				Status:    StatusActive,
				Message:   "database: foo",
				Propagate: propagateDatabases(true),
			},
		},
		"DeletingRelationCannotConflict": {
			reason: "A relation on its way out no longer pins the value it negotiated.",
			args: args{
				spec: v1alpha1.DataIntegratorSpec{DatabaseName: "foo1"},
				rels: []Relation{
					{Name: "mysql-a", Kind: v1alpha1.BackendMySQL, Active: true, Negotiated: "foo", Deleting: true},
					{Name: "mysql-b", Kind: v1alpha1.BackendMySQL},
				},
			},
			want: Decision{
				Status:    StatusActive,
				Message:   "database: foo1",
				Propagate: propagateDatabases(true),
			},
		},
		"OnlyDeletingRelationsLeft": {
			reason: "A tree holding nothing but deleting relations has no backend to connect to.",
			args: args{
				spec: v1alpha1.DataIntegratorSpec{DatabaseName: "foo1"},
				rels: []Relation{{Name: "mysql-a", Kind: v1alpha1.BackendMySQL, Active: true, Negotiated: "foo", Deleting: true}},
			},
			want: Decision{
				Status:    StatusBlockedRelate,
				Message:   "database: foo1; please add a relation with a backend",
				Propagate: propagateDatabases(true),
			},
		},
		"MultipleNamesSummarized": {
			reason: "The active message lists each configured family once, in family order.",
			args: args{
				spec: v1alpha1.DataIntegratorSpec{DatabaseName: "foo", TopicName: "events", IndexName: "albums", PrefixName: "/app"},
				rels: []Relation{{Name: "kafka-a", Kind: v1alpha1.BackendKafka, Active: true, Negotiated: "events"}},
			},
			want: Decision{
				Status:  StatusActive,
				Message: "database: foo, topic: events, index: albums, prefix: /app",
				Propagate: func() map[v1alpha1.BackendKind]bool {
					p := propagateDatabases(true)
					p[v1alpha1.BackendKafka] = true
					p[v1alpha1.BackendOpenSearch] = true
					p[v1alpha1.BackendEtcd] = true
					p[v1alpha1.BackendZooKeeper] = true
					return p
				}(),
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := Resolve(tc.args.spec, tc.args.rels, tc.args.prior)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("\n%s\nResolve(...): -want, +got:\n%s", tc.reason, diff)
			}

			// Resolution is pure: the same inputs resolve the same way twice.
			again := Resolve(tc.args.spec, tc.args.rels, tc.args.prior)
			if diff := cmp.Diff(got, again); diff != "" {
				t.Errorf("\n%s\nResolve(...) is not idempotent: -first, +second:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestResolveCoversAllKinds(t *testing.T) {
	spec := v1alpha1.DataIntegratorSpec{DatabaseName: "d", TopicName: "t", IndexName: "i", PrefixName: "p"}
	d := Resolve(spec, nil, Prior{})
	for _, k := range backend.Kinds() {
		if _, ok := d.Propagate[k.Name]; !ok {
			t.Errorf("Resolve(...): no propagation verdict for kind %q", k.Name)
		}
	}
}
