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

package backend

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"

	"github.com/charmtech/data-integrator/apis/integration/v1alpha1"
)

func kind(t *testing.T, name v1alpha1.BackendKind) Kind {
	t.Helper()
	k, ok := Lookup(name)
	if !ok {
		t.Fatalf("Lookup(%q): kind not in the closed set", name)
	}
	return k
}

func TestBuildRequest(t *testing.T) {
	cases := map[string]struct {
		reason string
		kind   v1alpha1.BackendKind
		spec   v1alpha1.DataIntegratorSpec
		want   v1alpha1.RelationRequest
	}{
		"DatabaseKindTakesDatabaseName": {
			reason: "A relational kind requests the database name, not any other family's name.",
			kind:   v1alpha1.BackendMySQL,
			spec:   v1alpha1.DataIntegratorSpec{DatabaseName: "foo", TopicName: "events", ExtraUserRoles: "admin"},
			want:   v1alpha1.RelationRequest{ResourceName: "foo", ExtraUserRoles: "admin"},
		},
		"KafkaDefaultsItsUserRoles": {
			reason: "Kafka requests its full default role set when the user supplies none.",
			kind:   v1alpha1.BackendKafka,
			spec:   v1alpha1.DataIntegratorSpec{TopicName: "events", ConsumerGroupPrefix: "app-"},
			want:   v1alpha1.RelationRequest{ResourceName: "events", ExtraUserRoles: "producer,consumer,admin", ConsumerGroupPrefix: "app-"},
		},
		"UserRolesOverrideDefaults": {
			reason: "Explicit roles win over a kind's defaults.",
			kind:   v1alpha1.BackendKafka,
			spec:   v1alpha1.DataIntegratorSpec{TopicName: "events", ExtraUserRoles: "producer"},
			want:   v1alpha1.RelationRequest{ResourceName: "events", ExtraUserRoles: "producer"},
		},
		"OpenSearchDefaultsItsUserRoles": {
			reason: "OpenSearch requests its default role when the user supplies none.",
			kind:   v1alpha1.BackendOpenSearch,
			spec:   v1alpha1.DataIntegratorSpec{IndexName: "albums"},
			want:   v1alpha1.RelationRequest{ResourceName: "albums", ExtraUserRoles: "default"},
		},
		"ConsumerGroupOnlyForBrokers": {
			reason: "Kinds that do not scope consumer groups never carry the prefix.",
			kind:   v1alpha1.BackendPostgreSQL,
			spec:   v1alpha1.DataIntegratorSpec{DatabaseName: "foo", ConsumerGroupPrefix: "app-"},
			want:   v1alpha1.RelationRequest{ResourceName: "foo"},
		},
		"CassandraTakesDatabaseName": {
			reason: "A keyspace request rides on the database name like any other relational kind.",
			kind:   v1alpha1.BackendCassandra,
			spec:   v1alpha1.DataIntegratorSpec{DatabaseName: "ks"},
			want:   v1alpha1.RelationRequest{ResourceName: "ks"},
		},
		"ZooKeeperDoesNotCarryMTLS": {
			reason: "ZooKeeper shares the prefix name but not etcd's client certificate.",
			kind:   v1alpha1.BackendZooKeeper,
			spec: v1alpha1.DataIntegratorSpec{
				PrefixName:                     "/app",
				MTLSClientCertificateSecretRef: &xpv1.LocalSecretReference{Name: "client-cert"},
			},
			want: v1alpha1.RelationRequest{ResourceName: "/app"},
		},
		"MTLSCertForKindsThatCarryIt": {
			reason: "The client certificate secret is forwarded only to kinds that use mutual TLS.",
			kind:   v1alpha1.BackendEtcd,
			spec: v1alpha1.DataIntegratorSpec{
				PrefixName:                     "/app",
				MTLSClientCertificateSecretRef: &xpv1.LocalSecretReference{Name: "client-cert"},
			},
			want: v1alpha1.RelationRequest{ResourceName: "/app", MTLSClientCertificate: "client-cert"},
		},
		"RequestedSecretsForwarded": {
			reason: "The requested-secrets bundle name rides along on every kind.",
			kind:   v1alpha1.BackendMySQL,
			spec: v1alpha1.DataIntegratorSpec{
				DatabaseName:     "foo",
				RequestedSecrets: &xpv1.LocalSecretReference{Name: "bundle"},
			},
			want: v1alpha1.RelationRequest{ResourceName: "foo", RequestedSecrets: "bundle"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := kind(t, tc.kind).BuildRequest(tc.spec)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("\n%s\nBuildRequest(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestFields(t *testing.T) {
	cases := map[string]struct {
		reason string
		kind   v1alpha1.BackendKind
		n      *v1alpha1.NegotiatedState
		want   map[string]string
	}{
		"Nil": {
			reason: "No negotiated state flattens to nothing.",
			kind:   v1alpha1.BackendMySQL,
			n:      nil,
			want:   nil,
		},
		"DatabaseFamilyKey": {
			reason: "A relational kind exposes its resource name under the database key.",
			kind:   v1alpha1.BackendMySQL,
			n: &v1alpha1.NegotiatedState{
				ResourceName: "foo",
				Endpoints:    []string{"10.0.0.1:3306", "10.0.0.2:3306"},
				Version:      "8.0.36",
			},
			want: map[string]string{
				"database":  "foo",
				"endpoints": "10.0.0.1:3306,10.0.0.2:3306",
				"version":   "8.0.36",
			},
		},
		"ReadOnlyEndpointsAndTLS": {
			reason: "Backend extras flatten under their databag keys.",
			kind:   v1alpha1.BackendPostgreSQL,
			n: &v1alpha1.NegotiatedState{
				ResourceName:      "foo",
				Endpoints:         []string{"10.0.0.1:5432"},
				ReadOnlyEndpoints: []string{"10.0.0.3:5432"},
				TLSCASecretRef:    &xpv1.LocalSecretReference{Name: "ca"},
			},
			want: map[string]string{
				"database":            "foo",
				"endpoints":           "10.0.0.1:5432",
				"read-only-endpoints": "10.0.0.3:5432",
				"tls-ca":              "ca",
			},
		},
		"TopicFamilyKey": {
			reason: "A broker kind exposes its resource name under the topic key.",
			kind:   v1alpha1.BackendKafka,
			n: &v1alpha1.NegotiatedState{
				ResourceName:    "events",
				ProtocolVersion: "3",
			},
			want: map[string]string{
				"topic":            "events",
				"protocol-version": "3",
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := kind(t, tc.kind).Fields(tc.n)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("\n%s\nFields(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	if v := Version(nil); v != nil {
		t.Errorf("Version(nil): want nil, got %v", v)
	}
	if v := Version(&v1alpha1.NegotiatedState{Version: "not-a-version"}); v != nil {
		t.Errorf("Version(...): unparsable version should be nil, got %v", v)
	}
	v := Version(&v1alpha1.NegotiatedState{Version: "8.0.36"})
	if v == nil || v.Major() != 8 {
		t.Errorf("Version(...): want major 8, got %v", v)
	}
}

func TestKindsClosedSet(t *testing.T) {
	seen := map[v1alpha1.BackendKind]bool{}
	for _, k := range Kinds() {
		if seen[k.Name] {
			t.Errorf("Kinds(): %q appears twice", k.Name)
		}
		seen[k.Name] = true
		if _, ok := Lookup(k.Name); !ok {
			t.Errorf("Lookup(%q): kind missing from its own set", k.Name)
		}
	}
	if _, ok := Lookup(v1alpha1.BackendKind("redis")); ok {
		t.Error("Lookup(redis): want not found, the set is closed")
	}
}
