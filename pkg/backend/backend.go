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

// Package backend defines the closed set of backend kinds the integrator can
// negotiate with. Each kind supplies the resource family it serves, the
// outbound databag it expects, and the reader for the fields it publishes
// back. The set is fixed at compile time; there is no registration.
package backend

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/charmtech/data-integrator/apis/integration/v1alpha1"
)

// A Family groups backend kinds by the flavor of resource they provision.
type Family string

// The resource families.
const (
	FamilyDatabase Family = "database"
	FamilyTopic    Family = "topic"
	FamilyIndex    Family = "index"
	FamilyPrefix   Family = "prefix"
)

// Families in a stable order.
func Families() []Family {
	return []Family{FamilyDatabase, FamilyTopic, FamilyIndex, FamilyPrefix}
}

// A Kind is one backend variant: the relation name it answers to, the family
// of resource it provisions, and the extras it carries in its databags.
type Kind struct {
	Name   v1alpha1.BackendKind
	Family Family

	// DefaultExtraUserRoles is requested when the user supplies none.
	DefaultExtraUserRoles string

	// Brokers scope consumer groups and may require a client certificate.
	carriesConsumerGroup bool
	carriesMTLS          bool
}

// Default role strings, per backend.
const (
	kafkaDefaultUserRoles      = "producer,consumer,admin"
	opensearchDefaultUserRoles = "default"
)

var kinds = []Kind{
	{Name: v1alpha1.BackendMySQL, Family: FamilyDatabase},
	{Name: v1alpha1.BackendPostgreSQL, Family: FamilyDatabase},
	{Name: v1alpha1.BackendMongoDB, Family: FamilyDatabase},
	{Name: v1alpha1.BackendMongos, Family: FamilyDatabase},
	{Name: v1alpha1.BackendCassandra, Family: FamilyDatabase},
	{Name: v1alpha1.BackendKyuubi, Family: FamilyDatabase},
	{Name: v1alpha1.BackendKafka, Family: FamilyTopic, DefaultExtraUserRoles: kafkaDefaultUserRoles, carriesConsumerGroup: true, carriesMTLS: true},
	{Name: v1alpha1.BackendOpenSearch, Family: FamilyIndex, DefaultExtraUserRoles: opensearchDefaultUserRoles},
	{Name: v1alpha1.BackendEtcd, Family: FamilyPrefix, carriesMTLS: true},
	{Name: v1alpha1.BackendZooKeeper, Family: FamilyPrefix},
}

// Kinds returns the closed set of backend kinds in a stable order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Lookup returns the Kind with the supplied name.
func Lookup(name v1alpha1.BackendKind) (Kind, bool) {
	for _, k := range kinds {
		if k.Name == name {
			return k, true
		}
	}
	return Kind{}, false
}

// ResourceName returns the resource name the supplied request holds for this
// kind's family, or the empty string if none is requested.
func (k Kind) ResourceName(spec v1alpha1.DataIntegratorSpec) string {
	switch k.Family {
	case FamilyDatabase:
		return spec.DatabaseName
	case FamilyTopic:
		return spec.TopicName
	case FamilyIndex:
		return spec.IndexName
	case FamilyPrefix:
		return spec.PrefixName
	}
	return ""
}

// BuildRequest builds the outbound databag for a relation of this kind from
// the integrator's desired resource request. Fields a kind does not carry
// are left empty so that idempotent rebuilds compare equal.
func (k Kind) BuildRequest(spec v1alpha1.DataIntegratorSpec) v1alpha1.RelationRequest {
	req := v1alpha1.RelationRequest{
		ResourceName:    k.ResourceName(spec),
		EntityType:      spec.EntityType,
		ExtraUserRoles:  spec.ExtraUserRoles,
		ExtraGroupRoles: spec.ExtraGroupRoles,
	}
	if req.ExtraUserRoles == "" {
		req.ExtraUserRoles = k.DefaultExtraUserRoles
	}
	if k.carriesConsumerGroup {
		req.ConsumerGroupPrefix = spec.ConsumerGroupPrefix
	}
	if k.carriesMTLS && spec.MTLSClientCertificateSecretRef != nil {
		req.MTLSClientCertificate = spec.MTLSClientCertificateSecretRef.Name
	}
	if spec.RequestedSecrets != nil {
		req.RequestedSecrets = spec.RequestedSecrets.Name
	}
	return req
}

// Fields flattens the non-secret half of a negotiated databag into the keys
// the credential bundle exposes. The resource name key follows the family:
// database, topic, index or prefix.
func (k Kind) Fields(n *v1alpha1.NegotiatedState) map[string]string {
	if n == nil {
		return nil
	}
	f := map[string]string{string(k.Family): n.ResourceName}
	if len(n.Endpoints) > 0 {
		f["endpoints"] = strings.Join(n.Endpoints, ",")
	}
	if len(n.ReadOnlyEndpoints) > 0 {
		f["read-only-endpoints"] = strings.Join(n.ReadOnlyEndpoints, ",")
	}
	if n.Version != "" {
		f["version"] = n.Version
	}
	if n.ProtocolVersion != "" {
		f["protocol-version"] = n.ProtocolVersion
	}
	if n.TLSCASecretRef != nil {
		f["tls-ca"] = n.TLSCASecretRef.Name
	}
	return f
}

// Version parses the version string a backend published. Backends are free
// to publish anything; an unparsable version is returned as nil, not an
// error, and the raw string stays available in the negotiated state.
func Version(n *v1alpha1.NegotiatedState) *semver.Version {
	if n == nil || n.Version == "" {
		return nil
	}
	v, err := semver.NewVersion(n.Version)
	if err != nil {
		return nil
	}
	return v
}
