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

package v1alpha1

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
)

// A BackendKind identifies one of the closed set of backing services a
// relation may be declared against.
// +kubebuilder:validation:Enum=mysql;postgresql;mongodb;mongos;cassandra;kafka;opensearch;kyuubi;etcd;zookeeper
type BackendKind string

// The backend kinds the integrator knows how to negotiate with.
const (
	BackendMySQL      BackendKind = "mysql"
	BackendPostgreSQL BackendKind = "postgresql"
	BackendMongoDB    BackendKind = "mongodb"
	BackendMongos     BackendKind = "mongos"
	BackendCassandra  BackendKind = "cassandra"
	BackendKafka      BackendKind = "kafka"
	BackendOpenSearch BackendKind = "opensearch"
	BackendKyuubi     BackendKind = "kyuubi"
	BackendEtcd       BackendKind = "etcd"
	BackendZooKeeper  BackendKind = "zookeeper"
)

// A RelationRequest is the outbound half of a relation databag. It is written
// only by the integrator controller; the backend operator reads it to learn
// what to provision.
type RelationRequest struct {
	// ResourceName is the database, topic, index or prefix the backend
	// should provision.
	// +optional
	ResourceName string `json:"resourceName,omitempty"`

	// EntityType classifies the principal the backend should provision.
	// +optional
	EntityType string `json:"entityType,omitempty"`

	// ExtraUserRoles is a comma-joined list of roles for the provisioned
	// user.
	// +optional
	ExtraUserRoles string `json:"extraUserRoles,omitempty"`

	// ExtraGroupRoles is a comma-joined list of roles for the provisioned
	// group.
	// +optional
	ExtraGroupRoles string `json:"extraGroupRoles,omitempty"`

	// ConsumerGroupPrefix scopes the consumer groups a broker backend
	// grants.
	// +optional
	ConsumerGroupPrefix string `json:"consumerGroupPrefix,omitempty"`

	// MTLSClientCertificate names the secret carrying the client
	// certificate for backends that require mutual TLS.
	// +optional
	MTLSClientCertificate string `json:"mtlsClientCertificate,omitempty"`

	// RequestedSecrets names the secret bundle used to pre-provision named
	// sub-entities.
	// +optional
	RequestedSecrets string `json:"requestedSecrets,omitempty"`
}

// A BackendRelationSpec declares a relation between a DataIntegrator and one
// backend instance of a given kind.
type BackendRelationSpec struct {
	// Kind of the backing service this relation is declared against.
	// +kubebuilder:validation:Required
	Kind BackendKind `json:"kind"`

	// IntegratorRef names the DataIntegrator, in the same namespace, that
	// this relation belongs to.
	// +kubebuilder:validation:Required
	IntegratorRef corev1.LocalObjectReference `json:"integratorRef"`

	// Request is the outbound databag. Do not edit; the integrator
	// controller owns it.
	// +optional
	Request RelationRequest `json:"request,omitempty"`
}

// A NegotiatedState is the inbound half of a relation databag: the fields the
// backend publishes once it has provisioned the requested resource.
type NegotiatedState struct {
	// ResourceName the backend committed to. A change request that differs
	// from this value while the relation is active is a conflict.
	ResourceName string `json:"resourceName,omitempty"`

	// CredentialsSecretRef names the secret, written by the backend, holding
	// the provisioned username and password.
	// +optional
	CredentialsSecretRef *xpv1.LocalSecretReference `json:"credentialsSecretRef,omitempty"`

	// Endpoints the provisioned resource is served on.
	// +optional
	Endpoints []string `json:"endpoints,omitempty"`

	// ReadOnlyEndpoints, for backends that distinguish read replicas.
	// +optional
	ReadOnlyEndpoints []string `json:"readOnlyEndpoints,omitempty"`

	// Version string published by the backend.
	// +optional
	Version string `json:"version,omitempty"`

	// ProtocolVersion published by backends that version their wire
	// protocol separately.
	// +optional
	ProtocolVersion string `json:"protocolVersion,omitempty"`

	// TLSCASecretRef names the secret carrying the backend's CA chain.
	// +optional
	TLSCASecretRef *xpv1.LocalSecretReference `json:"tlsCASecretRef,omitempty"`
}

// A BackendRelationStatus is written by the backend operator as it provisions
// the requested resource.
type BackendRelationStatus struct {
	xpv1.ConditionedStatus `json:",inline"`

	// Negotiated is set once the backend has provisioned the resource.
	// +optional
	Negotiated *NegotiatedState `json:"negotiated,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=brel
// +kubebuilder:printcolumn:name="KIND",type="string",JSONPath=".spec.kind"
// +kubebuilder:printcolumn:name="INTEGRATOR",type="string",JSONPath=".spec.integratorRef.name"
// +kubebuilder:printcolumn:name="RESOURCE",type="string",JSONPath=".status.negotiated.resourceName"
// +kubebuilder:printcolumn:name="AGE",type="date",JSONPath=".metadata.creationTimestamp"

// A BackendRelation is a channel between a DataIntegrator and one backend
// instance, carrying a small structured databag in each direction.
type BackendRelation struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   BackendRelationSpec   `json:"spec"`
	Status BackendRelationStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// BackendRelationList contains a list of BackendRelations.
type BackendRelationList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []BackendRelation `json:"items"`
}

// GetCondition of this BackendRelation.
func (r *BackendRelation) GetCondition(ct xpv1.ConditionType) xpv1.Condition {
	return r.Status.GetCondition(ct)
}

// SetConditions of this BackendRelation.
func (r *BackendRelation) SetConditions(c ...xpv1.Condition) {
	r.Status.SetConditions(c...)
}

// Active returns true once the backend has provisioned the requested
// resource and published credentials for it.
func (r *BackendRelation) Active() bool {
	n := r.Status.Negotiated
	return n != nil && n.ResourceName != "" && n.CredentialsSecretRef != nil
}
