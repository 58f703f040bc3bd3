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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	xpv1 "github.com/crossplane/crossplane-runtime/apis/common/v1"
)

// A DataIntegratorSpec holds the user's desired resource request: at most one
// resource name per backend family, plus the role strings forwarded to every
// backend that provisions on our behalf.
type DataIntegratorSpec struct {
	// DatabaseName is the database requested from relational and document
	// store backends (mysql, postgresql, mongodb, mongos, cassandra, kyuubi).
	// +optional
	DatabaseName string `json:"databaseName,omitempty"`

	// TopicName is the topic requested from message broker backends (kafka).
	// +optional
	TopicName string `json:"topicName,omitempty"`

	// IndexName is the index requested from search backends (opensearch).
	// +optional
	IndexName string `json:"indexName,omitempty"`

	// PrefixName is the key prefix requested from distributed key-value
	// backends (etcd, zookeeper).
	// +optional
	PrefixName string `json:"prefixName,omitempty"`

	// EntityType classifies the principal the backend should provision.
	// +kubebuilder:validation:Enum=USER;GROUP
	// +optional
	EntityType string `json:"entityType,omitempty"`

	// ExtraUserRoles is a comma-joined list of additional roles granted to
	// the provisioned user. Backends that define a default role set use it
	// when this is empty.
	// +optional
	ExtraUserRoles string `json:"extraUserRoles,omitempty"`

	// ExtraGroupRoles is a comma-joined list of additional roles granted to
	// the provisioned group.
	// +optional
	ExtraGroupRoles string `json:"extraGroupRoles,omitempty"`

	// ConsumerGroupPrefix is forwarded to broker backends that scope
	// consumer groups by prefix.
	// +optional
	ConsumerGroupPrefix string `json:"consumerGroupPrefix,omitempty"`

	// RequestedSecrets references an externally stored secret bundle used to
	// pre-provision named sub-entities on the backend. The referenced secret
	// must exist in the integrator's namespace.
	// +optional
	RequestedSecrets *xpv1.LocalSecretReference `json:"requestedSecrets,omitempty"`

	// MTLSClientCertificateSecretRef references a secret holding the client
	// certificate forwarded to backends that require mutual TLS.
	// +optional
	MTLSClientCertificateSecretRef *xpv1.LocalSecretReference `json:"mtlsClientCertificateSecretRef,omitempty"`
}

// A DataIntegratorStatus reflects the outcome of the last reconciliation of a
// desired resource request against the relations that exist for it.
type DataIntegratorStatus struct {
	xpv1.ConditionedStatus `json:",inline"`

	// ConnectedKinds lists the backend kinds that have provisioned the
	// request and published credentials.
	// +optional
	ConnectedKinds []BackendKind `json:"connectedKinds,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=di
// +kubebuilder:printcolumn:name="READY",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].status"
// +kubebuilder:printcolumn:name="STATUS",type="string",JSONPath=".status.conditions[?(@.type=='Ready')].message"
// +kubebuilder:printcolumn:name="AGE",type="date",JSONPath=".metadata.creationTimestamp"

// A DataIntegrator requests a named resource from one or more backing
// services on behalf of an end user and republishes the granted credentials.
type DataIntegrator struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   DataIntegratorSpec   `json:"spec"`
	Status DataIntegratorStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// DataIntegratorList contains a list of DataIntegrators.
type DataIntegratorList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []DataIntegrator `json:"items"`
}

// GetCondition of this DataIntegrator.
func (i *DataIntegrator) GetCondition(ct xpv1.ConditionType) xpv1.Condition {
	return i.Status.GetCondition(ct)
}

// SetConditions of this DataIntegrator.
func (i *DataIntegrator) SetConditions(c ...xpv1.Condition) {
	i.Status.SetConditions(c...)
}

// Empty returns true if no resource name is requested at all.
func (s DataIntegratorSpec) Empty() bool {
	return s.DatabaseName == "" && s.TopicName == "" && s.IndexName == "" && s.PrefixName == ""
}
