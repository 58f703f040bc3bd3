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
	"k8s.io/apimachinery/pkg/runtime/schema"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

// Package type metadata.
const (
	Group   = "integration.charmtech.io"
	Version = "v1alpha1"
)

var (
	// SchemeGroupVersion is group version used to register these objects.
	SchemeGroupVersion = schema.GroupVersion{Group: Group, Version: Version}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme.
	SchemeBuilder = &scheme.Builder{GroupVersion: SchemeGroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme.
	AddToScheme = SchemeBuilder.AddToScheme
)

// DataIntegrator type metadata.
var (
	DataIntegratorKind             = "DataIntegrator"
	DataIntegratorGroupKind        = schema.GroupKind{Group: Group, Kind: DataIntegratorKind}.String()
	DataIntegratorGroupVersionKind = SchemeGroupVersion.WithKind(DataIntegratorKind)
)

// BackendRelation type metadata.
var (
	BackendRelationKind             = "BackendRelation"
	BackendRelationGroupKind        = schema.GroupKind{Group: Group, Kind: BackendRelationKind}.String()
	BackendRelationGroupVersionKind = SchemeGroupVersion.WithKind(BackendRelationKind)
)

func init() {
	SchemeBuilder.Register(&DataIntegrator{}, &DataIntegratorList{})
	SchemeBuilder.Register(&BackendRelation{}, &BackendRelationList{})
}
