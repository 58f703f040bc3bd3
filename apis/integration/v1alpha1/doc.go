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

// Package v1alpha1 contains the v1alpha1 API types for the data integrator:
// the DataIntegrator resource that carries a user's desired resource request,
// and the BackendRelation resource that represents one relation to one
// backing service.
// +kubebuilder:object:generate=true
// +groupName=integration.charmtech.io
// +versionName=v1alpha1
package v1alpha1
