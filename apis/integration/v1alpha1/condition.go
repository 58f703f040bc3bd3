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

// Reasons a DataIntegrator is or is not ready.
const (
	ReasonWaitingForConfig   xpv1.ConditionReason = "WaitingForConfig"
	ReasonWaitingForRelation xpv1.ConditionReason = "WaitingForRelation"
	ReasonConflictingChange  xpv1.ConditionReason = "ConflictingChange"
	ReasonConfigCleared      xpv1.ConditionReason = "ConfigCleared"
	ReasonConnected          xpv1.ConditionReason = "Connected"
	ReasonSecretUnavailable  xpv1.ConditionReason = "RequestedSecretsUnavailable"
)

// Waiting indicates no resource name has been requested yet. Soft: the
// integrator becomes ready as soon as a name is configured and a relation
// provisions it.
func Waiting() xpv1.Condition {
	return xpv1.Condition{
		Type:               xpv1.TypeReady,
		Status:             corev1.ConditionFalse,
		LastTransitionTime: metav1.Now(),
		Reason:             ReasonWaitingForConfig,
	}
}

// MissingRelation indicates a resource name is configured but no relation
// exists to a backend that could provision it.
func MissingRelation() xpv1.Condition {
	return xpv1.Condition{
		Type:               xpv1.TypeReady,
		Status:             corev1.ConditionFalse,
		LastTransitionTime: metav1.Now(),
		Reason:             ReasonWaitingForRelation,
	}
}

// Conflicted indicates a requested value differs from one a backend has
// already committed to. The relation must be removed before the value can
// change.
func Conflicted() xpv1.Condition {
	return xpv1.Condition{
		Type:               xpv1.TypeReady,
		Status:             corev1.ConditionFalse,
		LastTransitionTime: metav1.Now(),
		Reason:             ReasonConflictingChange,
	}
}

// ConfigCleared indicates every resource name was removed from the request
// while a relation was (or had been) active.
func ConfigCleared() xpv1.Condition {
	return xpv1.Condition{
		Type:               xpv1.TypeReady,
		Status:             corev1.ConditionFalse,
		LastTransitionTime: metav1.Now(),
		Reason:             ReasonConfigCleared,
	}
}

// Connected indicates the request has been propagated and at least one
// backend holds it.
func Connected() xpv1.Condition {
	return xpv1.Condition{
		Type:               xpv1.TypeReady,
		Status:             corev1.ConditionTrue,
		LastTransitionTime: metav1.Now(),
		Reason:             ReasonConnected,
	}
}

// SecretUnavailable indicates the requested-secrets reference cannot be
// resolved.
func SecretUnavailable() xpv1.Condition {
	return xpv1.Condition{
		Type:               xpv1.TypeReady,
		Status:             corev1.ConditionFalse,
		LastTransitionTime: metav1.Now(),
		Reason:             ReasonSecretUnavailable,
	}
}
