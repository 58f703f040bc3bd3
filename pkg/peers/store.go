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

// Package peers implements the peer data bag: a small key/value store shared
// by every replica of the integrator, durable across process restarts. The
// integrator has no private persistent storage; anything that must survive a
// restart goes through a Store.
//
// Writes are leader-only by discipline, not enforcement: the only writer is
// the reconciler, and the manager runs it solely on the elected leader.
package peers

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/crossplane/crossplane-runtime/pkg/errors"
)

// Error messages.
const (
	errGetConfigMap    = "cannot get peer data bag config map"
	errCreateConfigMap = "cannot create peer data bag config map"
	errUpdateConfigMap = "cannot update peer data bag config map"
)

// A Store reads and writes the peer data bag. Implementations must be
// durable; callers never assume an in-memory cache survives anything.
type Store interface {
	// Get returns the value for key, and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set writes key to value, creating the bag if it does not exist yet.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// A ConfigMapStore is a Store backed by a namespaced ConfigMap, replicated
// and persisted by the API server rather than by this process.
type ConfigMapStore struct {
	client client.Client
	name   types.NamespacedName
}

// NewConfigMapStore returns a Store backed by the supplied ConfigMap, which
// need not exist yet.
func NewConfigMapStore(c client.Client, name types.NamespacedName) *ConfigMapStore {
	return &ConfigMapStore{client: c, name: name}
}

// Get returns the value for key from the backing ConfigMap.
func (s *ConfigMapStore) Get(ctx context.Context, key string) (string, bool, error) {
	cm := &corev1.ConfigMap{}
	if err := s.client.Get(ctx, s.name, cm); err != nil {
		if kerrors.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, errors.Wrap(err, errGetConfigMap)
	}
	v, ok := cm.Data[key]
	return v, ok, nil
}

// Set writes key to value, creating the backing ConfigMap on first write.
func (s *ConfigMapStore) Set(ctx context.Context, key, value string) error {
	cm := &corev1.ConfigMap{}
	err := s.client.Get(ctx, s.name, cm)
	if kerrors.IsNotFound(err) {
		cm = &corev1.ConfigMap{
			ObjectMeta: metav1.ObjectMeta{Namespace: s.name.Namespace, Name: s.name.Name},
			Data:       map[string]string{key: value},
		}
		return errors.Wrap(s.client.Create(ctx, cm), errCreateConfigMap)
	}
	if err != nil {
		return errors.Wrap(err, errGetConfigMap)
	}
	if cm.Data == nil {
		cm.Data = map[string]string{}
	}
	if cm.Data[key] == value {
		return nil
	}
	cm.Data[key] = value
	return errors.Wrap(s.client.Update(ctx, cm), errUpdateConfigMap)
}

// Delete removes key from the backing ConfigMap.
func (s *ConfigMapStore) Delete(ctx context.Context, key string) error {
	cm := &corev1.ConfigMap{}
	if err := s.client.Get(ctx, s.name, cm); err != nil {
		if kerrors.IsNotFound(err) {
			return nil
		}
		return errors.Wrap(err, errGetConfigMap)
	}
	if _, ok := cm.Data[key]; !ok {
		return nil
	}
	delete(cm.Data, key)
	return errors.Wrap(s.client.Update(ctx, cm), errUpdateConfigMap)
}
