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

// Package fake provides a fake peer store for use in tests.
package fake

import (
	"context"

	"github.com/charmtech/data-integrator/pkg/peers"
)

// A Store is a fake peers.Store backed by a map, with optional error
// injection.
type Store struct {
	// Data is the backing map. A nil map is treated as empty and allocated
	// on first write.
	Data map[string]string

	// Err, when set, is returned by every operation.
	Err error
}

var _ peers.Store = &Store{}

// Get returns the value for key from the backing map.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	if s.Err != nil {
		return "", false, s.Err
	}
	v, ok := s.Data[key]
	return v, ok, nil
}

// Set writes key to value in the backing map.
func (s *Store) Set(_ context.Context, key, value string) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Data == nil {
		s.Data = map[string]string{}
	}
	s.Data[key] = value
	return nil
}

// Delete removes key from the backing map.
func (s *Store) Delete(_ context.Context, key string) error {
	if s.Err != nil {
		return s.Err
	}
	delete(s.Data, key)
	return nil
}
