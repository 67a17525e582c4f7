// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package recognizer

import (
	"fmt"
	"sort"
	"strings"
)

type registryKey struct {
	entityType string
	language   string
}

// Registry holds compiled recognizers keyed by (entity type, language).
// Registration is the configuration boundary: a recognizer that fails to
// compile or collides with an existing registration is refused, never
// silently skipped. After construction the registry is read-only and safe
// for concurrent use.
type Registry struct {
	recognizers []*Recognizer
	index       map[registryKey]*Recognizer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[registryKey]*Recognizer)}
}

// Register compiles and adds a recognizer. Duplicate (entity type, language)
// registrations are a configuration error.
func (reg *Registry) Register(cfg Config) error {
	rec, err := New(cfg)
	if err != nil {
		return err
	}

	key := registryKey{cfg.EntityType, strings.ToLower(cfg.Language)}
	if _, exists := reg.index[key]; exists {
		return fmt.Errorf("recognizer %s (language %q) is already registered", cfg.EntityType, cfg.Language)
	}

	reg.index[key] = rec
	reg.recognizers = append(reg.recognizers, rec)
	return nil
}

// Select returns the recognizers applicable to the given language and
// requested entity types. An empty entities slice selects all entity types.
// Requested entity types with no registered recognizer simply select
// nothing; an unknown entity is a normal no-match outcome, not an error.
func (reg *Registry) Select(language string, entities []string) []*Recognizer {
	requested := make(map[string]bool, len(entities))
	for _, e := range entities {
		requested[e] = true
	}

	var selected []*Recognizer
	for _, rec := range reg.recognizers {
		if !rec.SupportsLanguage(language) {
			continue
		}
		if len(requested) > 0 && !requested[rec.EntityType()] {
			continue
		}
		selected = append(selected, rec)
	}
	return selected
}

// Names returns the sorted names of recognizers supporting the language.
func (reg *Registry) Names(language string) []string {
	var names []string
	for _, rec := range reg.recognizers {
		if rec.SupportsLanguage(language) {
			names = append(names, rec.Name())
		}
	}
	sort.Strings(names)
	return names
}

// SupportedEntities returns the sorted, de-duplicated entity types
// supported for the language.
func (reg *Registry) SupportedEntities(language string) []string {
	seen := make(map[string]bool)
	var entities []string
	for _, rec := range reg.recognizers {
		if !rec.SupportsLanguage(language) || seen[rec.EntityType()] {
			continue
		}
		seen[rec.EntityType()] = true
		entities = append(entities, rec.EntityType())
	}
	sort.Strings(entities)
	return entities
}

// Len returns the number of registered recognizers.
func (reg *Registry) Len() int { return len(reg.recognizers) }

// Default builds a registry with every built-in identifier family.
func Default() (*Registry, error) {
	reg := NewRegistry()
	for _, cfg := range BuiltinConfigs() {
		if err := reg.Register(cfg); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
