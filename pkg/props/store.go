// Package props provides flat, string-keyed property stores.
//
// A [Store] maps string keys to string values. [Map] is an in-memory store;
// [File] is a store backed by a YAML, TOML or Java-style .properties file.
// Stores are not safe for concurrent use.
package props

import (
	"maps"
	"slices"
)

// Store is a flat string-keyed property store.
type Store interface {
	// Get returns the value stored under key, and whether the key exists.
	Get(key string) (string, bool)
	// Set stores value under key, replacing any previous value.
	Set(key, value string)
}

// Map is an in-memory [Store].
type Map map[string]string

// Get implements [Store].
func (m Map) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Set implements [Store].
func (m Map) Set(key, value string) {
	m[key] = value
}

// Keys returns all keys in sorted order.
func (m Map) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Clone returns a shallow copy of m.
func (m Map) Clone() Map {
	if m == nil {
		return Map{}
	}

	return maps.Clone(m)
}
