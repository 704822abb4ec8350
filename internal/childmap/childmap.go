// Copyright 2020 Nathan Taylor (nbtaylor@gmail.com)
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies
// of the Software, and to permit persons to whom the Software is furnished to do
// so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package childmap is the bounded-key map from a folder name to its
// child, used by a conctree.Node. It carries no locking of its own:
// the tree always accesses a node's childmap while holding that
// node's synchronizer in the appropriate mode, so the map's mutation
// methods are not safe to call concurrently on their own.
package childmap

// Map holds a node's children, keyed by component name.
type Map struct {
	m map[string]any
}

// New returns an empty Map.
func New() *Map {
	return &Map{m: make(map[string]any)}
}

// Insert adds value under key. It returns false, leaving the map
// unchanged, if key is already present.
func (m *Map) Insert(key string, value any) bool {
	if _, ok := m.m[key]; ok {
		return false
	}
	m.m[key] = value
	return true
}

// Remove deletes key from the map. It returns false if key was absent.
func (m *Map) Remove(key string) bool {
	if _, ok := m.m[key]; !ok {
		return false
	}
	delete(m.m, key)
	return true
}

// Get returns the value stored under key, or (nil, false) if absent.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.m[key]
	return v, ok
}

// Size returns the number of entries in the map.
func (m *Map) Size() int {
	return len(m.m)
}

// Keys returns the map's keys in unspecified order. Callers must not
// assume any particular iteration order is stable across calls.
func (m *Map) Keys() []string {
	keys := make([]string, 0, len(m.m))
	for k := range m.m {
		keys = append(keys, k)
	}
	return keys
}

// Each calls fn once for every (key, value) pair, in unspecified
// order. fn must not mutate the map.
func (m *Map) Each(fn func(key string, value any)) {
	for k, v := range m.m {
		fn(k, v)
	}
}
