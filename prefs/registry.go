// This file is part of Gopher65.
//
// Gopher65 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/gopher65/curated"
)

// Registry collates preference values by key. Values added to the registry
// can be set by name, which is how the debugger and the command line change
// preferences.
type Registry struct {
	crit    sync.Mutex
	entries map[string]pref
}

// List of error patterns returned by the registry.
const (
	DuplicateKey = "prefs: duplicate key (%s)"
	UnknownKey   = "prefs: unknown key (%s)"
)

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]pref),
	}
}

// Add preference value to registry. If the key is on the top of the command
// line stack then that value is set immediately.
func (reg *Registry) Add(key string, p pref) error {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	if _, ok := reg.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	reg.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf("prefs: %s: %v", key, err)
		}
	}

	return nil
}

// Set the value of the preference with the key.
func (reg *Registry) Set(key string, v Value) error {
	reg.crit.Lock()
	p, ok := reg.entries[key]
	reg.crit.Unlock()

	if !ok {
		return curated.Errorf(UnknownKey, key)
	}
	return p.Set(v)
}

// Get the value of the preference with the key.
func (reg *Registry) Get(key string) (Value, error) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	p, ok := reg.entries[key]
	if !ok {
		return nil, curated.Errorf(UnknownKey, key)
	}
	return p.Get(), nil
}

// Keys returns the sorted list of keys in the registry.
func (reg *Registry) Keys() []string {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	keys := make([]string, 0, len(reg.entries))
	for k := range reg.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (reg *Registry) String() string {
	s := strings.Builder{}
	for _, k := range reg.Keys() {
		reg.crit.Lock()
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, reg.entries[k]))
		reg.crit.Unlock()
	}
	return s.String()
}
