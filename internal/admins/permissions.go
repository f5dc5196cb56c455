package admins

import (
	"fmt"
	"sort"
)

// Standard CRUD actions a non-special permission key expands into.
var standardActions = []string{"view", "create", "edit", "delete"}

// PermissionKey is one permission group inside a module. Special keys are
// atomic (`module.key.special`); standard keys expand to the four CRUD
// actions (`module.key.view` .. `module.key.delete`).
type PermissionKey struct {
	Name    string
	Special bool
}

// Module groups permission keys under one name.
type Module struct {
	Name string
	Keys []PermissionKey
}

// Expand returns every atomic permission name the module covers, in
// declaration order.
func (m Module) Expand() []string {
	var out []string
	for _, k := range m.Keys {
		if k.Special {
			out = append(out, fmt.Sprintf("%s.%s.special", m.Name, k.Name))
			continue
		}
		for _, action := range standardActions {
			out = append(out, fmt.Sprintf("%s.%s.%s", m.Name, k.Name, action))
		}
	}
	return out
}

// Registry is the closed set of modules the dashboard knows about.
// Permission names are never built ad hoc; everything flows through the
// registry so an unknown name fails loudly at startup instead of silently
// never matching.
type Registry struct {
	modules []Module
	byName  map[string]Module
}

// NewRegistry validates module and key uniqueness and returns the registry.
func NewRegistry(modules ...Module) (*Registry, error) {
	byName := make(map[string]Module, len(modules))
	seen := make(map[string]bool)
	for _, m := range modules {
		if m.Name == "" {
			return nil, fmt.Errorf("admins: module with empty name")
		}
		if _, dup := byName[m.Name]; dup {
			return nil, fmt.Errorf("admins: duplicate module %q", m.Name)
		}
		if len(m.Keys) == 0 {
			return nil, fmt.Errorf("admins: module %q has no keys", m.Name)
		}
		for _, k := range m.Keys {
			if k.Name == "" {
				return nil, fmt.Errorf("admins: module %q has a key with empty name", m.Name)
			}
		}
		for _, name := range m.Expand() {
			if seen[name] {
				return nil, fmt.Errorf("admins: duplicate permission %q", name)
			}
			seen[name] = true
		}
		byName[m.Name] = m
	}
	return &Registry{modules: modules, byName: byName}, nil
}

// DefaultRegistry is the module set the admin console manages.
func DefaultRegistry() *Registry {
	reg, err := NewRegistry(
		Module{Name: "admins", Keys: []PermissionKey{{Name: "accounts"}, {Name: "roles"}}},
		Module{Name: "providers", Keys: []PermissionKey{{Name: "profiles"}, {Name: "doctors"}, {Name: "reviews", Special: true}}},
		Module{Name: "bookings", Keys: []PermissionKey{{Name: "records"}, {Name: "status", Special: true}}},
		Module{Name: "categories", Keys: []PermissionKey{{Name: "entries"}}},
		Module{Name: "customers", Keys: []PermissionKey{{Name: "accounts"}}},
		Module{Name: "sliders", Keys: []PermissionKey{{Name: "banners"}}},
		Module{Name: "settings", Keys: []PermissionKey{{Name: "general"}, {Name: "faqs"}, {Name: "pages"}}},
	)
	if err != nil {
		panic(err)
	}
	return reg
}

// Modules returns the registered modules in declaration order.
func (r *Registry) Modules() []Module {
	return r.modules
}

// Module looks up one module by name.
func (r *Registry) Module(name string) (Module, bool) {
	m, ok := r.byName[name]
	return m, ok
}

// Validate checks that every given permission name resolves to a
// registered module. Call it at startup with the names the backend
// reports, so drift between backend and registry surfaces immediately.
func (r *Registry) Validate(names []string) error {
	known := make(map[string]bool)
	for _, m := range r.modules {
		for _, name := range m.Expand() {
			known[name] = true
		}
	}
	var unknown []string
	for _, name := range names {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("admins: unknown permissions: %v", unknown)
	}
	return nil
}

// SelectionState describes how much of a module's permission set is
// currently selected.
type SelectionState int

const (
	SelectionNone SelectionState = iota
	SelectionPartial
	SelectionFull
)

func (s SelectionState) String() string {
	switch s {
	case SelectionFull:
		return "full"
	case SelectionPartial:
		return "partial"
	default:
		return "none"
	}
}

// Selection is the set of atomic permission names currently chosen.
type Selection map[string]bool

// NewSelection builds a selection from a list of names.
func NewSelection(names ...string) Selection {
	s := make(Selection, len(names))
	for _, name := range names {
		s[name] = true
	}
	return s
}

// ModuleState reports whether the module is fully, partially, or not
// selected.
func (s Selection) ModuleState(m Module) SelectionState {
	expanded := m.Expand()
	count := 0
	for _, name := range expanded {
		if s[name] {
			count++
		}
	}
	switch {
	case count == 0:
		return SelectionNone
	case count == len(expanded):
		return SelectionFull
	default:
		return SelectionPartial
	}
}

// ToggleModule flips the module between fully selected and empty. A
// partial selection becomes full. Other modules' permissions are
// untouched.
func (s Selection) ToggleModule(m Module) {
	if s.ModuleState(m) == SelectionFull {
		for _, name := range m.Expand() {
			delete(s, name)
		}
		return
	}
	for _, name := range m.Expand() {
		s[name] = true
	}
}

// Names returns the selected permission names, sorted.
func (s Selection) Names() []string {
	out := make([]string, 0, len(s))
	for name, on := range s {
		if on {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
