package lights

import (
	"rclights-go/errcode"
	"rclights-go/types"
)

// Registry holds the vehicle's light state machines keyed by logical name.
// Tests instantiate their own registries; nothing here is a singleton.
type Registry struct {
	m map[types.LightName]*Light
}

func NewRegistry() *Registry {
	return &Registry{m: map[types.LightName]*Light{}}
}

func (r *Registry) Add(l *Light) error {
	if _, exists := r.m[l.Name()]; exists {
		return &errcode.E{C: errcode.DuplicateLight, Op: "registry.Add", Msg: string(l.Name())}
	}
	r.m[l.Name()] = l
	return nil
}

func (r *Registry) Get(name types.LightName) (*Light, bool) {
	l, ok := r.m[name]
	return l, ok
}

// Init configures every registered light. The first failure aborts: a
// light that cannot be driven is a wiring error, not a runtime condition.
func (r *Registry) Init() error {
	for _, l := range r.m {
		if err := l.Init(); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) Len() int { return len(r.m) }
