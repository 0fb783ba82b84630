package vehicle

import (
	"strings"

	"github.com/vroom-sh/vroom/pkg/errs"
)

// ─────────────────────────────────────────────────────────────────────────────
// Kind
// ─────────────────────────────────────────────────────────────────────────────

// Kind identifies a concrete vehicle type.
type Kind string

const (
	KindCar   Kind = "car"
	KindBike  Kind = "bike"
	KindTruck Kind = "truck"
)

// Kinds returns every valid kind, in display order.
func Kinds() []Kind {
	return []Kind{KindCar, KindBike, KindTruck}
}

// IsValid reports whether k names a known vehicle kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindCar, KindBike, KindTruck:
		return true
	}
	return false
}

func (k Kind) String() string { return string(k) }

// ParseKind parses a kind name, case-insensitively.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if !k.IsValid() {
		return "", errs.Newf(errs.ErrKindUnknown, "vehicle.parse_kind",
			"you can't have a %q vehicle", s).
			WithAdvice("valid kinds: car, bike, truck")
	}
	return k, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Spec and factories
// ─────────────────────────────────────────────────────────────────────────────

// Spec describes one vehicle to build, typically decoded from vroom.yaml.
type Spec struct {
	Kind  string `mapstructure:"kind" yaml:"kind"`
	Brand string `mapstructure:"brand" yaml:"brand"`
	Model string `mapstructure:"model" yaml:"model,omitempty"`
}

// Build constructs the concrete vehicle a Spec describes and returns it
// behind the polymorphic Unit handle. An empty brand falls back to
// DefaultBrand so the brand invariant holds for every construction path.
func Build(spec Spec, opts ...Option) (Unit, error) {
	kind, err := ParseKind(spec.Kind)
	if err != nil {
		return nil, err
	}

	brand := spec.Brand
	if brand == "" {
		brand = DefaultBrand
	}

	switch kind {
	case KindCar:
		return NewCar(brand, spec.Model, opts...), nil
	case KindBike:
		return NewBike(brand, opts...), nil
	default:
		return NewTruck(brand, opts...), nil
	}
}

// ParseSpec parses a "kind,brand[,model]" triple, e.g. "car,Ford,Mustang".
func ParseSpec(s string) (Spec, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return Spec{}, errs.Newf(errs.ErrSpecInvalid, "vehicle.parse_spec",
			"malformed vehicle spec %q, want kind,brand[,model]", s)
	}
	spec := Spec{
		Kind:  strings.TrimSpace(parts[0]),
		Brand: strings.TrimSpace(parts[1]),
	}
	if len(parts) == 3 {
		spec.Model = strings.TrimSpace(parts[2])
	}
	return spec, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Fleet
// ─────────────────────────────────────────────────────────────────────────────

// Fleet owns an ordered collection of vehicles. Ownership is exclusive:
// closing the fleet releases every vehicle exactly once, most recently added
// first.
type Fleet struct {
	units  []Unit
	closed bool
}

// NewFleet returns an empty Fleet.
func NewFleet() *Fleet {
	return &Fleet{}
}

// Add appends a vehicle to the fleet.
func (f *Fleet) Add(u Unit) {
	f.units = append(f.units, u)
}

// Len returns the number of vehicles ever added.
func (f *Fleet) Len() int { return len(f.units) }

// Active returns the number of vehicles not yet released.
func (f *Fleet) Active() int {
	if f.closed {
		return 0
	}
	return len(f.units)
}

// Units returns the vehicles in insertion order.
func (f *Fleet) Units() []Unit { return f.units }

// HonkAll sounds every horn in insertion order.
func (f *Fleet) HonkAll() {
	for _, u := range f.units {
		u.Honk()
	}
}

// Close releases every vehicle in reverse insertion order. Closing an
// already-closed fleet is an error; individual releases never fail.
func (f *Fleet) Close() error {
	if f.closed {
		return errs.Newf(errs.ErrFleetClosed, "fleet.close", "fleet already closed")
	}
	f.closed = true
	for i := len(f.units) - 1; i >= 0; i-- {
		if err := f.units[i].Close(); err != nil {
			return errs.Wrap(err, errs.ErrInternal, "fleet.close")
		}
	}
	return nil
}
