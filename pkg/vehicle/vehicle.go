// Package vehicle defines the showroom object model: a shared Vehicle base,
// three concrete variants (Car, Bike, Truck), and the interfaces used to
// drive them polymorphically.
//
// Every vehicle writes its lifecycle traces and sounds to a single output
// stream, stdout unless redirected with WithOutput. Construction and release
// each emit exactly one line per type in the chain, release running
// derived-first then base.
package vehicle

import (
	"fmt"
	"io"
	"os"
)

// DefaultBrand is stored when no brand is supplied at construction.
const DefaultBrand = "Unknown"

// Honker is anything that can sound its horn.
type Honker interface {
	Honk()
}

// Unit is the polymorphic handle to a vehicle of any kind. Calls through a
// Unit dispatch to the most-derived override, including Close.
type Unit interface {
	Honker
	io.Closer
	Brand() string
	SetBrand(string)
}

// EngineStarter is implemented by vehicles with a startable engine. It
// declares no default behaviour; each implementer supplies its own.
type EngineStarter interface {
	StartEngine()
}

// Option configures a vehicle at construction.
type Option func(*Vehicle)

// WithOutput directs lifecycle traces and sounds to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(v *Vehicle) { v.out = w }
}

// Vehicle is the shared base of every vehicle kind. The brand is
// encapsulated; read and replace it through Brand and SetBrand.
type Vehicle struct {
	brand string
	out   io.Writer
}

func newVehicle(brand string, opts ...Option) *Vehicle {
	v := &Vehicle{brand: brand, out: os.Stdout}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// New creates a Vehicle carrying the supplied brand.
func New(brand string, opts ...Option) *Vehicle {
	v := newVehicle(brand, opts...)
	fmt.Fprintln(v.out, "Vehicle created with brand")
	return v
}

// NewUnbranded creates a Vehicle carrying DefaultBrand.
func NewUnbranded(opts ...Option) *Vehicle {
	v := newVehicle(DefaultBrand, opts...)
	fmt.Fprintln(v.out, "Vehicle created with default brand")
	return v
}

// Brand returns the stored brand.
func (v *Vehicle) Brand() string { return v.brand }

// SetBrand replaces the stored brand.
func (v *Vehicle) SetBrand(brand string) { v.brand = brand }

// Honk emits the generic alert. Variants override this with their own sound.
func (v *Vehicle) Honk() {
	fmt.Fprintln(v.out, "Vehicle makes a sound.")
}

// Close emits the base finalization trace. Variant Close implementations
// run their own trace first and then delegate here.
func (v *Vehicle) Close() error {
	fmt.Fprintln(v.out, "Vehicle released")
	return nil
}

var _ Unit = (*Vehicle)(nil)
