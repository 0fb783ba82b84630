package vehicle

import "fmt"

// Truck is a Vehicle that also satisfies EngineStarter, combining the shared
// base with the one capability interface in the model.
type Truck struct {
	*Vehicle
}

// NewTruck creates a Truck.
func NewTruck(brand string, opts ...Option) *Truck {
	return &Truck{Vehicle: New(brand, opts...)}
}

func (t *Truck) Honk() {
	fmt.Fprintln(t.out, "Hoooonk!")
}

// StartEngine satisfies EngineStarter.
func (t *Truck) StartEngine() {
	fmt.Fprintln(t.out, "Truck engine roars!")
}

func (t *Truck) Close() error {
	fmt.Fprintln(t.out, "Truck released")
	return t.Vehicle.Close()
}

var (
	_ Unit          = (*Truck)(nil)
	_ EngineStarter = (*Truck)(nil)
)
