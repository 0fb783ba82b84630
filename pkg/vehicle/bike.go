package vehicle

import "fmt"

// Bike is a Vehicle with no state of its own, only a different sound.
type Bike struct {
	*Vehicle
}

// NewBike creates a Bike.
func NewBike(brand string, opts ...Option) *Bike {
	return &Bike{Vehicle: New(brand, opts...)}
}

func (b *Bike) Honk() {
	fmt.Fprintln(b.out, "Peep, peep!")
}

func (b *Bike) Close() error {
	fmt.Fprintln(b.out, "Bike released")
	return b.Vehicle.Close()
}

var _ Unit = (*Bike)(nil)
