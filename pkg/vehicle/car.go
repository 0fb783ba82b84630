package vehicle

import "fmt"

// Car is a Vehicle with a model designation.
type Car struct {
	*Vehicle
	model string
}

// NewCar creates a Car. Brand initialization is delegated to the base.
func NewCar(brand, model string, opts ...Option) *Car {
	return &Car{Vehicle: New(brand, opts...), model: model}
}

// Model returns the model designation. There is no setter.
func (c *Car) Model() string { return c.model }

func (c *Car) Honk() {
	fmt.Fprintln(c.out, "Tuut, tuut!")
}

func (c *Car) Close() error {
	fmt.Fprintln(c.out, "Car released")
	return c.Vehicle.Close()
}

var _ Unit = (*Car)(nil)
