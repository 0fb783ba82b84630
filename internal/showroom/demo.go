// Package showroom runs the demonstration sequence that exercises every
// behaviour of the vehicle object model: construction on both paths,
// accessor reads, variant-specific horns, the engine capability, and
// release through base-typed handles.
package showroom

import (
	"fmt"
	"io"

	"github.com/vroom-sh/vroom/pkg/vehicle"
)

// Separator is the divider line printed between demonstration sections.
const Separator = "----------------"

// Run writes the full demonstration transcript to w.
func Run(w io.Writer) error {
	out := vehicle.WithOutput(w)

	// Encapsulation: brand is private, read through the accessor.
	base := vehicle.New("Generic", out)
	fmt.Fprintf(w, "Vehicle Brand: %s\n", base.Brand())
	base.Honk()
	fmt.Fprintln(w, Separator)

	car := vehicle.NewCar("Ford", "Mustang", out)
	fmt.Fprintf(w, "Car: %s %s\n", car.Brand(), car.Model())
	car.Honk()
	fmt.Fprintln(w, Separator)

	bike := vehicle.NewBike("Yamaha", out)
	fmt.Fprintf(w, "Bike Brand: %s\n", bike.Brand())
	bike.Honk()
	fmt.Fprintln(w, Separator)

	truck := vehicle.NewTruck("Volvo", out)
	fmt.Fprintf(w, "Truck Brand: %s\n", truck.Brand())
	truck.Honk()
	truck.StartEngine()
	fmt.Fprintln(w, Separator)

	// Dispatch through base-typed handles: Honk and Close both resolve to
	// the most-derived override.
	var v1 vehicle.Unit = vehicle.NewCar("BMW", "M3", out)
	var v2 vehicle.Unit = vehicle.NewBike("Ducati", out)

	v1.Honk()
	v2.Honk()

	if err := v1.Close(); err != nil {
		return err
	}
	if err := v2.Close(); err != nil {
		return err
	}

	// Release the remaining instances, newest first.
	for _, u := range []vehicle.Unit{truck, bike, car, base} {
		if err := u.Close(); err != nil {
			return err
		}
	}
	return nil
}
