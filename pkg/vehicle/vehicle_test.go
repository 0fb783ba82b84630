package vehicle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrandRoundTrip(t *testing.T) {
	out := WithOutput(&bytes.Buffer{})

	tests := []struct {
		name string
		unit Unit
	}{
		{"vehicle", New("Generic", out)},
		{"car", NewCar("Ford", "Mustang", out)},
		{"bike", NewBike("Yamaha", out)},
		{"truck", NewTruck("Volvo", out)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.unit.Brand())

			tt.unit.SetBrand("Tesla")
			assert.Equal(t, "Tesla", tt.unit.Brand())

			tt.unit.SetBrand("Honda")
			assert.Equal(t, "Honda", tt.unit.Brand())
		})
	}
}

func TestUnbrandedVehicleHasDefaultBrand(t *testing.T) {
	var buf bytes.Buffer
	v := NewUnbranded(WithOutput(&buf))

	assert.Equal(t, DefaultBrand, v.Brand())
	assert.Contains(t, buf.String(), "Vehicle created with default brand")
}

func TestConstructionTraces(t *testing.T) {
	var buf bytes.Buffer
	New("Generic", WithOutput(&buf))
	assert.Equal(t, "Vehicle created with brand\n", buf.String())

	buf.Reset()
	NewCar("Ford", "Mustang", WithOutput(&buf))
	assert.Equal(t, "Vehicle created with brand\n", buf.String(),
		"variant construction delegates to the base path")
}

func TestHonkDispatchesToVariant(t *testing.T) {
	tests := []struct {
		name  string
		build func(Option) Unit
		want  string
	}{
		{"vehicle", func(o Option) Unit { return New("Generic", o) }, "Vehicle makes a sound.\n"},
		{"car", func(o Option) Unit { return NewCar("Ford", "Mustang", o) }, "Tuut, tuut!\n"},
		{"bike", func(o Option) Unit { return NewBike("Yamaha", o) }, "Peep, peep!\n"},
		{"truck", func(o Option) Unit { return NewTruck("Volvo", o) }, "Hoooonk!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			u := tt.build(WithOutput(&buf))
			buf.Reset()

			// Invoked through the Unit handle, not the concrete type.
			u.Honk()
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestCloseRunsDerivedThenBase(t *testing.T) {
	tests := []struct {
		name  string
		build func(Option) Unit
		want  string
	}{
		{"car", func(o Option) Unit { return NewCar("BMW", "M3", o) }, "Car released\nVehicle released\n"},
		{"bike", func(o Option) Unit { return NewBike("Ducati", o) }, "Bike released\nVehicle released\n"},
		{"truck", func(o Option) Unit { return NewTruck("Volvo", o) }, "Truck released\nVehicle released\n"},
		{"vehicle", func(o Option) Unit { return New("Generic", o) }, "Vehicle released\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			u := tt.build(WithOutput(&buf))
			buf.Reset()

			require.NoError(t, u.Close())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTruckEngineThroughBothHandles(t *testing.T) {
	var buf bytes.Buffer
	truck := NewTruck("Volvo", WithOutput(&buf))

	buf.Reset()
	truck.StartEngine()
	direct := buf.String()

	buf.Reset()
	var es EngineStarter = truck
	es.StartEngine()
	viaInterface := buf.String()

	assert.Equal(t, "Truck engine roars!\n", direct)
	assert.Equal(t, direct, viaInterface)
}

func TestCarScenario(t *testing.T) {
	var buf bytes.Buffer
	car := NewCar("Ford", "Mustang", WithOutput(&buf))

	assert.Equal(t, "Ford", car.Brand())
	assert.Equal(t, "Mustang", car.Model())

	buf.Reset()
	car.Honk()
	assert.Contains(t, buf.String(), "Tuut, tuut!")
}

func TestUnbrandedScenario(t *testing.T) {
	var buf bytes.Buffer
	v := NewUnbranded(WithOutput(&buf))

	assert.Equal(t, "Unknown", v.Brand())

	buf.Reset()
	v.Honk()
	assert.Contains(t, buf.String(), "Vehicle makes a sound.")
}

func TestTruckScenario(t *testing.T) {
	var buf bytes.Buffer
	truck := NewTruck("Volvo", WithOutput(&buf))

	buf.Reset()
	truck.Honk()
	assert.Contains(t, buf.String(), "Hoooonk!")

	buf.Reset()
	truck.StartEngine()
	assert.Contains(t, buf.String(), "Truck engine roars!")
}
