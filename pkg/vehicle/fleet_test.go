package vehicle

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vroom-sh/vroom/pkg/errs"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
		wantErr  bool
	}{
		{"car", KindCar, false},
		{"bike", KindBike, false},
		{"truck", KindTruck, false},
		{"CAR", KindCar, false},
		{" truck ", KindTruck, false},
		{"tiger", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.IsCode(err, errs.ErrKindUnknown))
				assert.Contains(t, err.Error(), "you can't have a")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestKindsAreValid(t *testing.T) {
	for _, k := range Kinds() {
		assert.True(t, k.IsValid(), "kind %q", k)
	}
	assert.False(t, Kind("boat").IsValid())
}

func TestParseSpec(t *testing.T) {
	tests := []struct {
		input    string
		expected Spec
		wantErr  bool
	}{
		{"car,Ford,Mustang", Spec{Kind: "car", Brand: "Ford", Model: "Mustang"}, false},
		{"truck,Volvo", Spec{Kind: "truck", Brand: "Volvo"}, false},
		{"bike, Yamaha ", Spec{Kind: "bike", Brand: "Yamaha"}, false},
		{"car", Spec{}, true},
		{"car,Ford,Mustang,GT", Spec{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSpec(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errs.IsCode(err, errs.ErrSpecInvalid))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestBuild(t *testing.T) {
	var buf bytes.Buffer
	out := WithOutput(&buf)

	car, err := Build(Spec{Kind: "car", Brand: "Ford", Model: "Mustang"}, out)
	require.NoError(t, err)
	require.IsType(t, &Car{}, car)
	assert.Equal(t, "Mustang", car.(*Car).Model())

	bike, err := Build(Spec{Kind: "bike", Brand: "Yamaha"}, out)
	require.NoError(t, err)
	require.IsType(t, &Bike{}, bike)

	truck, err := Build(Spec{Kind: "truck", Brand: "Volvo"}, out)
	require.NoError(t, err)
	_, ok := truck.(EngineStarter)
	assert.True(t, ok, "trucks start engines")

	_, err = Build(Spec{Kind: "submarine"}, out)
	require.Error(t, err)
	assert.True(t, errs.IsCode(err, errs.ErrKindUnknown))
}

func TestBuildDefaultsBrand(t *testing.T) {
	var buf bytes.Buffer
	u, err := Build(Spec{Kind: "bike"}, WithOutput(&buf))
	require.NoError(t, err)
	assert.Equal(t, DefaultBrand, u.Brand())
}

func TestFleetCloseReleasesInReverseOrder(t *testing.T) {
	var buf bytes.Buffer
	out := WithOutput(&buf)

	fl := NewFleet()
	fl.Add(NewCar("Ford", "Mustang", out))
	fl.Add(NewTruck("Volvo", out))

	assert.Equal(t, 2, fl.Len())
	assert.Equal(t, 2, fl.Active())

	buf.Reset()
	require.NoError(t, fl.Close())

	want := "Truck released\nVehicle released\nCar released\nVehicle released\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 0, fl.Active())
	assert.Equal(t, 2, fl.Len())
}

func TestFleetCloseTwice(t *testing.T) {
	fl := NewFleet()
	fl.Add(NewBike("Yamaha", WithOutput(&bytes.Buffer{})))

	require.NoError(t, fl.Close())
	err := fl.Close()
	require.Error(t, err)
	assert.True(t, errs.IsCode(err, errs.ErrFleetClosed))
}

func TestFleetHonkAll(t *testing.T) {
	var buf bytes.Buffer
	out := WithOutput(&buf)

	fl := NewFleet()
	fl.Add(NewCar("Ford", "Mustang", out))
	fl.Add(NewBike("Yamaha", out))
	fl.Add(NewTruck("Volvo", out))

	buf.Reset()
	fl.HonkAll()
	assert.Equal(t, "Tuut, tuut!\nPeep, peep!\nHoooonk!\n", buf.String())
}
