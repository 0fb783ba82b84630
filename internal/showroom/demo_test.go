package showroom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTranscript(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf))

	want := strings.Join([]string{
		"Vehicle created with brand",
		"Vehicle Brand: Generic",
		"Vehicle makes a sound.",
		Separator,
		"Vehicle created with brand",
		"Car: Ford Mustang",
		"Tuut, tuut!",
		Separator,
		"Vehicle created with brand",
		"Bike Brand: Yamaha",
		"Peep, peep!",
		Separator,
		"Vehicle created with brand",
		"Truck Brand: Volvo",
		"Hoooonk!",
		"Truck engine roars!",
		Separator,
		"Vehicle created with brand",
		"Vehicle created with brand",
		"Tuut, tuut!",
		"Peep, peep!",
		"Car released",
		"Vehicle released",
		"Bike released",
		"Vehicle released",
		"Truck released",
		"Vehicle released",
		"Bike released",
		"Vehicle released",
		"Car released",
		"Vehicle released",
		"Vehicle released",
		"",
	}, "\n")

	assert.Equal(t, want, buf.String())
}

func TestRunHonksResolveToOverrides(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf))
	out := buf.String()

	// The base-handle section honks a Car then a Bike; neither line may be
	// the generic vehicle sound.
	tail := out[strings.LastIndex(out, Separator):]
	assert.Contains(t, tail, "Tuut, tuut!")
	assert.Contains(t, tail, "Peep, peep!")
	assert.Equal(t, 1, strings.Count(out, "Vehicle makes a sound."),
		"only the bare Vehicle honks generically")
}
