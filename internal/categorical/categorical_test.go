package categorical

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFit_SortedCodes(t *testing.T) {
	m := Fit([]string{"WNW", "N", "SE", "N", "E"})

	assert.Equal(t, []string{"E", "N", "SE", "WNW"}, m.Classes())
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, 0, m.Encode("E"))
	assert.Equal(t, 1, m.Encode("N"))
	assert.Equal(t, 2, m.Encode("SE"))
	assert.Equal(t, 3, m.Encode("WNW"))
}

func TestEncode_TotalOverFittedValues(t *testing.T) {
	values := []string{"No", "Yes", "Yes", "No", "No"}
	m := Fit(values)

	for _, v := range values {
		assert.NotEqual(t, Unseen, m.Encode(v), v)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	values := []string{"SSW", "N", "ENE", "N", "SSW", "W"}

	first := Fit(values).EncodeAll(values)
	for range 5 {
		assert.Equal(t, first, Fit(values).EncodeAll(values))
	}
}

func TestEncode_Unseen(t *testing.T) {
	m := Fit([]string{"N", "S"})
	assert.Equal(t, Unseen, m.Encode("NE"))
	assert.Equal(t, Unseen, m.Encode(""))
}

func TestDecode(t *testing.T) {
	m := Fit([]string{"Yes", "No"})

	v, ok := m.Decode(1)
	assert.True(t, ok)
	assert.Equal(t, "Yes", v)

	_, ok = m.Decode(Unseen)
	assert.False(t, ok)
	_, ok = m.Decode(2)
	assert.False(t, ok)
}

func TestFit_CallerSliceUntouched(t *testing.T) {
	values := []string{"b", "a"}
	Fit(values)
	assert.Equal(t, []string{"b", "a"}, values)
}
