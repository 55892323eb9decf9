package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLapTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "-:--.--"},
		{-3, "-:--.--"},
		{5.5, "0:05.50"},
		{61.234, "1:01.23"},
		{59.999, "1:00.00"},
		{754.1, "12:34.10"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatLapTime(tt.seconds), "%v", tt.seconds)
	}
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th",
		11: "11th", 12: "12th", 13: "13th",
		21: "21st", 22: "22nd", 101: "101st", 111: "111th",
	}
	for n, want := range tests {
		assert.Equal(t, want, Ordinal(n))
	}
}

func TestCountdownLabel(t *testing.T) {
	assert.Equal(t, "3", CountdownLabel(3))
	assert.Equal(t, "3", CountdownLabel(2.01))
	assert.Equal(t, "2", CountdownLabel(2))
	assert.Equal(t, "1", CountdownLabel(0.2))
	assert.Equal(t, "GO!", CountdownLabel(0))
}

func TestPetrolStationNotice(t *testing.T) {
	var n PetrolStationNotice
	assert.False(t, n.Visible())

	n.Show(80)
	assert.True(t, n.Visible())
	n.Update(1.5)
	assert.True(t, n.Visible())
	n.Update(1)
	assert.False(t, n.Visible())
	assert.Equal(t, 0.0, n.remaining)
}
