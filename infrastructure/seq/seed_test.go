package seq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveDataSeed_OrderIndependent(t *testing.T) {
	a := DeriveDataSeed([]int64{3, 1, 2})
	b := DeriveDataSeed([]int64{1, 2, 3})
	c := DeriveDataSeed([]int64{2, 3, 1})

	assert.Equal(t, a, b)
	assert.Equal(t, b, c)
}

func TestDeriveDataSeed_KnownValues(t *testing.T) {
	// hash = ((hash << 5) - hash + id) over sorted IDs, i.e. hash*31 + id.
	tests := []struct {
		name string
		ids  []int64
		want uint32
	}{
		{name: "empty", ids: nil, want: 0},
		{name: "single id", ids: []int64{7}, want: 7},
		{name: "two ids", ids: []int64{1, 2}, want: 33},   // 1*31 + 2
		{name: "three ids", ids: []int64{1, 2, 3}, want: 1026}, // 33*31 + 3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveDataSeed(tt.ids))
		})
	}
}

func TestDeriveDataSeed_SensitiveToSingleID(t *testing.T) {
	base := DeriveDataSeed([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})
	changed := DeriveDataSeed([]int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 13})

	assert.NotEqual(t, base, changed,
		"changing one ID should change the data seed for non-pathological sets")
}

func TestEffectiveSeed(t *testing.T) {
	caller := uint32(42)

	tests := []struct {
		name       string
		callerSeed *uint32
		dataSeed   uint32
		want       uint32
	}{
		{name: "no caller seed uses data seed", callerSeed: nil, dataSeed: 1026, want: 1026},
		{name: "caller seed is XORed", callerSeed: &caller, dataSeed: 1026, want: 42 ^ 1026},
		{name: "zero data seed passes caller through", callerSeed: &caller, dataSeed: 0, want: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveSeed(tt.callerSeed, tt.dataSeed))
		})
	}
}

func TestEffectiveSeed_DiffersAcrossPopulations(t *testing.T) {
	caller := uint32(42)
	popA := DeriveDataSeed([]int64{1, 2, 3, 4})
	popB := DeriveDataSeed([]int64{5, 6, 7, 8})

	assert.NotEqual(t,
		EffectiveSeed(&caller, popA),
		EffectiveSeed(&caller, popB),
		"reusing a caller seed across populations should not collide")
}
