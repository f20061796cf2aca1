package seq

import "slices"

// DeriveDataSeed folds a batch of player IDs into a 32-bit seed using a
// polynomial rolling hash: IDs are sorted ascending, each is folded with
// hash = ((hash << 5) - hash + id) in 32-bit two's-complement arithmetic,
// and the absolute value is taken at the end. Sorting first makes the seed
// a function of the ID set, not of input order.
//
// Changing any single ID changes the result with high probability, so a
// caller seed accidentally reused across different populations does not
// silently collide.
func DeriveDataSeed(ids []int64) uint32 {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	var h int32
	for _, id := range sorted {
		h = (h << 5) - h + int32(uint32(id))
	}
	if h < 0 {
		// -MinInt32 still fits in uint32, so negation via int64 is exact.
		return uint32(-int64(h))
	}
	return uint32(h)
}

// EffectiveSeed combines an optional caller seed with the data-derived seed.
// With a caller seed present the result is callerSeed XOR dataSeed; absent,
// the data seed is used alone. Same data plus same caller seed therefore
// always yields the same effective seed, and with it the same assignment.
func EffectiveSeed(callerSeed *uint32, dataSeed uint32) uint32 {
	if callerSeed == nil {
		return dataSeed
	}
	return *callerSeed ^ dataSeed
}
