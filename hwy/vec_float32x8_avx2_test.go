//go:build amd64 && goexperiment.simd

package hwy

func lanes8(v Float32x8) [8]float32 {
	var out [8]float32
	v.v.StoreSlice(out[:])
	return out
}
