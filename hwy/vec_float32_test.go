package hwy

import "testing"

func requireFloat32x8(t testing.TB) {
	t.Helper()
	if !Float32x8Supported() {
		t.Skip("Float32x8 needs AVX2 on this build")
	}
}

func TestLoadFloat32x8(t *testing.T) {
	requireFloat32x8(t)
	data := []float32{1, 2, 3, 4, 5, 6, 7, 8, 9}
	got := lanes8(LoadFloat32x8(data))

	for i := range got {
		if got[i] != data[i] {
			t.Errorf("LoadFloat32x8: lane %d: got %v, want %v", i, got[i], data[i])
		}
	}
}

func TestLoadFloat32x8ShortPanics(t *testing.T) {
	requireFloat32x8(t)
	defer func() {
		if recover() == nil {
			t.Error("LoadFloat32x8 on a 7-element slice should panic")
		}
	}()
	LoadFloat32x8(make([]float32, 7))
}

func TestLoadFloat32x4(t *testing.T) {
	v := LoadFloat32x4([]float32{1, 2, 3, 4, 5})
	if v != (Float32x4{1, 2, 3, 4}) {
		t.Errorf("LoadFloat32x4 = %v, want [1 2 3 4]", v)
	}
}

func TestMulAddFloat32x8(t *testing.T) {
	requireFloat32x8(t)
	a := []float32{1, 2, 3, 4, 5, 6, 7, 8}
	b := LoadFloat32x8([]float32{2, 2, 2, 2, 2, 2, 2, 2})
	c := LoadFloat32x8([]float32{1, 1, 1, 1, 1, 1, 1, 1})
	result := lanes8(LoadFloat32x8(a).MulAdd(b, c))

	for i := range result {
		want := a[i]*2 + 1
		if result[i] != want {
			t.Errorf("MulAdd: lane %d: got %v, want %v", i, result[i], want)
		}
	}
}

func TestAddFloat32x8(t *testing.T) {
	requireFloat32x8(t)
	a := LoadFloat32x8([]float32{1, 2, 3, 4, 5, 6, 7, 8})
	b := LoadFloat32x8([]float32{8, 7, 6, 5, 4, 3, 2, 1})
	for i, got := range lanes8(a.Add(b)) {
		if got != 9 {
			t.Errorf("Add: lane %d: got %v, want 9", i, got)
		}
	}
}

func TestMulAddFloat32x4(t *testing.T) {
	a := Float32x4{1, -2, 3, -4}
	b := Float32x4{3, 3, 3, 3}
	c := Float32x4{0.5, 0.5, 0.5, 0.5}
	result := a.MulAdd(b, c)

	for i := range result {
		want := a[i]*3 + 0.5
		if result[i] != want {
			t.Errorf("MulAdd: lane %d: got %v, want %v", i, result[i], want)
		}
	}
}

func TestReduceSum(t *testing.T) {
	v4 := Float32x4{1, 2, 3, 4}
	if got := v4.ReduceSum(); got != 10 {
		t.Errorf("Float32x4.ReduceSum() = %v, want 10", got)
	}

	requireFloat32x8(t)
	v8 := LoadFloat32x8([]float32{1, 2, 3, 4, 5, 6, 7, 8})
	if got := v8.ReduceSum(); got != 36 {
		t.Errorf("Float32x8.ReduceSum() = %v, want 36", got)
	}
}

// The pairwise order keeps small lanes from being absorbed by a large one
// when they are summed together first.
func TestReduceSumPairwiseOrder(t *testing.T) {
	requireFloat32x8(t)
	v := LoadFloat32x8([]float32{1 << 24, 1, 1, 1, -(1 << 24), 1, 1, 1})
	// The halves fold (1<<24)+(-(1<<24)) = 0 in lane 0 before anything else.
	if got := v.ReduceSum(); got != 6 {
		t.Errorf("ReduceSum() = %v, want 6", got)
	}
}

func TestNativeFloat32x8(t *testing.T) {
	t.Logf("NativeFloat32x8=%t Float32x8Supported=%t", NativeFloat32x8, Float32x8Supported())
	if !NativeFloat32x8 && !Float32x8Supported() {
		t.Error("the array Float32x8 must be supported everywhere")
	}
}

func BenchmarkReduceSum(b *testing.B) {
	requireFloat32x8(b)
	v := LoadFloat32x8([]float32{1, 2, 3, 4, 5, 6, 7, 8})
	var sink float32
	for i := 0; i < b.N; i++ {
		sink += v.ReduceSum()
	}
	_ = sink
}

func BenchmarkMulAddFloat32x8(b *testing.B) {
	requireFloat32x8(b)
	x := LoadFloat32x8([]float32{1, 2, 3, 4, 5, 6, 7, 8})
	var acc Float32x8
	for i := 0; i < b.N; i++ {
		acc = x.MulAdd(x, acc)
	}
	_ = acc.ReduceSum()
}
