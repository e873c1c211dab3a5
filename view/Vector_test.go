package view

import (
	"fmt"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/goslice/slice"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

func mustParse(t testing.TB, expr string) slice.Descriptor {
	t.Helper()
	d, err := slice.Parse(expr)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// materialize slices values by d, copying the result
func materialize(values []float64, d slice.Descriptor) []float64 {
	idx := slice.Normalize(d, len(values))
	out := make([]float64, idx.Size())
	for i := range out {
		out[i] = values[idx.Get(i)]
	}
	return out
}

func randDescriptor(rng *rand.Rand) slice.Descriptor {
	bound := func() slice.Bound {
		if rng.Intn(4) == 0 {
			return slice.Unbounded
		}
		return slice.At(rng.Intn(31) - 15)
	}

	if rng.Intn(2) == 0 {
		return slice.NewContiguous(bound(), bound())
	}
	step := rng.Intn(3) + 1
	if rng.Intn(2) == 0 {
		step = -step
	}
	return slice.Must(slice.New(bound(), bound(), slice.At(step)))
}

func TestSliceReverseWindow(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	v := New(data).Slice(mustParse(t, "2:8")).Slice(mustParse(t, "::-1"))

	want := []float64{7, 6, 5, 4, 3, 2}
	if have := v.Values(); !floats.Equal(want, have) {
		t.Errorf("values: \n\twant(%v)\n\thave(%v)", want, have)
	}
	if d := v.Descriptor().String(); d != "7:1:-1" {
		t.Errorf("descriptor: want(7:1:-1) have(%v)", d)
	}
}

// TestSliceFallback checks a chain which cannot be composed without the
// length of the data
func TestSliceFallback(t *testing.T) {
	data := make([]float64, 11)
	for i := range data {
		data[i] = float64(i)
	}

	v := New(data).Slice(mustParse(t, "::2")).Slice(mustParse(t, "::-1"))
	want := []float64{10, 8, 6, 4, 2, 0}
	if have := v.Values(); !floats.Equal(want, have) {
		t.Errorf("values: \n\twant(%v)\n\thave(%v)", want, have)
	}
}

func TestSliceRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for trial := 0; trial < 2000; trial++ {
		n := rng.Intn(30)
		data := make([]float64, n)
		for i := range data {
			data[i] = rng.NormFloat64()
		}

		v := New(data)
		want := data
		for depth := 0; depth < 4; depth++ {
			d := randDescriptor(rng)
			v = v.Slice(d)
			want = materialize(want, d)

			if have := v.Values(); !floats.Equal(want, have) {
				t.Fatalf("values after [%v] on length %d: \n\twant(%v)"+
					"\n\thave(%v)", d, n, want, have)
			}
		}

		if v.Len() == 0 {
			continue
		}

		if i, err := v.ArgMax(); err != nil || i != floats.MaxIdx(want) {
			t.Errorf("argMax: want(%v) have(%v, %v)", floats.MaxIdx(want), i,
				err)
		}
		if i, err := v.ArgMin(); err != nil || i != floats.MinIdx(want) {
			t.Errorf("argMin: want(%v) have(%v, %v)", floats.MinIdx(want), i,
				err)
		}
		if math.Abs(v.Sum()-floats.Sum(want)) > 1e-12 {
			t.Errorf("sum: want(%v) have(%v)", floats.Sum(want), v.Sum())
		}
	}
}

func TestSetVec(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5}
	v := New(data).Slice(mustParse(t, "::-2"))

	v.SetVec(0, -5)
	v.SetVec(2, -1)
	want := []float64{0, -1, 2, 3, 4, -5}
	if !floats.Equal(want, data) {
		t.Errorf("setVec: \n\twant(%v)\n\thave(%v)", want, data)
	}
}

func TestAccessPanics(t *testing.T) {
	v := New([]float64{1, 2, 3}).Slice(mustParse(t, "1:"))

	tests := []struct {
		name string
		f    func()
		want error
	}{
		{"atVec", func() { v.AtVec(2) }, mat.ErrVectorAccess},
		{"atVec", func() { v.AtVec(-1) }, mat.ErrVectorAccess},
		{"setVec", func() { v.SetVec(2, 0) }, mat.ErrVectorAccess},
		{"at", func() { v.At(0, 1) }, mat.ErrColAccess},
	}

	for _, test := range tests {
		func() {
			defer func() {
				if r := recover(); r != test.want {
					t.Errorf("%v: want panic(%v) have(%v)", test.name,
						test.want, r)
				}
			}()
			test.f()
		}()
	}
}

func TestMatVector(t *testing.T) {
	v := New([]float64{1, 2, 3, 4, 5}).Slice(mustParse(t, "1:4"))

	if r, c := v.Dims(); r != 3 || c != 1 {
		t.Errorf("dims: want(3, 1) have(%v, %v)", r, c)
	}
	if r, c := v.T().Dims(); r != 1 || c != 3 {
		t.Errorf("t: want(1, 3) have(%v, %v)", r, c)
	}

	// Views interoperate with gonum
	dot := mat.Dot(v, mat.NewVecDense(3, []float64{1, 1, 1}))
	if dot != 9 {
		t.Errorf("dot: want(9) have(%v)", dot)
	}

	want := mat.NewVecDense(3, []float64{2, 3, 4})
	if !mat.Equal(want, v.VecDense()) {
		t.Errorf("vecDense: want(%v) have(%v)", want, v.VecDense())
	}
	if v.Mean() != 3 {
		t.Errorf("mean: want(3) have(%v)", v.Mean())
	}
}

func TestExtremes(t *testing.T) {
	data := []float64{4, 0, -1, 9, 4, 2, -1, 8, 4}
	v := New(data).Slice(mustParse(t, "::-2"))

	// v is [4 -1 4 -1 4]
	max, maxIndices, err := v.Max()
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 2, 4}; max != 4 || !equalInts(want, maxIndices) {
		t.Errorf("max: want(4, %v) have(%v, %v)", want, max, maxIndices)
	}

	min, minIndices, err := v.Min()
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 3}; min != -1 || !equalInts(want, minIndices) {
		t.Errorf("min: want(-1, %v) have(%v, %v)", want, min, minIndices)
	}

	// [9 2 8]
	_, maxIndices, _ = New(data).Slice(mustParse(t, "3:8:2")).Max()
	if want := []int{0}; !equalInts(want, maxIndices) {
		t.Errorf("max: \n\twant(%v)\n\thave(%v)", want, maxIndices)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEmpty(t *testing.T) {
	v := New([]float64{1, 2, 3}).Slice(mustParse(t, "2:1"))

	if v.Len() != 0 || v.VecDense().Len() != 0 {
		t.Errorf("len: want(0) have(%v)", v.Len())
	}
	if _, err := v.ArgMax(); !errors.Is(err, ErrEmpty) {
		t.Errorf("argMax: want ErrEmpty have(%v)", err)
	}
	if _, err := v.ArgMin(); !errors.Is(err, ErrEmpty) {
		t.Errorf("argMin: want ErrEmpty have(%v)", err)
	}
	if _, err := v.Interval(); !errors.Is(err, ErrEmpty) {
		t.Errorf("interval: want ErrEmpty have(%v)", err)
	}
	if _, _, err := v.Max(); !errors.Is(err, ErrEmpty) {
		t.Errorf("max: want ErrEmpty have(%v)", err)
	}
	if _, _, err := v.Min(); !errors.Is(err, ErrEmpty) {
		t.Errorf("min: want ErrEmpty have(%v)", err)
	}
	if !math.IsNaN(v.Mean()) {
		t.Errorf("mean: want(NaN) have(%v)", v.Mean())
	}
}

func TestNaN(t *testing.T) {
	data := []float64{3, math.NaN(), -2, 7}
	v := New(data).Slice(mustParse(t, "::-1"))

	if i, _ := v.ArgMax(); i != 2 {
		t.Errorf("argMax: want(2) have(%v)", i)
	}
	if i, _ := v.ArgMin(); i != 2 {
		t.Errorf("argMin: want(2) have(%v)", i)
	}
	if i, _ := v.Interval(); i.Min != -2 || i.Max != 7 {
		t.Errorf("interval: want([-2, 7]) have(%v)", i)
	}
}

func TestClip(t *testing.T) {
	data := []float64{-4, 9, -4, 9, -4, 9}
	v := New(data).Slice(mustParse(t, "1::2"))

	v.Clip(r1.Interval{Min: 0, Max: 5})
	want := []float64{-4, 5, -4, 5, -4, 5}
	if !floats.Equal(want, data) {
		t.Errorf("clip: \n\twant(%v)\n\thave(%v)", want, data)
	}
}

func BenchmarkSlice(b *testing.B) {
	data := make([]float64, 1000)
	window := slice.NewContiguous(slice.At(10), slice.At(-10))
	reverse := slice.Must(slice.New(slice.Unbounded, slice.Unbounded,
		slice.At(-1)))

	for i := 0; i < b.N; i++ {
		New(data).Slice(window).Slice(reverse)
	}
}

func ExampleVector_Slice() {
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	window := slice.NewContiguous(slice.At(2), slice.At(8))
	reverse := slice.Must(slice.New(slice.Unbounded, slice.Unbounded,
		slice.At(-1)))

	v := New(data).Slice(window).Slice(reverse)
	fmt.Println(v.Descriptor(), v.Values())
	// Output: 7:1:-1 [7 6 5 4 3 2]
}
