package vec

import (
	"fmt"
	"testing"

	"github.com/arloliu/zerovec/codec"
)

func BenchmarkFixed_Get(b *testing.B) {
	vals := make([]uint32, 4096)
	for i := range vals {
		vals[i] = uint32(i * 3) //nolint:gosec
	}
	s, _ := ParseFixed[uint32](codec.Uint32{}, FixedFromSlice(codec.Uint32{}, vals).Bytes())

	b.ReportAllocs()
	b.ResetTimer()
	var sum uint32
	for i := 0; b.Loop(); i++ {
		v, _ := s.Get(i & 4095)
		sum += v
	}
	_ = sum
}

func BenchmarkFixed_BinarySearch(b *testing.B) {
	vals := make([]uint32, 4096)
	for i := range vals {
		vals[i] = uint32(i * 3) //nolint:gosec
	}
	s := FixedFromSlice(codec.Uint32{}, vals).AsView()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		s.BinarySearch(uint32(i % 12288)) //nolint:gosec
	}
}

func BenchmarkVar_BinarySearch(b *testing.B) {
	for _, n := range []int{16, 1024, 65536} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			vals := make([]string, n)
			for i := range vals {
				vals[i] = fmt.Sprintf("key-%08d", i)
			}
			s, err := VarFromSlice(codec.String{}, vals)
			if err != nil {
				b.Fatal(err)
			}
			v := s.AsView()

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; b.Loop(); i++ {
				v.BinarySearch(vals[i%n])
			}
		})
	}
}

func BenchmarkVar_Insert(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		s := NewVar[string](codec.String{})
		for i := range 256 {
			s.Insert(i/2, "element")
		}
	}
}
