package compress

import (
	"testing"
)

func BenchmarkCompress(b *testing.B) {
	input := sampleStringTable(4000)
	for ct, codec := range allCodecs() {
		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := codec.Compress(input); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	input := sampleStringTable(4000)
	for ct, codec := range allCodecs() {
		compressed, err := codec.Compress(input)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(ct.String(), func(b *testing.B) {
			b.SetBytes(int64(len(input)))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := codec.Decompress(compressed, len(input)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
