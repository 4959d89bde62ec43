package transform

import (
	"strconv"
	"testing"
)

func BenchmarkRotate(b *testing.B) {
	for _, n := range []int{501, 4097, 16385} {
		x := testPulse(n, n/2, 16)
		y := testPulse(n, n/2, 16)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _, _ = Rotate(x, y, 30)
			}
		})
	}
}

func BenchmarkSplit(b *testing.B) {
	for _, n := range []int{501, 4097, 16385} {
		x := testPulse(n, n/2, 16)
		y := testPulse(n, n/2, 16)

		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _, _ = Split(x, y, 30, 10)
			}
		})
	}
}

func BenchmarkNoise(b *testing.B) {
	for _, n := range []int{501, 4097} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = Noise(n, 0.03, 4, 1)
			}
		})
	}
}
