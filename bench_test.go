package oneaway_test

import (
	"testing"

	"github.com/kezabelle/oneaway"
)

// drain pulls a full sequence, discarding output.
func drain(b *testing.B, g oneaway.Generator, token string) {
	b.Helper()
	for _, err := range g(token) {
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDroppedLetter measures single-generator enumeration.
func BenchmarkDroppedLetter(b *testing.B) {
	const token = "characteristically"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		drain(b, oneaway.DroppedLetter, token)
	}
}

// BenchmarkCommon measures the three-generator preset end to end.
func BenchmarkCommon(b *testing.B) {
	const token = "characteristically"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		drain(b, oneaway.Common, token)
	}
}

// BenchmarkMix adds the vertical table on top of Common.
func BenchmarkMix(b *testing.B) {
	const token = "characteristically"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		drain(b, oneaway.Mix, token)
	}
}

// BenchmarkCommon_EarlyStop measures pulling only the first variant,
// the lazy-consumption fast path.
func BenchmarkCommon_EarlyStop(b *testing.B) {
	const token = "characteristically"
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for variant, err := range oneaway.Common(token) {
			if err != nil {
				b.Fatal(err)
			}
			_ = variant

			break
		}
	}
}
