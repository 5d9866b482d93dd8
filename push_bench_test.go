package tendril

import "testing"

// BenchmarkPushBufferInline measures repeated small pushes that never leave
// the inline form.
func BenchmarkPushBufferInline(b *testing.B) {
	chunk := []byte("ab")
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		tr := New()
		PushBuffer(&tr, chunk)
		PushBuffer(&tr, chunk)
		Destroy(&tr)
	}
}

// BenchmarkPushBufferGrowth measures a Tendril growing from empty past the
// inline threshold and through several doublings of owned capacity.
func BenchmarkPushBufferGrowth(b *testing.B) {
	chunk := make([]byte, 32)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		tr := New()
		for j := 0; j < 16; j++ {
			if err := PushBuffer(&tr, chunk); err != nil {
				b.Fatal(err)
			}
		}
		Destroy(&tr)
	}
}

// BenchmarkCloneShared measures Clone of a heap-backed Tendril. The first
// call promotes the owned source to shared; every later call takes the
// already-shared path.
func BenchmarkCloneShared(b *testing.B) {
	src := New()
	if err := PushBuffer(&src, make([]byte, 64)); err != nil {
		b.Fatal(err)
	}
	defer Destroy(&src)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var clone Tendril
		Clone(&clone, &src)
		Destroy(&clone)
	}
}
