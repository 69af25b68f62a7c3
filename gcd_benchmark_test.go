package archimedes_test

import (
	"fmt"
	"testing"

	"github.com/kbolino/archimedes"
)

func BenchmarkGCD(b *testing.B) {
	for _, c := range GCDCases {
		b.Run(fmt.Sprintf("GCD(%d,%d)", c.A, c.B), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				archimedes.GCD(c.A, c.B)
			}
		})
	}
}
