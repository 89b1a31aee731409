package pcomb_test

import (
	"strings"
	"testing"

	"github.com/creachadair/pcomb"
	"github.com/creachadair/pcomb/grammar"
)

func BenchmarkMany(b *testing.B) {
	input := strings.Repeat(" ", 1<<16) + "x"
	b.Logf("Benchmark input: %d bytes", len(input))

	b.Run("Spaces", func(b *testing.B) {
		for b.Loop() {
			if r := pcomb.Parse(pcomb.Spaces, input); r.Remaining() != "x" {
				b.Fatalf("Unexpected result: %v", r.Remaining())
			}
		}
	})

	b.Run("Consumed", func(b *testing.B) {
		p := pcomb.Consumed(pcomb.Spaces)
		for b.Loop() {
			if r := pcomb.Parse(p, input); !r.OK() {
				b.Fatal("Unexpected failure")
			}
		}
	})
}

func BenchmarkJSON(b *testing.B) {
	inputs := []string{
		`"` + strings.Repeat("abc ", 1024) + `"`,
		strings.Repeat("7", 18),
		"null",
	}
	for b.Loop() {
		for _, in := range inputs {
			if !pcomb.Parse(grammar.JSON, in).OK() {
				b.Fatalf("Parse %q failed", in)
			}
		}
	}
}
