package fuzztests

import (
	"context"
	"testing"
	"time"

	"prag/internal/diag"
	"prag/internal/parser"
	"prag/internal/testkit"
)

// parseTimeout bounds a single parse. Anything slower on one line is
// an infinite loop, not a slow directive.
const parseTimeout = 5 * time.Second

func FuzzParseLine(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		bag := diag.NewBag(64)
		d, err := parser.ParseLine(string(input), parser.Options{
			Reporter: diag.BagReporter{Bag: bag},
		})

		if (d == nil) == (err == nil) {
			t.Fatalf("want exactly one of directive and error, got %v / %v", d, err)
		}
		if err != nil {
			if !bag.HasErrors() {
				t.Fatalf("parse error %v not mirrored to the reporter", err)
			}
			return
		}
		if invErr := testkit.CheckDirectiveInvariants(d); invErr != nil {
			t.Fatalf("invariants broken on %q: %v", input, invErr)
		}
		if rtErr := testkit.CheckRenderFixedPoint(d); rtErr != nil {
			t.Fatalf("round trip broken on %q: %v", input, rtErr)
		}
	})
}

// FuzzParseLineNoHang watches for inputs that stall the parser. Deeply
// nested variants and unbalanced groups have been the usual suspects.
func FuzzParseLineNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("#pragma omp metadirective when(user={condition(1)}: metadirective when(user={condition(2)}: parallel))"))
	f.Add([]byte("#pragma omp parallel if(((((((((((((((((((1)))))))))))))))))))"))
	f.Add([]byte("#pragma acc parallel copyin(a[0:n:2], b[1:], c[:])"))
	f.Add([]byte("!$omp parallel shared(a(1,2), b(i:j))"))

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = parser.ParseLine(string(input), parser.Options{})
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: one line took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen], []byte("...")...)
}
