package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB cap on corpus entries
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addDirectiveSeeds(f)
}

// addTestdataSeeds feeds every sample source under testdata/ into the
// corpus, whole files included, so the harnesses see directives
// surrounded by real code.
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
	f.Add([]byte{})
}

// addDirectiveSeeds plants one line per interesting corner: all three
// source languages, both dialects, modifiers, sections, selectors and
// the malformed shapes the parser must reject cleanly.
func addDirectiveSeeds(f *testing.F) {
	for _, line := range []string{
		"#pragma omp parallel",
		"#pragma omp parallel for simd collapse(2) schedule(dynamic, 4)",
		"#pragma omp parallel private(a, b) reduction(+: sum) if(parallel: n > 10)",
		"#pragma omp target map(tofrom: a[0:n]) depend(iterator(i=0:n), in: x[i])",
		"#pragma omp declare reduction(merge : T : omp_out += omp_in) initializer(omp_priv = 0)",
		"#pragma omp metadirective when(device={arch(\"gpu\")}: target teams) otherwise(parallel)",
		"#pragma omp critical(name) hint(omp_sync_hint_speculative)",
		"#pragma acc parallel loop gang vector(128) reduction(max: err)",
		"#pragma acc data copyin(a[0:n]) copyout(b[0:n]) async(2)",
		"#pragma acc wait(1) if_present",
		"!$omp parallel do schedule(guided)",
		"!$OMP PARALLEL DEFAULT(NONE) SHARED(A)",
		"!$acc kernels loop independent",
		"c$omp do ordered",
		"*$acc update self(x)",
		"!$omp parallel do &",
		"#pragma omp parallel for \\",
		"#pragma",
		"#pragma omp",
		"#pragma omp parallel (",
		"#pragma omp parallel private(",
		"#pragma omp parallel private()",
		"#pragma omp parallel shared(a]",
		"#pragma omp parallel num_threads(((((((1))))))",
		"#pragma ompx target",
		"!$ thread_count = 4",
	} {
		f.Add([]byte(line))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
