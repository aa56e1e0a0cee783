package parser

import (
	"testing"

	"prag/internal/lexer"
	"prag/internal/source"
	"prag/internal/token"
)

// fragment lexes a clause-argument fragment with real byte offsets, so
// the gluing heuristics see what they would see in production.
func fragment(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("frag.c", []byte("#pragma omp parallel if("+src+")")))
	res, err := lexer.Tokenize(file, lexer.Options{})
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	toks := res.Tokens
	return toks[3 : len(toks)-1]
}

func runTexts(toks []token.Token, parts [][]token.Token) []string {
	out := make([]string, len(parts))
	for i, part := range parts {
		s := ""
		for _, tok := range part {
			if s != "" {
				s += " "
			}
			s += tok.Text
		}
		out[i] = s
	}
	return out
}

func expectSplit(t *testing.T, src string, sep token.Kind, want ...string) {
	t.Helper()
	toks := fragment(t, src)
	got := runTexts(toks, splitTopLevel(toks, sep))
	if len(got) != len(want) {
		t.Fatalf("split %q = %q, want %q", src, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("split %q = %q, want %q", src, got, want)
		}
	}
}

func TestSplitCommaRespectsGroups(t *testing.T) {
	expectSplit(t, "f(a, b), c[d, e], g", token.Comma, "f ( a , b )", "c [ d , e ]", "g")
}

func TestSplitKeepsEmptyRuns(t *testing.T) {
	expectSplit(t, "a,,b", token.Comma, "a", "", "b")
}

func TestSplitColonSkipsTernary(t *testing.T) {
	expectSplit(t, "a ? b : c", token.Colon, "a ? b : c")
	expectSplit(t, "cond ? x : y : tail", token.Colon, "cond ? x : y", "tail")
	expectSplit(t, "tag : value", token.Colon, "tag", "value")
}

func TestSplitColonSkipsScopePairs(t *testing.T) {
	// '::' reaches the splitter as one Punct token, so a qualified
	// name never splits.
	expectSplit(t, "std::vector<int>", token.Colon, "std :: vector < int >")
	expectSplit(t, "std::max : v", token.Colon, "std :: max", "v")
}

func TestSplitCommaInsideTemplateArguments(t *testing.T) {
	expectSplit(t, "pair<int, long> p, q", token.Comma, "pair < int , long > p", "q")
}

func TestSplitComparisonIsNotATemplate(t *testing.T) {
	// Spaced '<' cannot open a template list, so the comma splits.
	expectSplit(t, "a < b, c > d", token.Comma, "a < b", "c > d")
}

func TestSplitDanglingAngleRetries(t *testing.T) {
	// v<a looks like a template open but never closes; the splitter
	// rereads the run as a plain comparison.
	expectSplit(t, "v<a, b", token.Comma, "v < a", "b")
}

func TestCutTopLevel(t *testing.T) {
	toks := fragment(t, "in : x, y")
	head, tail, found := cutTopLevel(toks, token.Colon)
	if !found || len(head) != 1 || head[0].Text != "in" || len(tail) != 4 {
		t.Fatalf("cut = %v / %v / %v", head, tail, found)
	}

	toks = fragment(t, "x, y")
	head, tail, found = cutTopLevel(toks, token.Colon)
	if found || len(head) != len(toks) || tail != nil {
		t.Fatalf("cut without sep = %v / %v / %v", head, tail, found)
	}
}

func TestMatchGroup(t *testing.T) {
	toks := fragment(t, "(a, (b)) x")
	inside, rest, ok := matchGroup(toks, token.LParen, token.RParen)
	if !ok || len(inside) != 5 || len(rest) != 1 || rest[0].Text != "x" {
		t.Fatalf("matchGroup = %v / %v / %v", inside, rest, ok)
	}
}

func TestLeadingTag(t *testing.T) {
	toks := fragment(t, "num : 4")
	tag, rest, ok := leadingTag(toks)
	if !ok || tag != "num" || len(rest) != 1 {
		t.Fatalf("leadingTag = %q / %v / %v", tag, rest, ok)
	}

	// A scope pair is a qualified name, not a tag.
	toks = fragment(t, "std::err")
	if _, _, ok := leadingTag(toks); ok {
		t.Fatal("leadingTag accepted a '::' pair")
	}
}
