package search

import (
	"testing"
)

// ---------- Options + defaultConfig ----------
func TestOptionsAndDefaults(t *testing.T) {
	def := defaultConfig()
	if def.minRunes != 0 || def.stopwords != nil || def.maxDocs != 0 {
		t.Fatalf("defaultConfig unexpected: %#v", def)
	}

	cfg := def
	WithMinRunes(10)(&cfg)
	if cfg.minRunes != 10 {
		t.Fatalf("WithMinRunes failed: %d", cfg.minRunes)
	}
	WithMinRunes(-5)(&cfg) // no-op
	if cfg.minRunes != 10 {
		t.Fatalf("negative minRunes should be ignored")
	}

	WithStopwords([]string{"  The ", "", "An"})(&cfg)
	if _, ok := cfg.stopwords["the"]; !ok {
		t.Fatalf("WithStopwords failed (missing 'the'): %#v", cfg.stopwords)
	}
	if _, ok := cfg.stopwords["an"]; !ok {
		t.Fatalf("WithStopwords failed (missing 'an'): %#v", cfg.stopwords)
	}

	cfg2 := def
	WithStopwords(nil)(&cfg2)
	if cfg2.stopwords != nil {
		t.Fatalf("empty stopwords should remain nil")
	}

	WithMaxDocs(2)(&cfg)
	if cfg.maxDocs != 2 {
		t.Fatalf("WithMaxDocs failed: %d", cfg.maxDocs)
	}
	WithMaxDocs(0)(&cfg) // no-op
	if cfg.maxDocs != 2 {
		t.Fatalf("non-positive maxDocs should be ignored")
	}
}

func catalogDocs() []Document {
	return []Document{
		{ID: "p1", Text: "Ankara Midi Dress Traditional print, modern silhouette african-prints Ankara Cotton"},
		{ID: "p2", Text: "Kitenge Shirt Casual elegance for any occasion african-prints Kitenge Cotton"},
		{ID: "p3", Text: "Executive Blazer Professional with African flair suits Wool Blend"},
		{ID: "p4", Text: "Traditional Set Cultural heritage meets modern design traditional Traditional Cotton"},
	}
}

func TestTopK_RanksBestMatchFirst(t *testing.T) {
	idx := New(catalogDocs(), WithStopwords(DefaultStopwords))
	if idx.Len() != 4 {
		t.Fatalf("Len = %d; want 4", idx.Len())
	}

	res := idx.TopK("wool blazer", 2)
	if len(res) != 1 || res[0].ID != "p3" {
		t.Fatalf("expected only p3, got %+v", res)
	}
	if res[0].Score <= 0 || res[0].Score > 1 {
		t.Fatalf("score out of range: %v", res[0].Score)
	}

	res = idx.TopK("cotton", 10)
	if len(res) != 3 {
		t.Fatalf("expected 3 cotton matches, got %+v", res)
	}
	for i := 1; i < len(res); i++ {
		if res[i-1].Score < res[i].Score {
			t.Fatalf("results not sorted by score: %+v", res)
		}
	}
}

func TestTopK_CaseFoldingAndDefaults(t *testing.T) {
	idx := New(catalogDocs())

	upper := idx.TopK("KITENGE", 0) // k<=0 → default 3
	lower := idx.TopK("kitenge", 0)
	if len(upper) != 1 || len(lower) != 1 || upper[0].ID != "p2" || lower[0] != upper[0] {
		t.Fatalf("case folding mismatch: upper=%+v lower=%+v", upper, lower)
	}
}

func TestTopK_EmptyInputs(t *testing.T) {
	if got := New(nil).TopK("dress", 3); got != nil {
		t.Fatalf("empty index should return nil, got %+v", got)
	}
	idx := New(catalogDocs())
	if got := idx.TopK("   ", 3); got != nil {
		t.Fatalf("blank query should return nil, got %+v", got)
	}
	if got := idx.TopK("!!! ???", 3); got != nil {
		t.Fatalf("query without tokens should return nil, got %+v", got)
	}
	if got := idx.TopK("zebra", 3); got != nil {
		t.Fatalf("no overlap should return nil, got %+v", got)
	}
	stop := New(catalogDocs(), WithStopwords([]string{"the"}))
	if got := stop.TopK("the", 3); got != nil {
		t.Fatalf("stopword-only query should return nil, got %+v", got)
	}
}

func TestNew_SkipsAndCaps(t *testing.T) {
	docs := []Document{
		{ID: "blank", Text: "   "},
		{ID: "short", Text: "abc"},
		{ID: "symbols", Text: "!!! ???"},
		{ID: "a", Text: "long enough document one"},
		{ID: "b", Text: "long enough document two"},
	}
	idx := New(docs, WithMinRunes(5))
	if idx.Len() != 2 {
		t.Fatalf("expected 2 docs after filtering, got %d", idx.Len())
	}
	capped := New(docs, WithMaxDocs(1))
	if capped.Len() != 1 {
		t.Fatalf("expected cap of 1, got %d", capped.Len())
	}
}

func TestTopK_TieBreakByLengthThenID(t *testing.T) {
	docs := []Document{
		{ID: "z", Text: "silk scarf"},
		{ID: "a", Text: "silk scarf"},
		{ID: "m", Text: "silk scarf long"},
	}
	res := New(docs).TopK("silk scarf", 3)
	if len(res) != 3 {
		t.Fatalf("expected 3 results, got %+v", res)
	}
	if res[0].ID != "a" || res[1].ID != "z" || res[2].ID != "m" {
		t.Fatalf("unexpected tie-break order: %+v", res)
	}
}

func TestOverlap(t *testing.T) {
	a := map[string]struct{}{"x": {}, "y": {}}
	b := map[string]struct{}{"y": {}, "z": {}, "w": {}}
	if n := overlap(a, b); n != 1 {
		t.Fatalf("overlap = %d; want 1", n)
	}
	if n := overlap(nil, b); n != 0 {
		t.Fatalf("overlap with nil = %d; want 0", n)
	}
}
