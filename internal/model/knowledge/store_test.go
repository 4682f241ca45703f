package knowledge

import (
	"strings"
	"testing"
)

func TestSearchWaterFact(t *testing.T) {
	store := NewMemoryStore(Seed())

	got := store.Search("Сколько нужно пить воды? вода важна", DefaultSearchLimit)
	if !strings.Contains(got, "Пейте 8 стаканов воды") {
		t.Fatalf("expected water fact, got %q", got)
	}
}

func TestSearchCapsAtThree(t *testing.T) {
	store := NewMemoryStore(Seed())

	// the category token matches every topic of "питание"
	got := store.Lookup("расскажи про питание", DefaultSearchLimit)
	if len(got) != 3 {
		t.Fatalf("expected 3 facts, got %d: %v", len(got), got)
	}
	if !strings.HasPrefix(got[0], "вода: ") || !strings.HasPrefix(got[2], "витамины: ") {
		t.Fatalf("matches must follow table order, got %v", got)
	}
	if joined := store.Search("расскажи про питание", DefaultSearchLimit); joined != strings.Join(got, " ") {
		t.Fatalf("Search must join Lookup results, got %q", joined)
	}
}

func TestSearchNoMatch(t *testing.T) {
	store := NewMemoryStore(Seed())
	if got := store.Search("hello there", 0); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
}

func TestFindCategoryCaseInsensitive(t *testing.T) {
	store := NewMemoryStore(Seed())

	category, ok := store.FindCategory("  ФИТНЕС ")
	if !ok {
		t.Fatal("expected category to be found")
	}
	if len(category.Topics) != 5 {
		t.Fatalf("unexpected topics: %d", len(category.Topics))
	}
	if _, ok := store.FindCategory("магия"); ok {
		t.Fatal("unexpected category match")
	}
}
