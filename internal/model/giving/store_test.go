package giving

import "testing"

func TestMemoryStoreFindByID(t *testing.T) {
	store := NewMemoryStore(Seed())

	level, ok := store.FindByID("champion")
	if !ok {
		t.Fatal("expected champion level")
	}
	if level.Amount != 100 {
		t.Fatalf("unexpected amount: %d", level.Amount)
	}

	if _, ok := store.FindByID("missing"); ok {
		t.Fatal("expected missing level lookup to fail")
	}
}

func TestMemoryStoreListIsCopy(t *testing.T) {
	store := NewMemoryStore(Seed())

	levels := store.List()
	levels[0].Amount = 1

	if got := store.List()[0].Amount; got != 25 {
		t.Fatalf("store mutated through List: %d", got)
	}
}
