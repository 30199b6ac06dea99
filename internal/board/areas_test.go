package board

import "testing"

func TestForestUnion(t *testing.T) {
	f := newForest(5)
	if !f.union(1, 2) {
		t.Fatal("union of two singletons reported no merge")
	}
	if f.union(2, 1) {
		t.Error("second union of the same pair reported a merge")
	}
	if !f.union(3, 1) {
		t.Fatal("union of {3} with {1,2} reported no merge")
	}
	if f.find(3) != f.find(2) {
		t.Errorf("find(3) = %d, find(2) = %d, want equal", f.find(3), f.find(2))
	}
	if f.find(4) != 4 {
		t.Errorf("untouched node moved to %d", f.find(4))
	}
}

func TestForestUnionDirection(t *testing.T) {
	f := newForest(3)
	f.union(1, 2)
	if f[1] != 2 {
		t.Errorf("root of 1 points at %d, want 2", f[1])
	}
}

func TestForestPathCompression(t *testing.T) {
	f := newForest(6)
	for i := AreaID(1); i < 6; i++ {
		f.union(i, i+1)
	}
	if root := f.find(1); root != 6 {
		t.Fatalf("find(1) = %d, want 6", root)
	}
	for i := AreaID(1); i <= 6; i++ {
		if f[i] != 6 {
			t.Errorf("node %d points at %d after compression, want 6", i, f[i])
		}
	}
}

func TestSymbols(t *testing.T) {
	tests := []struct {
		player PlayerID
		symbol byte
	}{
		{NoPlayer, Empty},
		{1, '1'},
		{9, '9'},
		{10, 'A'},
		{35, 'Z'},
	}
	for _, test := range tests {
		if got := PlayerSymbol(test.player); got != test.symbol {
			t.Errorf("PlayerSymbol(%d) = %q, want %q", test.player, got, test.symbol)
		}
		if got := SymbolPlayer(test.symbol); got != test.player {
			t.Errorf("SymbolPlayer(%q) = %d, want %d", test.symbol, got, test.player)
		}
	}
	if got := SymbolPlayer(Nonexistent); got != NoPlayer {
		t.Errorf("SymbolPlayer(Nonexistent) = %d, want NoPlayer", got)
	}
}
