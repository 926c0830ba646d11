package game

import "testing"

func TestCombo_ThreeMatchSettlesThenMiss(t *testing.T) {
	var c Combo
	for i := 0; i < 3; i++ {
		if ended := c.Settle(5); ended != 0 {
			t.Fatalf("settle %d reported ended=%d", i+1, ended)
		}
	}
	ended := c.Settle(0)
	if c.Max != 3 || c.Count != 0 {
		t.Fatalf("max=%d count=%d, want 3,0", c.Max, c.Count)
	}
	if ended != 3 {
		t.Fatalf("ended=%d, want 3", ended)
	}
}

func TestCombo_MaxSurvivesShorterChains(t *testing.T) {
	var c Combo
	c.Settle(1)
	c.Settle(1)
	c.Settle(0)
	c.Settle(1)
	c.Settle(0)
	if c.Max != 2 {
		t.Fatalf("max=%d, want 2", c.Max)
	}
	c.Reset()
	if c.Max != 0 || c.Count != 0 {
		t.Fatal("reset should clear both counters")
	}
}

func TestSelection_AdjacentPairResolves(t *testing.T) {
	var s Selection
	s.Add(Pos{2, 2})
	if _, _, ok := s.Resolve(); ok {
		t.Fatal("single pick should not resolve")
	}
	s.Add(Pos{2, 3})
	a, b, ok := s.Resolve()
	if !ok || a != (Pos{2, 2}) || b != (Pos{2, 3}) {
		t.Fatalf("resolve = %v,%v,%v", a, b, ok)
	}
	if s.Len() != 0 {
		t.Fatalf("len=%d after swap, want 0", s.Len())
	}
}

func TestSelection_NonAdjacentCollapsesToSecond(t *testing.T) {
	var s Selection
	s.Add(Pos{2, 2})
	s.Add(Pos{5, 5})
	if _, _, ok := s.Resolve(); ok {
		t.Fatal("non-adjacent pair should not resolve")
	}
	p := s.Pending()
	if len(p) != 1 || p[0] != (Pos{5, 5}) {
		t.Fatalf("pending=%v, want [(5,5)]", p)
	}
}

func TestSelection_ThirdPickReplacesSecond(t *testing.T) {
	var s Selection
	s.Add(Pos{2, 2})
	s.Add(Pos{6, 6})
	s.Add(Pos{2, 3})
	a, b, ok := s.Resolve()
	if !ok || a != (Pos{2, 2}) || b != (Pos{2, 3}) {
		t.Fatalf("resolve = %v,%v,%v, want (2,2),(2,3)", a, b, ok)
	}
}
