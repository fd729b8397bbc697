package entropy

import "testing"

func TestSourceDeterministic(t *testing.T) {
	a := New(7)
	b := New(7)
	for i := 0; i < 1000; i++ {
		if a.Float() != b.Float() {
			t.Fatalf("same seed diverged at draw %d", i)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		v := s.Range(10, 20)
		if v < 10 || v >= 20 {
			t.Fatalf("Range(10, 20) = %v", v)
		}
		n := s.Between(3, 7)
		if n < 3 || n > 7 {
			t.Fatalf("Between(3, 7) = %d", n)
		}
	}
	if s.Between(5, 5) != 5 {
		t.Fatal("Between with equal bounds must return the bound")
	}
	if s.Between(9, 2) != 9 {
		t.Fatal("Between with inverted bounds must return min")
	}
}

func TestChanceExtremes(t *testing.T) {
	s := New(1)
	for i := 0; i < 100; i++ {
		if s.Chance(0) {
			t.Fatal("Chance(0) fired")
		}
		if !s.Chance(1) {
			t.Fatal("Chance(1) did not fire")
		}
	}
}
