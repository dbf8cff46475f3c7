package semiring

import (
	"math"
	"testing"
)

func TestIntSum_MonoidLaws(t *testing.T) {
	m := IntSum{}
	if got := m.Identity(); got != 0 {
		t.Errorf("identity = %d, want 0", got)
	}
	samples := []int{-3, 0, 1, 7, 100}
	for _, a := range samples {
		if got := m.Combine(m.Identity(), a); got != a {
			t.Errorf("Combine(id, %d) = %d, want %d", a, got, a)
		}
		if got := m.Combine(a, m.Identity()); got != a {
			t.Errorf("Combine(%d, id) = %d, want %d", a, got, a)
		}
		for _, b := range samples {
			for _, c := range samples {
				left := m.Combine(m.Combine(a, b), c)
				right := m.Combine(a, m.Combine(b, c))
				if left != right {
					t.Errorf("associativity broken at (%d, %d, %d): %d != %d", a, b, c, left, right)
				}
			}
		}
	}
}

func TestCounting_SemiringLaws(t *testing.T) {
	r := Counting{}
	if r.Zero() != 0 || r.One() != 1 {
		t.Fatalf("identities = (%d, %d), want (0, 1)", r.Zero(), r.One())
	}
	samples := []int{0, 1, 2, 5}
	for _, a := range samples {
		if got := r.Add(r.Zero(), a); got != a {
			t.Errorf("Add(0, %d) = %d, want %d", a, got, a)
		}
		if got := r.Mul(r.One(), a); got != a {
			t.Errorf("Mul(1, %d) = %d, want %d", a, got, a)
		}
		if got := r.Mul(r.Zero(), a); got != 0 {
			t.Errorf("Mul(0, %d) = %d, want 0", a, got)
		}
		for _, b := range samples {
			for _, c := range samples {
				// Distributivity: a*(b+c) == a*b + a*c
				left := r.Mul(a, r.Add(b, c))
				right := r.Add(r.Mul(a, b), r.Mul(a, c))
				if left != right {
					t.Errorf("distributivity broken at (%d, %d, %d): %d != %d", a, b, c, left, right)
				}
			}
		}
	}
}

func TestProbability_Identities(t *testing.T) {
	r := Probability{}
	if r.Zero() != 0 || r.One() != 1 {
		t.Fatalf("identities = (%v, %v), want (0, 1)", r.Zero(), r.One())
	}
	if got := r.Mul(0.5, 0.25); got != 0.125 {
		t.Errorf("Mul(0.5, 0.25) = %v, want 0.125", got)
	}
	if got := r.Add(0.5, 0.25); got != 0.75 {
		t.Errorf("Add(0.5, 0.25) = %v, want 0.75", got)
	}
}

func TestTropical_Identities(t *testing.T) {
	r := Tropical{}
	if !math.IsInf(r.Zero(), 1) {
		t.Fatalf("Zero = %v, want +Inf", r.Zero())
	}
	if r.One() != 0 {
		t.Fatalf("One = %v, want 0", r.One())
	}
	// Zero is the identity of Add (min) and annihilates nothing under Mul (+Inf + x = +Inf).
	if got := r.Add(r.Zero(), 3.5); got != 3.5 {
		t.Errorf("Add(Zero, 3.5) = %v, want 3.5", got)
	}
	if got := r.Mul(r.One(), 3.5); got != 3.5 {
		t.Errorf("Mul(One, 3.5) = %v, want 3.5", got)
	}
	if got := r.Add(2, 5); got != 2 {
		t.Errorf("Add(2, 5) = %v, want 2", got)
	}
	if got := r.Mul(2, 5); got != 7 {
		t.Errorf("Mul(2, 5) = %v, want 7", got)
	}
}

func TestConcat_Combine(t *testing.T) {
	m := Concat[int]{}
	if m.Identity() != nil {
		t.Fatalf("identity = %v, want nil", m.Identity())
	}
	got := m.Combine([]int{1, 2}, []int{3})
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Combine = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Combine = %v, want %v", got, want)
		}
	}
	if m.Combine(nil, nil) != nil {
		t.Error("Combine(nil, nil) should be nil")
	}
}

func TestConcat_NoAliasing(t *testing.T) {
	m := Concat[int]{}
	a := make([]int, 1, 4)
	a[0] = 1
	got := m.Combine(a, []int{2})
	a = append(a, 99) // must not show through in got
	if got[1] != 2 {
		t.Errorf("Combine result aliased its input: got %v", got)
	}
	_ = a
}
