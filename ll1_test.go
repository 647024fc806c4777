package ll1

import "testing"

func TestSpanExtend(t *testing.T) {
	s := Span{3, 5}
	x := s.Extend(Span{1, 4})
	if x.From() != 1 || x.To() != 5 {
		t.Errorf("expected span (1…5), is %v", x)
	}
	if x.Len() != 4 {
		t.Errorf("expected length of %v to be 4, is %d", x, x.Len())
	}
}

func TestSpanNull(t *testing.T) {
	if !(Span{2, 2}).IsNull() {
		t.Errorf("expected (2…2) to be a null span")
	}
	if (Span{2, 3}).IsNull() {
		t.Errorf("expected (2…3) to not be a null span")
	}
	if s := (Span{0, 7}).String(); s != "(0…7)" {
		t.Errorf("expected span string (0…7), is %s", s)
	}
}
