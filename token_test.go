package idioms

import "testing"

func TestSpanExtend(t *testing.T) {
	s := Span{3, 5}
	if e := s.Extend(Span{1, 4}); e != (Span{1, 5}) {
		t.Errorf("expected (1…5), is %s", e)
	}
	if e := s.Extend(Span{4, 9}); e != (Span{3, 9}) {
		t.Errorf("expected (3…9), is %s", e)
	}
	if e := (Span{}).Extend(s); e != s {
		t.Errorf("expected null span to extend to %s, is %s", s, e)
	}
	if s.Len() != 2 {
		t.Errorf("expected length of %s to be 2, is %d", s, s.Len())
	}
}
