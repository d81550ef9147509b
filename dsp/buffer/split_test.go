package buffer

import "testing"

func TestSplitParts(t *testing.T) {
	s := GetSplit([]complex128{1 + 2i, -3 - 4i})
	defer PutSplit(s)

	if len(s.Re) != 2 || len(s.Im) != 2 {
		t.Fatalf("len = %d/%d, want 2/2", len(s.Re), len(s.Im))
	}
	if s.Re[0] != 1 || s.Im[0] != 2 || s.Re[1] != -3 || s.Im[1] != -4 {
		t.Fatalf("unexpected split: re=%v im=%v", s.Re, s.Im)
	}
}

func TestSplitReuseShrinks(t *testing.T) {
	s := GetSplit(make([]complex128, 16))
	PutSplit(s)

	s = GetSplit([]complex128{5i})
	defer PutSplit(s)
	if len(s.Re) != 1 || s.Re[0] != 0 || s.Im[0] != 5 {
		t.Fatalf("unexpected split: re=%v im=%v", s.Re, s.Im)
	}
}

func TestSplitEmpty(t *testing.T) {
	s := GetSplit(nil)
	defer PutSplit(s)
	if len(s.Re) != 0 || len(s.Im) != 0 {
		t.Fatalf("len = %d/%d, want 0/0", len(s.Re), len(s.Im))
	}
}
