package pawns

import (
	"testing"
)

func TestScore(t *testing.T) {
	var tests = []struct {
		mg, eg int
	}{
		{0, 0},
		{1, 2},
		{-3, 5},
		{7, -4},
		{-60, -52},
		{263, -16},
	}
	for i, tt := range tests {
		var s = S(tt.mg, tt.eg)
		if s.Mg() != tt.mg || s.Eg() != tt.eg {
			t.Error(i, s.Mg(), s.Eg())
		}
	}

	if S(1, 2)+S(3, 4) != S(4, 6) {
		t.Error(S(1, 2) + S(3, 4))
	}
	if S(1, 2)-S(3, 10) != S(-2, -8) {
		t.Error(S(1, 2) - S(3, 10))
	}
}

func TestScoreDiv(t *testing.T) {
	var tests = []struct {
		s    Score
		n    int
		want Score
	}{
		{S(13, 43), 1, S(13, 43)},
		{S(13, 43), 2, S(6, 21)},
		{S(-13, -43), 2, S(-6, -21)},
		{S(23, 48), 3, S(7, 16)},
		{S(-20, 48), 2, S(-10, 24)},
	}
	for i, tt := range tests {
		if got := tt.s.Div(tt.n); got != tt.want {
			t.Error(i, got, tt.want)
		}
	}
}

func TestScoreString(t *testing.T) {
	if s := S(-12, 37).String(); s != "Score(-12, 37)" {
		t.Error(s)
	}
}
