package pawns

import "fmt"

// Score packs a middlegame and an endgame value into one int64 so both
// phases accumulate in a single addition.
type Score int64

func (s Score) Mg() int {
	return int(int32((s + 1<<31) >> 32))
}

func (s Score) Eg() int {
	return int(int32(s))
}

func S(middle, end int) Score {
	return Score(middle)<<32 + Score(end)
}

// Div divides the phases separately. Dividing the packed value would
// let one phase bleed into the other for mixed signs.
func (s Score) Div(n int) Score {
	return S(s.Mg()/n, s.Eg()/n)
}

func (s Score) String() string {
	return fmt.Sprintf("Score(%d, %d)", s.Mg(), s.Eg())
}
