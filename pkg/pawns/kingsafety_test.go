package pawns

import (
	"testing"

	"github.com/counterchess/pawnstruct/pkg/common"
)

func TestShelterStorm(t *testing.T) {
	var tests = []struct {
		fen  string
		side int
		ksq  int
		want int
	}{
		// intact shield in front of the castled king
		{"4k3/8/8/8/8/8/5PPP/6K1 w - - 0 1", common.SideWhite, common.SquareG1, 185},
		// g2 missing
		{"4k3/8/8/8/8/8/5P1P/6K1 w - - 0 1", common.SideWhite, common.SquareG1, 111},
		// f2 missing
		{"4k3/8/8/8/8/8/6PP/6K1 w - - 0 1", common.SideWhite, common.SquareG1, 111},
		// both home ranks untouched
		{common.InitialPositionFen, common.SideWhite, common.SquareE1, 263},
		{common.InitialPositionFen, common.SideBlack, common.SquareE8, 263},
		// no pawns at all
		{"4k3/8/8/8/8/8/8/4K3 w - - 0 1", common.SideWhite, common.SquareE1, -37},
		// enemy edge pawn one step from the king scores the blocked bonus
		{"4k3/8/8/8/8/8/7p/7K w - - 0 1", common.SideWhite, common.SquareH1, 263},
		{"7k/7P/8/8/8/8/8/4K3 b - - 0 1", common.SideBlack, common.SquareH8, 263},
		// same storm on an inner file gets the full penalty
		{"4k3/8/8/8/8/8/6p1/6K1 w - - 0 1", common.SideWhite, common.SquareG1, -101},
	}
	for _, tt := range tests {
		var p, err = common.NewPositionFromFEN(tt.fen)
		if err != nil {
			t.Error(err)
			continue
		}
		if got := shelterStorm(&p, tt.side, tt.ksq); got != tt.want {
			t.Error(tt.fen, got, tt.want)
		}
	}
}

func TestShelterOrdering(t *testing.T) {
	var intact, _ = common.NewPositionFromFEN("4k3/8/8/8/8/8/5PPP/6K1 w - - 0 1")
	var broken, _ = common.NewPositionFromFEN("4k3/8/8/8/8/8/5P1P/6K1 w - - 0 1")
	var a = shelterStorm(&intact, common.SideWhite, common.SquareG1)
	var b = shelterStorm(&broken, common.SideWhite, common.SquareG1)
	if a <= b {
		t.Error(a, b)
	}
}

func TestKingSafetyCastlingEquivalence(t *testing.T) {
	// queenside castling still available and the a/b/c shelter intact
	var eligible, err = common.NewPositionFromFEN("4k3/8/8/8/8/8/PPP5/R3K3 w Q - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	// king already sitting on the castling destination
	var castled, err2 = common.NewPositionFromFEN("4k3/8/8/8/8/8/PPP5/2K5 w - - 0 1")
	if err2 != nil {
		t.Fatal(err2)
	}

	var t1 = NewTable(16)
	var t2 = NewTable(16)
	var s1 = t1.Probe(&eligible).KingSafety(&eligible, common.SideWhite, common.SquareE1)
	var s2 = t2.Probe(&castled).KingSafety(&castled, common.SideWhite, common.SquareC1)
	if s1.Mg() != s2.Mg() {
		t.Error(s1, s2)
	}
	if s1.Mg() != 111 {
		t.Error(s1)
	}
}

func TestKingSafetyAdvancedKing(t *testing.T) {
	var p, err = common.NewPositionFromFEN("4k3/8/8/4K3/8/8/4P3/8 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var table = NewTable(16)
	var e = table.Probe(&p)
	if got := e.KingSafety(&p, common.SideWhite, common.SquareE5); got != S(0, -48) {
		t.Error(got)
	}
}

func TestKingSafetyNoPawns(t *testing.T) {
	var p, err = common.NewPositionFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	var table = NewTable(16)
	var e = table.Probe(&p)
	if got := e.KingSafety(&p, common.SideWhite, common.SquareE1); got != S(-37, 0) {
		t.Error(got)
	}
	if e.minKingPawnDistance[common.SideWhite] != 0 {
		t.Error(e.minKingPawnDistance[common.SideWhite])
	}
}

func TestKingSafetyMemo(t *testing.T) {
	var withRights, err = common.NewPositionFromFEN("4k3/8/8/8/8/8/PPP5/R3K3 w Q - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	// same pawns and king square, castling rights gone
	var noRights, err2 = common.NewPositionFromFEN("4k3/8/8/8/8/8/PPP5/R3K3 w - - 0 1")
	if err2 != nil {
		t.Fatal(err2)
	}
	if withRights.PawnKey != noRights.PawnKey {
		t.Fatal("pawn keys differ")
	}

	var table = NewTable(16)
	var e = table.Probe(&withRights)
	if got := e.KingSafety(&withRights, common.SideWhite, common.SquareE1).Mg(); got != 111 {
		t.Error(got)
	}
	if e.castlingRights[common.SideWhite] != 2 {
		t.Error(e.castlingRights[common.SideWhite])
	}

	// the king did not move, so the cached score is served even though
	// the rights changed
	e = table.Probe(&noRights)
	if got := e.KingSafety(&noRights, common.SideWhite, common.SquareE1).Mg(); got != 111 {
		t.Error(got)
	}

	var fresh = NewTable(16)
	if got := fresh.Probe(&noRights).KingSafety(&noRights, common.SideWhite, common.SquareE1).Mg(); got != -37 {
		t.Error(got)
	}

	// a king move forces recomputation
	var kingMoved, err3 = common.NewPositionFromFEN("4k3/8/8/8/8/8/PPP5/R2K4 w - - 0 1")
	if err3 != nil {
		t.Fatal(err3)
	}
	if kingMoved.PawnKey != withRights.PawnKey {
		t.Fatal("pawn keys differ")
	}
	e = table.Probe(&kingMoved)
	if got := e.KingSafety(&kingMoved, common.SideWhite, common.SquareD1).Mg(); got != 37 {
		t.Error(got)
	}
	if e.castlingRights[common.SideWhite] != 0 {
		t.Error(e.castlingRights[common.SideWhite])
	}
}

func TestKingSafetyMirror(t *testing.T) {
	var table = NewTable(DefaultTableSize)
	for _, test := range testFENs {
		var p, err = common.NewPositionFromFEN(test)
		if err != nil {
			t.Error(err)
			continue
		}
		var m = common.MirrorPosition(&p)
		var s1 = table.Probe(&p).KingSafety(&p, common.SideWhite,
			common.FirstOne(p.Kings&p.White))
		var s2 = table.Probe(&m).KingSafety(&m, common.SideBlack,
			common.FirstOne(m.Kings&m.Black))
		if s1 != s2 {
			t.Error(test, s1, s2)
		}
	}
}
