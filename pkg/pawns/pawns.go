package pawns

import (
	. "github.com/counterchess/pawnstruct/pkg/common"
)

const DefaultTableSize = 1 << 14

// Entry caches everything derived from one pawn placement. An entry is
// valid only while key matches the position's pawn key, a colliding
// probe overwrites it in place.
type Entry struct {
	key                 uint64
	value               Score
	passedPawns         [COLOUR_NB]uint64
	pawnAttacks         [COLOUR_NB]uint64
	kingSafety          [COLOUR_NB]Score
	kingSquares         [COLOUR_NB]int
	castlingRights      [COLOUR_NB]int
	semiopenFiles       [COLOUR_NB]int
	pawnSpan            [COLOUR_NB]int
	minKingPawnDistance [COLOUR_NB]int
	pawnsOnSquares      [COLOUR_NB][COLOUR_NB]int
}

// Value is the aggregate pawn structure score, white minus black.
func (e *Entry) Value() Score {
	return e.value
}

// PassedPawns marks only the frontmost passed pawn of each file.
func (e *Entry) PassedPawns(side int) uint64 {
	return e.passedPawns[side]
}

func (e *Entry) PawnAttacks(side int) uint64 {
	return e.pawnAttacks[side]
}

// SemiopenFiles is a mask over file indexes without a pawn of side.
func (e *Entry) SemiopenFiles(side int) int {
	return e.semiopenFiles[side]
}

func (e *Entry) SemiopenFile(side, file int) bool {
	return e.semiopenFiles[side]&(1<<uint(file)) != 0
}

func (e *Entry) PawnSpan(side int) int {
	return e.pawnSpan[side]
}

func (e *Entry) PawnsOnSameColorSquares(side, sq int) int {
	return e.pawnsOnSquares[side][boolToInt(IsDarkSquare(sq))]
}

// Table is a direct mapped pawn structure cache. Probe takes no locks.
// Concurrent probes of a shared table race on entry memory; a racy read
// misprices a structure but never corrupts the table, and search
// workers normally each own a table so the race does not arise.
type Table struct {
	entries        []Entry
	mask           uint64
	connectedBonus [2][2][RANK_NB]Score
}

func roundPowerOfTwo(size int) int {
	var x = 1
	for (x << 1) <= size {
		x <<= 1
	}
	return x
}

func NewTable(size int) *Table {
	size = roundPowerOfTwo(size)
	var t = &Table{
		entries: make([]Entry, size),
		mask:    uint64(size - 1),
	}
	t.initConnectedBonus()
	return t
}

var connectedSeed = [RANK_NB]int{0, 6, 15, 10, 57, 75, 135, 258}

func (t *Table) initConnectedBonus() {
	for opposed := 0; opposed <= 1; opposed++ {
		for phalanx := 0; phalanx <= 1; phalanx++ {
			for r := Rank2; r < Rank8; r++ {
				var bonus = connectedSeed[r]
				if phalanx != 0 {
					bonus += (connectedSeed[r+1] - connectedSeed[r]) / 2
				}
				t.connectedBonus[opposed][phalanx][r] = S(bonus/2, bonus>>uint(opposed))
			}
		}
	}
}

// Probe returns the cached entry for the position's pawn placement,
// classifying both sides on a miss. The returned pointer aliases table
// memory and must not be retained across later probes.
func (t *Table) Probe(p *Position) *Entry {
	var e = &t.entries[p.PawnKey&t.mask]
	if e.key == p.PawnKey {
		return e
	}
	e.key = p.PawnKey
	e.value = t.evaluate(p, e, SideWhite) - t.evaluate(p, e, SideBlack)
	return e
}

func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}
