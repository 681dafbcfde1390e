package common

const (
	SideWhite = iota
	SideBlack
	COLOUR_NB
)

const (
	FILE_NB   = 8
	RANK_NB   = 8
	SQUARE_NB = 64
)

const (
	WhiteKingSide = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

const (
	Empty int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Position holds piece placement as bitboards. Key covers the whole
// position, PawnKey only the pawn placement and never equals zero.
type Position struct {
	Pawns, Knights, Bishops, Rooks, Queens, Kings, White, Black uint64
	WhiteMove                                                   bool
	CastleRights, Rule50, EpSquare                              int
	Key                                                         uint64
	PawnKey                                                     uint64
}

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func (p *Position) Colours(side int) uint64 {
	if side == SideWhite {
		return p.White
	}
	return p.Black
}

func (p *Position) AllPieces() uint64 {
	return p.White | p.Black
}
