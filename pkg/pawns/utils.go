package pawns

import (
	"math/bits"

	. "github.com/counterchess/pawnstruct/pkg/common"
)

const (
	darkSquares = uint64(0xAA55AA55AA55AA55)
)

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func relativeRankOf(colour, sq int) int {
	if colour == SideWhite {
		return Rank(sq)
	}
	return Rank8 - Rank(sq)
}

func relativeSquare(colour, sq int) int {
	if colour == SideWhite {
		return sq
	}
	return FlipSquare(sq)
}

func limit(v, min, max int) int {
	if v <= min {
		return min
	}
	if v >= max {
		return max
	}
	return v
}

func backmost(colour int, bb uint64) int {
	if colour == SideWhite {
		return bits.TrailingZeros64(bb)
	}
	return 63 - bits.LeadingZeros64(bb)
}

func frontmost(colour int, bb uint64) int {
	if colour == SideWhite {
		return 63 - bits.LeadingZeros64(bb)
	}
	return bits.TrailingZeros64(bb)
}

func allPawnAttacks(colour int, pawns uint64) uint64 {
	if colour == SideWhite {
		return AllWhitePawnAttacks(pawns)
	}
	return AllBlackPawnAttacks(pawns)
}

func forwardShift(colour int, b uint64) uint64 {
	if colour == SideWhite {
		return Up(b)
	}
	return Down(b)
}

var rankMasks = [RANK_NB]uint64{Rank1Mask, Rank2Mask, Rank3Mask, Rank4Mask, Rank5Mask, Rank6Mask, Rank7Mask, Rank8Mask}

var pawnConnectedMask [COLOUR_NB][SQUARE_NB]uint64
var pawnPassedMask [COLOUR_NB][SQUARE_NB]uint64
var pawnAttackSpanMask [COLOUR_NB][SQUARE_NB]uint64
var forwardFileMasks [COLOUR_NB][SQUARE_NB]uint64
var adjacentFilesMask [FILE_NB]uint64
var forwardRanksMasks [COLOUR_NB][RANK_NB]uint64
var distanceBetween [SQUARE_NB][SQUARE_NB]int

func init() {
	for i := 0; i < SQUARE_NB; i++ {
		for j := 0; j < SQUARE_NB; j++ {
			distanceBetween[i][j] = SquareDistance(i, j)
		}
	}

	for f := FileA; f <= FileH; f++ {
		adjacentFilesMask[f] = Left(FileMask[f]) | Right(FileMask[f])
	}
	for r := Rank1; r <= Rank8; r++ {
		forwardRanksMasks[SideWhite][r] = UpFill(rankMasks[r])
		forwardRanksMasks[SideBlack][r] = DownFill(rankMasks[r])
	}

	for sq := 0; sq < 64; sq++ {
		var x = SquareMask[sq]

		pawnConnectedMask[SideWhite][sq] = Left(x) | Right(x) | Down(Left(x)|Right(x))
		pawnConnectedMask[SideBlack][sq] = Left(x) | Right(x) | Up(Left(x)|Right(x))

		pawnPassedMask[SideWhite][sq] = UpFill(Up(Left(x) | Right(x) | x))
		pawnPassedMask[SideBlack][sq] = DownFill(Down(Left(x) | Right(x) | x))

		pawnAttackSpanMask[SideWhite][sq] = UpFill(Up(Left(x) | Right(x)))
		pawnAttackSpanMask[SideBlack][sq] = DownFill(Down(Left(x) | Right(x)))

		forwardFileMasks[SideWhite][sq] = UpFill(Up(x))
		forwardFileMasks[SideBlack][sq] = DownFill(Down(x))
	}
}
