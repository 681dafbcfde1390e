package pawns

import (
	"math/bits"

	. "github.com/counterchess/pawnstruct/pkg/common"
)

var doubledPenalty = [FILE_NB]Score{
	S(13, 43), S(20, 48), S(23, 48), S(23, 48),
	S(23, 48), S(23, 48), S(20, 48), S(13, 43),
}

// indexed by opposed flag and file
var isolatedPenalty = [2][FILE_NB]Score{
	{S(37, 45), S(54, 52), S(60, 52), S(60, 52),
		S(60, 52), S(60, 52), S(54, 52), S(37, 45)},
	{S(25, 30), S(36, 35), S(40, 35), S(40, 35),
		S(40, 35), S(40, 35), S(36, 35), S(25, 30)},
}

// indexed by opposed flag and file
var backwardPenalty = [2][FILE_NB]Score{
	{S(30, 42), S(43, 46), S(49, 46), S(49, 46),
		S(49, 46), S(49, 46), S(43, 46), S(30, 42)},
	{S(20, 28), S(29, 31), S(33, 31), S(33, 31),
		S(33, 31), S(33, 31), S(29, 31), S(20, 28)},
}

// indexed by relative rank
var leverBonus = [RANK_NB]Score{
	S(0, 0), S(0, 0), S(0, 0), S(0, 0),
	S(20, 20), S(40, 40), S(0, 0), S(0, 0),
}

var unsupportedPenalty = S(20, 10)

func (t *Table) evaluate(p *Position, e *Entry, us int) Score {
	var them = us ^ 1
	var ourPawns = p.Pawns & p.Colours(us)
	var theirPawns = p.Pawns & p.Colours(them)

	var score Score

	e.passedPawns[us] = 0
	e.kingSquares[us] = SquareNone
	e.semiopenFiles[us] = 0xFF
	e.pawnAttacks[us] = allPawnAttacks(us, ourPawns)
	e.pawnsOnSquares[us][SideBlack] = PopCount(ourPawns & darkSquares)
	e.pawnsOnSquares[us][SideWhite] = PopCount(ourPawns) - e.pawnsOnSquares[us][SideBlack]

	for x := ourPawns; x != 0; x &= x - 1 {
		var sq = FirstOne(x)
		var f = File(sq)
		var r = relativeRankOf(us, sq)

		e.semiopenFiles[us] &^= 1 << uint(f)

		var connected = ourPawns & pawnConnectedMask[us][sq]
		var phalanx = connected & rankMasks[Rank(sq)]
		var unsupported = ourPawns&PawnAttacks(them, sq) == 0
		var isolated = ourPawns&adjacentFilesMask[f] == 0
		var doubled = ourPawns & forwardFileMasks[us][sq]
		var opposed = theirPawns&forwardFileMasks[us][sq] != 0
		var passed = theirPawns&pawnPassedMask[us][sq] == 0
		var lever = theirPawns & PawnAttacks(us, sq)

		// A passed, isolated or connected pawn is never backward. Nor is
		// a pawn with own pawns behind on adjacent files or one that can
		// capture. Otherwise look up the most retreated pawn in the
		// forward attack span and test whether an enemy pawn stops the
		// advance from there.
		var backward = false
		if !(passed || isolated || connected != 0) &&
			ourPawns&pawnAttackSpanMask[them][sq] == 0 &&
			lever == 0 {
			// not isolated and nothing behind, so the span is not empty
			var b = pawnAttackSpanMask[us][sq] & (ourPawns | theirPawns)
			b = pawnAttackSpanMask[us][sq] & rankMasks[Rank(backmost(us, b))]
			backward = (b|forwardShift(us, b))&theirPawns != 0
		}

		if passed && doubled == 0 {
			e.passedPawns[us] |= SquareMask[sq]
		}

		if isolated {
			score -= isolatedPenalty[boolToInt(opposed)][f]
		}

		if unsupported && !isolated {
			score -= unsupportedPenalty
		}

		if doubled != 0 {
			score -= doubledPenalty[f].Div(RankDistance(sq, frontmost(us, doubled)))
		}

		if backward {
			score -= backwardPenalty[boolToInt(opposed)][f]
		}

		if connected != 0 {
			score += t.connectedBonus[boolToInt(opposed)][boolToInt(phalanx != 0)][r]
		}

		if lever != 0 {
			score += leverBonus[r]
		}
	}

	var occupiedFiles = e.semiopenFiles[us] ^ 0xFF
	if occupiedFiles != 0 {
		e.pawnSpan[us] = 63 - bits.LeadingZeros64(uint64(occupiedFiles)) -
			bits.TrailingZeros64(uint64(occupiedFiles))
	} else {
		e.pawnSpan[us] = 0
	}

	return score
}
