package pawns

import (
	. "github.com/counterchess/pawnstruct/pkg/common"
)

// indexed by the relative rank of the most retreated own pawn
var shelterWeakness = [RANK_NB]int{100, 0, 27, 73, 92, 101, 101}

// indexed by {no own pawn, unblocked, blocked} and the relative rank
// of the most advanced enemy pawn
var stormDanger = [3][RANK_NB]int{
	{0, 64, 128, 51, 26},
	{26, 32, 96, 38, 20},
	{0, 0, 160, 25, 13},
}

const maxSafetyBonus = 263

// shelterStorm scores a hypothetical king placement. Analysis covers
// the three files around the king file clamped away from the edges,
// from the king's rank forward.
func shelterStorm(p *Position, us, ksq int) int {
	var them = us ^ 1

	var safety = maxSafetyBonus
	var b = p.Pawns & forwardRanksMasks[us][Rank(ksq)]
	var ourPawns = b & p.Colours(us)
	var theirPawns = b & p.Colours(them)

	var kf = limit(File(ksq), FileB, FileG)

	for f := kf - 1; f <= kf+1; f++ {
		b = ourPawns & FileMask[f]
		var rkUs = Rank1
		if b != 0 {
			rkUs = relativeRankOf(us, backmost(us, b))
		}

		b = theirPawns & FileMask[f]
		var rkThem = Rank1
		if b != 0 {
			rkThem = relativeRankOf(us, frontmost(them, b))
		}

		if (f == FileA || f == FileH) &&
			(rkThem == Rank2 || rkThem == Rank3) &&
			File(ksq) == f &&
			relativeRankOf(us, ksq) == rkThem-1 {
			safety += 200
		} else {
			var storm = 1
			if rkUs == Rank1 {
				storm = 0
			} else if rkThem == rkUs+1 {
				storm = 2
			}
			safety -= shelterWeakness[rkUs] + stormDanger[storm][rkThem]
		}
	}

	return safety
}

func (e *Entry) doKingSafety(p *Position, us, ksq int) Score {
	e.kingSquares[us] = ksq
	e.castlingRights[us] = (p.CastleRights >> uint(2*us)) & 3
	e.minKingPawnDistance[us] = 0

	var pawns = p.Pawns & p.Colours(us)
	if pawns != 0 {
		var d = 8
		for x := pawns; x != 0; x &= x - 1 {
			d = Min(d, distanceBetween[ksq][FirstOne(x)])
		}
		e.minKingPawnDistance[us] = d
	}

	if relativeRankOf(us, ksq) > Rank4 {
		return S(0, -16*e.minKingPawnDistance[us])
	}

	var bonus = shelterStorm(p, us, ksq)

	// the position is at least as safe as the best castling option
	if p.CastleRights&(WhiteKingSide<<uint(2*us)) != 0 {
		bonus = Max(bonus, shelterStorm(p, us, relativeSquare(us, SquareG1)))
	}
	if p.CastleRights&(WhiteQueenSide<<uint(2*us)) != 0 {
		bonus = Max(bonus, shelterStorm(p, us, relativeSquare(us, SquareC1)))
	}

	return S(bonus, -16*e.minKingPawnDistance[us])
}

// KingSafety returns the cached shelter score of the side, recomputed
// only when the king square differs from the cached one.
func (e *Entry) KingSafety(p *Position, us, ksq int) Score {
	if e.kingSquares[us] != ksq {
		e.kingSafety[us] = e.doKingSafety(p, us, ksq)
	}
	return e.kingSafety[us]
}
