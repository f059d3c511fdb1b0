package riichi

// Rank 点数段位
type Rank int32

const (
	RankNone Rank = iota
	RankMangan
	RankHaneman
	RankBaiman
	RankSanbaiman
	RankYakuman
)

var rankNamesEn = map[Rank]string{
	RankNone:      "",
	RankMangan:    "Mangan",
	RankHaneman:   "Haneman",
	RankBaiman:    "Baiman",
	RankSanbaiman: "Sanbaiman",
	RankYakuman:   "Yakuman",
}

var rankNamesJa = map[Rank]string{
	RankNone:      "",
	RankMangan:    "満貫",
	RankHaneman:   "跳満",
	RankBaiman:    "倍満",
	RankSanbaiman: "三倍満",
	RankYakuman:   "役満",
}

func (r Rank) Name(lang Lang) string {
	if lang == LangJa {
		return rankNamesJa[r]
	}
	return rankNamesEn[r]
}

// scoreRank 满贯判定含切上(4番30符/3番60符)
func scoreRank(han, fu int) Rank {
	switch {
	case han >= 13:
		return RankYakuman
	case han >= 11:
		return RankSanbaiman
	case han >= 8:
		return RankBaiman
	case han >= 6:
		return RankHaneman
	case han >= 5:
		return RankMangan
	case han == 4 && fu >= 30:
		return RankMangan
	case han == 3 && fu >= 60:
		return RankMangan
	}
	return RankNone
}

// basePoints 符×2^(2+番), 上限2000
func basePoints(han, fu int, rank Rank, yakumanCount int) int {
	switch rank {
	case RankYakuman:
		if yakumanCount < 1 {
			yakumanCount = 1
		}
		return 8000 * yakumanCount
	case RankSanbaiman:
		return 6000
	case RankBaiman:
		return 4000
	case RankHaneman:
		return 3000
	case RankMangan:
		return 2000
	}
	base := fu << uint(2+han)
	if base > 2000 {
		base = 2000
	}
	return base
}

func roundUp100(v int) int {
	return (v + 99) / 100 * 100
}

// Result 和牌结果
type Result struct {
	Yaku         []YakuValue
	Han          int
	Fu           int
	FuDetails    []FuDetail
	Rank         Rank
	YakumanCount int
	Decomp       *Decomposition

	base   int
	dealer bool
	tsumo  bool
}

// Total 总得点
func (r *Result) Total() int {
	if r.dealer {
		if r.tsumo {
			return 3 * r.DealerTsumoEach()
		}
		return r.DealerRon()
	}
	if r.tsumo {
		return r.NonDealerTsumoDealer() + 2*r.NonDealerTsumoOther()
	}
	return r.NonDealerRon()
}

func (r *Result) DealerRon() int {
	return roundUp100(r.base * 6)
}

func (r *Result) DealerTsumoEach() int {
	return roundUp100(r.base * 2)
}

func (r *Result) NonDealerRon() int {
	return roundUp100(r.base * 4)
}

func (r *Result) NonDealerTsumoDealer() int {
	return roundUp100(r.base * 2)
}

func (r *Result) NonDealerTsumoOther() int {
	return roundUp100(r.base)
}
