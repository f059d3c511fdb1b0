package riichi

import (
	"fmt"
	"slices"
)

// EvaluateYaku 对单个拆解判定番种, 役满成立时仅保留役满
func EvaluateYaku(h *Hand, d *Decomposition, ctx *Context, rules *Rules) []YakuValue {
	if rules == nil {
		rules = DefaultRules()
	}
	return evalYaku(newEvalState(h, d, ctx.clone(), rules))
}

// ScoreYaku 按番种列表算符定档出点
func ScoreYaku(yaku []YakuValue, h *Hand, d *Decomposition, ctx *Context) *Result {
	ctx = ctx.clone()
	r := &Result{Yaku: yaku, Decomp: d, dealer: ctx.Dealer, tsumo: ctx.Tsumo}
	for _, y := range yaku {
		r.Han += y.Han
		if y.Yaku.IsYakuman() {
			r.YakumanCount++
		}
	}
	r.Fu, r.FuDetails = calcFu(h, d, ctx)
	r.Rank = scoreRank(r.Han, r.Fu)
	if r.YakumanCount > 0 {
		r.Rank = RankYakuman
	}
	r.base = basePoints(r.Han, r.Fu, r.Rank, r.YakumanCount)
	return r
}

// Evaluate 对14张完成形算番定符出点
// 多种拆解时番优先, 同番按FuPolicy取符
func Evaluate(h *Hand, ctx *Context, rules *Rules) (*Result, error) {
	if rules == nil {
		rules = DefaultRules()
	}
	ctx = ctx.clone()

	sh, err := Shanten(h)
	if err != nil {
		return nil, err
	}
	if sh.Shanten != -1 || !h.IsComplete() {
		return nil, fmt.Errorf("shanten %d: %w", sh.Shanten, ErrIncompleteHand)
	}

	var best *Result
	for _, d := range sh.Decompositions {
		yaku := EvaluateYaku(h, d, ctx, rules)
		if len(yaku) == 0 {
			continue
		}
		r := ScoreYaku(yaku, h, d, ctx)
		if better(r, best, rules.FuPolicy) {
			best = r
		}
	}
	if best == nil {
		return nil, ErrNoYaku
	}

	if best.YakumanCount == 0 {
		if extra := doraValues(h, ctx); len(extra) > 0 {
			best = ScoreYaku(append(best.Yaku, extra...), h, best.Decomp, ctx)
		}
	}

	slices.SortStableFunc(best.Yaku, func(a, b YakuValue) int {
		if a.Han != b.Han {
			return b.Han - a.Han
		}
		return int(a.Yaku - b.Yaku)
	})
	return best, nil
}

func better(r, cur *Result, policy FuPolicy) bool {
	if cur == nil {
		return true
	}
	if r.YakumanCount != cur.YakumanCount {
		return r.YakumanCount > cur.YakumanCount
	}
	if r.Han != cur.Han {
		return r.Han > cur.Han
	}
	if policy == FuPolicyMin {
		return r.Fu < cur.Fu
	}
	return r.Fu > cur.Fu
}
