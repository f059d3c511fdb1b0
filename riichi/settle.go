package riichi

import "errors"

// Settle 按座位生成零和的分数变动
// 自摸时discarder传-1
func Settle(r *Result, playerCount, winner, discarder, dealer int) ([]int64, error) {
	if playerCount < 2 || winner < 0 || winner >= playerCount || dealer < 0 || dealer >= playerCount {
		return nil, errors.New("param error")
	}
	if (winner == dealer) != r.dealer {
		return nil, errors.New("dealer flag mismatch")
	}

	res := make([]int64, playerCount)
	if !r.tsumo {
		if discarder < 0 || discarder >= playerCount || discarder == winner {
			return nil, errors.New("param error")
		}
		pay := int64(r.Total())
		res[winner] += pay
		res[discarder] -= pay
		return res, nil
	}

	for i := 0; i < playerCount; i++ {
		if i == winner {
			continue
		}
		var pay int64
		switch {
		case winner == dealer:
			pay = int64(r.DealerTsumoEach())
		case i == dealer:
			pay = int64(r.NonDealerTsumoDealer())
		default:
			pay = int64(r.NonDealerTsumoOther())
		}
		res[i] -= pay
		res[winner] += pay
	}
	return res, nil
}
