package riichi_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
)

func TestScorePlateaus(t *testing.T) {
	h, err := riichi.NewHand("1199m4455p66s112z 2z")
	if err != nil {
		t.Fatal(err)
	}
	sh, err := riichi.Shanten(h)
	if err != nil {
		t.Fatal(err)
	}
	if len(sh.Decompositions) != 1 {
		t.Fatalf("decompositions = %d, want 1", len(sh.Decompositions))
	}
	d := sh.Decompositions[0]

	type Case struct {
		han     int
		rank    riichi.Rank
		wantRon int // 闲家荣和
	}
	testCases := []Case{
		{2, riichi.RankNone, 1600},
		{4, riichi.RankNone, 6400},
		{5, riichi.RankMangan, 8000},
		{6, riichi.RankHaneman, 12000},
		{8, riichi.RankBaiman, 16000},
		{11, riichi.RankSanbaiman, 24000},
		{13, riichi.RankYakuman, 32000},
	}
	prev := 0
	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			yaku := []riichi.YakuValue{{Yaku: riichi.YakuChiitoitsu, Han: tc.han}}
			res := riichi.ScoreYaku(yaku, h, d, &riichi.Context{})
			if res.Rank != tc.rank {
				t.Errorf("Rank = %v, want %v", res.Rank, tc.rank)
			}
			if got := res.NonDealerRon(); got != tc.wantRon {
				t.Errorf("NonDealerRon() = %d, want %d", got, tc.wantRon)
			}
			if res.NonDealerRon() < prev {
				t.Errorf("points must not decrease with han")
			}
			prev = res.NonDealerRon()
		})
	}
}

func TestScoreDealerPayments(t *testing.T) {
	h, err := riichi.NewHand("1199m4455p66s112z 2z")
	if err != nil {
		t.Fatal(err)
	}
	sh, err := riichi.Shanten(h)
	if err != nil {
		t.Fatal(err)
	}
	d := sh.Decompositions[0]

	yaku := []riichi.YakuValue{{Yaku: riichi.YakuChiitoitsu, Han: 2}}
	res := riichi.ScoreYaku(yaku, h, d, &riichi.Context{Dealer: true})
	// 25符2番: base 400
	if got := res.DealerRon(); got != 2400 {
		t.Errorf("DealerRon() = %d, want 2400", got)
	}
	if got := res.DealerTsumoEach(); got != 800 {
		t.Errorf("DealerTsumoEach() = %d, want 800", got)
	}
}
