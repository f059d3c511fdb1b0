package riichi_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
)

func TestSettleTsumo(t *testing.T) {
	h, err := riichi.NewHand("23478m345p22789s 6m")
	if err != nil {
		t.Fatal(err)
	}
	res, err := riichi.Evaluate(h, &riichi.Context{Tsumo: true}, nil)
	if err != nil {
		t.Fatal(err)
	}

	// 平和自摸20符2番: 闲家700/400
	scores, err := riichi.Settle(res, 4, 1, -1, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{-700, 1500, -400, -400}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i], want[i])
		}
	}
	var sum int64
	for _, s := range scores {
		sum += s
	}
	if sum != 0 {
		t.Errorf("scores not zero-sum: %d", sum)
	}
}

func TestSettleRon(t *testing.T) {
	h, err := riichi.NewHand("1199m4455p66s112z 2z")
	if err != nil {
		t.Fatal(err)
	}
	res, err := riichi.Evaluate(h, &riichi.Context{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	scores, err := riichi.Settle(res, 4, 2, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := []int64{-1600, 0, 1600, 0}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("scores[%d] = %d, want %d", i, scores[i], want[i])
		}
	}
}

func TestSettleBadArgs(t *testing.T) {
	h, err := riichi.NewHand("1199m4455p66s112z 2z")
	if err != nil {
		t.Fatal(err)
	}
	res, err := riichi.Evaluate(h, &riichi.Context{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := riichi.Settle(res, 4, 4, 0, 0); err == nil {
		t.Error("expected error for winner out of range")
	}
	// Context未标庄家, 和家即庄家应报不一致
	if _, err := riichi.Settle(res, 4, 2, 0, 2); err == nil {
		t.Error("expected error for dealer flag mismatch")
	}
	if _, err := riichi.Settle(res, 4, 2, 2, 1); err == nil {
		t.Error("expected error for discarder == winner")
	}
}
