package riichi_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
)

func TestNextTile(t *testing.T) {
	type Case struct {
		indicator riichi.Tile
		want      riichi.Tile
	}
	testCases := []Case{
		{riichi.MakeTile(riichi.SuitMan, 0), riichi.MakeTile(riichi.SuitMan, 1)},
		{riichi.MakeTile(riichi.SuitMan, 8), riichi.MakeTile(riichi.SuitMan, 0)},
		{riichi.MakeTile(riichi.SuitSou, 8), riichi.MakeTile(riichi.SuitSou, 0)},
		{riichi.TileNorth, riichi.TileEast},
		{riichi.TileRed, riichi.TileWhite},
		{riichi.TileWhite, riichi.TileGreen},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			if got := tc.indicator.NextTile(); got != tc.want {
				t.Errorf("NextTile(%v) = %v, want %v", tc.indicator, got, tc.want)
			}
		})
	}
}

func TestCountDora(t *testing.T) {
	h, err := riichi.NewHand("234m55s 123p 999s 1111z")
	if err != nil {
		t.Fatal(err)
	}
	// 指示牌8s -> 宝牌9s, 副露刻子3张
	if got := riichi.CountDora(h, []riichi.Tile{riichi.MakeTile(riichi.SuitSou, 7)}); got != 3 {
		t.Errorf("CountDora = %d, want 3", got)
	}
	// 指示牌4z -> 宝牌1z, 杠按4张
	if got := riichi.CountDora(h, []riichi.Tile{riichi.TileNorth}); got != 4 {
		t.Errorf("CountDora = %d, want 4", got)
	}
	if got := riichi.CountDora(h, nil); got != 0 {
		t.Errorf("CountDora = %d, want 0", got)
	}
}
