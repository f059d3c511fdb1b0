package riichi_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
)

func TestShanten(t *testing.T) {
	type Case struct {
		notation string
		want     int
	}
	testCases := []Case{
		{"123456789m12344p", -1},
		{"123456789m1234p", 0},
		{"1199m1199p1199s11z", -1},
		{"19m19p19s1234567z", 0},
		{"19m19p19s1234567z1m", -1},
		{"147m258p369s1234z", 6},
		{"1112345678999m", 0},
		{"111222333444m55m", -1},
		{"23455m55z 567p 888s", 0},
		{"5m", 8},
	}

	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			h, err := riichi.NewHand(tc.notation)
			if err != nil {
				t.Fatal(err)
			}
			res, err := riichi.Shanten(h)
			if err != nil {
				t.Fatal(err)
			}
			if res.Shanten != tc.want {
				t.Errorf("Shanten(%s) = %d, want %d", tc.notation, res.Shanten, tc.want)
			}
		})
	}
}

func TestShantenForms(t *testing.T) {
	h, err := riichi.NewHand("1199m1199p1199s11z")
	if err != nil {
		t.Fatal(err)
	}
	res, err := riichi.Shanten(h)
	if err != nil {
		t.Fatal(err)
	}
	if res.SevenPairs != -1 {
		t.Errorf("SevenPairs = %d, want -1", res.SevenPairs)
	}
	if res.Standard == -1 {
		t.Errorf("Standard = -1, pairs-only hand must not win the standard form")
	}
}

func TestShantenDecompositions(t *testing.T) {
	// 111222333m可拆三刻子或三同顺
	h, err := riichi.NewHand("11122233344m55p 4m")
	if err != nil {
		t.Fatal(err)
	}
	res, err := riichi.Shanten(h)
	if err != nil {
		t.Fatal(err)
	}
	if res.Shanten != -1 {
		t.Fatalf("Shanten = %d, want -1", res.Shanten)
	}
	if len(res.Decompositions) < 2 {
		t.Errorf("Decompositions = %d, want at least 2", len(res.Decompositions))
	}
	for _, d := range res.Decompositions {
		if d.Form != riichi.FormStandard {
			continue
		}
		if len(d.Groups) != 4 {
			t.Errorf("groups = %d, want 4", len(d.Groups))
		}
	}
}

func TestShantenInvalid(t *testing.T) {
	h := &riichi.Hand{WinTile: riichi.TileNull}
	h.Counts[0] = 5
	h.Counts[1] = 3
	if _, err := riichi.Shanten(h); err == nil {
		t.Error("expected error for five copies of one tile")
	}
}
