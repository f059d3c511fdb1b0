package riichi_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
)

func TestNewHand(t *testing.T) {
	type Case struct {
		notation string
		wantErr  error
		tiles    int
		melds    int
	}
	testCases := []Case{
		{notation: "123m456p789s11222z", tiles: 14},
		{notation: "123456789m1234p", tiles: 13},
		{notation: "234m55s 123p 999s 1111z", tiles: 7, melds: 3},
		{notation: "23478m345p22789s 6m", tiles: 14},
		{notation: "11111m234p567s78s", wantErr: riichi.ErrInvalidHand},
		{notation: "123x", wantErr: riichi.ErrInvalidHand},
		{notation: "89z", wantErr: riichi.ErrInvalidHand},
		{notation: "", wantErr: riichi.ErrInvalidHand},
	}

	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			h, err := riichi.NewHand(tc.notation)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("NewHand(%q) err = %v, want %v", tc.notation, err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewHand(%q) unexpected err: %v", tc.notation, err)
			}
			if got := h.ConcealedCount(); got != tc.tiles {
				t.Errorf("ConcealedCount() = %d, want %d", got, tc.tiles)
			}
			if got := len(h.Melds); got != tc.melds {
				t.Errorf("melds = %d, want %d", got, tc.melds)
			}
		})
	}
}

func TestHandWinTile(t *testing.T) {
	h, err := riichi.NewHand("23478m345p22789s 6m")
	if err != nil {
		t.Fatal(err)
	}
	want := riichi.MakeTile(riichi.SuitMan, 5)
	if h.WinTile != want {
		t.Errorf("WinTile = %v, want %v", h.WinTile, want)
	}
	if h.Counts[want] != 1 {
		t.Errorf("win tile not counted in hand")
	}
}

func TestParseTiles(t *testing.T) {
	tiles, err := riichi.ParseTiles("19m55z")
	if err != nil {
		t.Fatal(err)
	}
	want := []riichi.Tile{0, 8, 31, 31}
	if len(tiles) != len(want) {
		t.Fatalf("len = %d, want %d", len(tiles), len(want))
	}
	for i := range want {
		if tiles[i] != want[i] {
			t.Errorf("tiles[%d] = %v, want %v", i, tiles[i], want[i])
		}
	}
}

func TestTileString(t *testing.T) {
	type Case struct {
		tile riichi.Tile
		want string
	}
	testCases := []Case{
		{riichi.MakeTile(riichi.SuitMan, 0), "1m"},
		{riichi.MakeTile(riichi.SuitPin, 8), "9p"},
		{riichi.TileEast, "1z"},
		{riichi.TileRed, "7z"},
	}
	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			if got := tc.tile.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAddAnkan(t *testing.T) {
	h, err := riichi.NewHand("456m11p555s78s 6s")
	if err != nil {
		t.Fatal(err)
	}
	h.Counts[riichi.TileEast] += 4
	if err := h.AddAnkan(riichi.TileEast); err != nil {
		t.Fatal(err)
	}
	if !h.IsClosed() {
		t.Error("ankan must not open the hand")
	}
	if !h.IsComplete() {
		t.Error("hand with ankan should count as 14 tiles")
	}
	if h.KanCount() != 1 {
		t.Errorf("KanCount() = %d, want 1", h.KanCount())
	}
}
