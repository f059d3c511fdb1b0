package riichi

import (
	"strconv"
	"strings"
)

// Tile 0~33: 万0-8 筒9-17 索18-26 字27-33(东南西北白发中)
type Tile int32

const (
	TileNull Tile = -1

	TileEast  Tile = 27
	TileSouth Tile = 28
	TileWest  Tile = 29
	TileNorth Tile = 30
	TileWhite Tile = 31
	TileGreen Tile = 32
	TileRed   Tile = 33

	TileCount = 34
)

type Suit int32

const (
	SuitMan Suit = iota
	SuitPin
	SuitSou
	SuitHonor
)

var suitRunes = [...]byte{'m', 'p', 's', 'z'}

func MakeTile(suit Suit, rank int) Tile {
	return Tile(int(suit)*9 + rank)
}

func (t Tile) Suit() Suit {
	return Suit(t / 9)
}

// Rank 0~8, 字牌0~6
func (t Tile) Rank() int {
	if t.IsHonor() {
		return int(t - 27)
	}
	return int(t % 9)
}

func (t Tile) IsValid() bool {
	return t >= 0 && t < TileCount
}

func (t Tile) IsSuit() bool {
	return t >= 0 && t < 27
}

func (t Tile) IsHonor() bool {
	return t >= 27 && t < TileCount
}

func (t Tile) IsWind() bool {
	return t >= TileEast && t <= TileNorth
}

func (t Tile) IsDragon() bool {
	return t >= TileWhite && t <= TileRed
}

func (t Tile) IsTerminal() bool {
	return t.IsSuit() && (t%9 == 0 || t%9 == 8)
}

func (t Tile) IsTerminalOrHonor() bool {
	return t.IsTerminal() || t.IsHonor()
}

func (t Tile) IsSimple() bool {
	return t.IsSuit() && !t.IsTerminal()
}

// IsGreenTile 绿一色用: 索23468+发
func (t Tile) IsGreenTile() bool {
	switch t {
	case 19, 20, 21, 23, 25, TileGreen:
		return true
	}
	return false
}

// NextTile 宝牌指示牌的下一张
func (t Tile) NextTile() Tile {
	switch {
	case t.IsSuit():
		if t%9 == 8 {
			return t - 8
		}
		return t + 1
	case t.IsWind():
		if t == TileNorth {
			return TileEast
		}
		return t + 1
	case t.IsDragon():
		if t == TileRed {
			return TileWhite
		}
		return t + 1
	}
	return TileNull
}

func (t Tile) String() string {
	if !t.IsValid() {
		return "??"
	}
	return strconv.Itoa(t.Rank()+1) + string(suitRunes[t.Suit()])
}

func (t Tile) ToInt32() int32 {
	return int32(t)
}

func TilesString(tiles []Tile) string {
	names := make([]string, len(tiles))
	for i, t := range tiles {
		names[i] = t.String()
	}
	return strings.Join(names, " ")
}

func TilesInt32(tiles []Tile) []int32 {
	res := make([]int32, len(tiles))
	for i, t := range tiles {
		res[i] = int32(t)
	}
	return res
}

func Int32Tiles(tiles []int32) []Tile {
	res := make([]Tile, len(tiles))
	for i, t := range tiles {
		res[i] = Tile(t)
	}
	return res
}

// ParseTiles 解析"123m55z"格式
func ParseTiles(s string) ([]Tile, error) {
	var tiles []Tile
	var pending []int
	for _, r := range s {
		switch {
		case r >= '1' && r <= '9':
			pending = append(pending, int(r-'1'))
		case r == 'm' || r == 'p' || r == 's' || r == 'z':
			suit := Suit(strings.IndexByte("mpsz", byte(r)))
			for _, rank := range pending {
				if suit == SuitHonor && rank > 6 {
					return nil, ErrInvalidHand
				}
				tiles = append(tiles, MakeTile(suit, rank))
			}
			pending = pending[:0]
		default:
			return nil, ErrInvalidHand
		}
	}
	if len(pending) != 0 {
		return nil, ErrInvalidHand
	}
	return tiles, nil
}

// Wind 风位
type Wind int32

const (
	WindEast Wind = iota
	WindSouth
	WindWest
	WindNorth
)

func (w Wind) Tile() Tile {
	return TileEast + Tile(w)
}

func (w Wind) String() string {
	return [...]string{"East", "South", "West", "North"}[w]
}
