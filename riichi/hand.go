package riichi

import (
	"fmt"
	"slices"
	"strings"
)

type MeldKind int32

const (
	MeldChi MeldKind = iota
	MeldPon
	MeldMinkan
	MeldAnkan
)

// Meld 副露(吃碰杠), 暗杠也记在这里
type Meld struct {
	Kind MeldKind
	Tile Tile // 顺子为最小张
}

func (m Meld) IsKan() bool {
	return m.Kind == MeldMinkan || m.Kind == MeldAnkan
}

// Open 暗杠不破门清
func (m Meld) Open() bool {
	return m.Kind != MeldAnkan
}

func (m Meld) Tiles() []Tile {
	switch m.Kind {
	case MeldChi:
		return []Tile{m.Tile, m.Tile + 1, m.Tile + 2}
	case MeldPon:
		return []Tile{m.Tile, m.Tile, m.Tile}
	default:
		return []Tile{m.Tile, m.Tile, m.Tile, m.Tile}
	}
}

// Hand 手牌: counts为门前牌(含和牌张), 副露另记
type Hand struct {
	Counts  [TileCount]int8
	Melds   []Meld
	WinTile Tile
}

// NewHand 解析"123m456p789s11z"或"123m456p 777s 11z 9m"
// 空格分组: 首组门前牌, 3张组吃/碰, 4张组明杠, 单张为和牌张
func NewHand(notation string) (*Hand, error) {
	groups := strings.Fields(notation)
	if len(groups) == 0 {
		return nil, ErrInvalidHand
	}

	h := &Hand{WinTile: TileNull}
	concealed, err := ParseTiles(groups[0])
	if err != nil {
		return nil, err
	}
	for _, t := range concealed {
		h.Counts[t]++
	}

	for _, g := range groups[1:] {
		tiles, err := ParseTiles(g)
		if err != nil {
			return nil, err
		}
		switch len(tiles) {
		case 1:
			if h.WinTile != TileNull {
				return nil, ErrInvalidHand
			}
			h.WinTile = tiles[0]
			h.Counts[tiles[0]]++
		case 3, 4:
			meld, err := meldFromTiles(tiles)
			if err != nil {
				return nil, err
			}
			h.Melds = append(h.Melds, meld)
		default:
			return nil, ErrInvalidHand
		}
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return h, nil
}

func meldFromTiles(tiles []Tile) (Meld, error) {
	slices.Sort(tiles)
	if len(tiles) == 4 {
		if tiles[0] != tiles[3] {
			return Meld{}, ErrInvalidHand
		}
		return Meld{Kind: MeldMinkan, Tile: tiles[0]}, nil
	}
	if tiles[0] == tiles[2] {
		return Meld{Kind: MeldPon, Tile: tiles[0]}, nil
	}
	if tiles[0].IsSuit() && tiles[1] == tiles[0]+1 && tiles[2] == tiles[0]+2 && tiles[0].Suit() == tiles[2].Suit() {
		return Meld{Kind: MeldChi, Tile: tiles[0]}, nil
	}
	return Meld{}, ErrInvalidHand
}

// AddAnkan 暗杠从门前牌转入副露
func (h *Hand) AddAnkan(t Tile) error {
	if !t.IsValid() || h.Counts[t] < 4 {
		return fmt.Errorf("ankan of %v: %w", t, ErrInvalidHand)
	}
	h.Counts[t] -= 4
	h.Melds = append(h.Melds, Meld{Kind: MeldAnkan, Tile: t})
	return nil
}

func (h *Hand) ConcealedCount() int {
	n := 0
	for _, c := range h.Counts {
		n += int(c)
	}
	return n
}

// TileCountOf 含副露的总张数
func (h *Hand) TileCountOf(t Tile) int {
	n := int(h.Counts[t])
	for _, m := range h.Melds {
		for _, mt := range m.Tiles() {
			if mt == t {
				n++
			}
		}
	}
	return n
}

// AllCounts 含副露, 杠按4张计
func (h *Hand) AllCounts() [TileCount]int8 {
	all := h.Counts
	for _, m := range h.Melds {
		for _, t := range m.Tiles() {
			all[t]++
		}
	}
	return all
}

func (h *Hand) IsClosed() bool {
	for _, m := range h.Melds {
		if m.Open() {
			return false
		}
	}
	return true
}

func (h *Hand) KanCount() int {
	n := 0
	for _, m := range h.Melds {
		if m.IsKan() {
			n++
		}
	}
	return n
}

// Validate 每种牌不超4张, 总张数1~14(杠按3张折算)
func (h *Hand) Validate() error {
	if h.WinTile != TileNull && (!h.WinTile.IsValid() || h.Counts[h.WinTile] == 0) {
		return ErrInvalidHand
	}
	total := h.ConcealedCount() + len(h.Melds)*3
	if total < 1 || total > 14 {
		return ErrInvalidHand
	}
	for t := Tile(0); t < TileCount; t++ {
		if h.Counts[t] < 0 || h.TileCountOf(t) > 4 {
			return ErrInvalidHand
		}
	}
	for _, m := range h.Melds {
		if !m.Tile.IsValid() {
			return ErrInvalidHand
		}
		if m.Kind == MeldChi && (!m.Tile.IsSuit() || m.Tile.Rank() > 6) {
			return ErrInvalidHand
		}
	}
	return nil
}

// IsComplete 是否14张完成形(杠折算)
func (h *Hand) IsComplete() bool {
	return h.ConcealedCount()+len(h.Melds)*3 == 14
}

func (h *Hand) String() string {
	var sb strings.Builder
	writeCounts := func(counts [TileCount]int8) {
		for suit := SuitMan; suit <= SuitHonor; suit++ {
			wrote := false
			for rank := 0; rank < 9; rank++ {
				t := MakeTile(suit, rank)
				if t >= TileCount {
					break
				}
				for i := int8(0); i < counts[t]; i++ {
					sb.WriteByte(byte('1' + rank))
					wrote = true
				}
			}
			if wrote {
				sb.WriteByte(suitRunes[suit])
			}
		}
	}
	writeCounts(h.Counts)
	for _, m := range h.Melds {
		sb.WriteByte(' ')
		sb.WriteString(strings.ReplaceAll(TilesString(m.Tiles()), " ", ""))
	}
	return sb.String()
}
