package riichi

import (
	"fmt"
	"slices"
)

type Form int32

const (
	FormStandard Form = iota
	FormSevenPairs
	FormThirteenOrphans
)

type Wait int32

const (
	WaitNone Wait = iota
	WaitRyanmen
	WaitKanchan
	WaitPenchan
	WaitShanpon
	WaitTanki
	WaitThirteen
)

type GroupKind int32

const (
	GroupSequence GroupKind = iota
	GroupTriplet
	GroupKan
)

// Group 完成形中的一组面子, Open指副露(杠中Open=false为暗杠)
type Group struct {
	Kind GroupKind
	Tile Tile
	Open bool
}

func (g Group) IsSequence() bool {
	return g.Kind == GroupSequence
}

func (g Group) IsTripletLike() bool {
	return g.Kind == GroupTriplet || g.Kind == GroupKan
}

func (g Group) containsTile(t Tile) bool {
	if g.IsSequence() {
		return t >= g.Tile && t <= g.Tile+2
	}
	return t == g.Tile
}

// Decomposition 和牌的一种拆解
type Decomposition struct {
	Form   Form
	Groups []Group // 标准形4组(含副露)
	Pair   Tile    // 标准形将牌
	Pairs  []Tile  // 七对子
	Wait   Wait
	// WinGroup 和牌张所在组下标, 将牌为-1
	WinGroup int
	WinTile  Tile
}

// ConcealedTriplet 荣和完成的刻子视为明刻
func (d *Decomposition) ConcealedTriplet(i int, tsumo bool) bool {
	g := d.Groups[i]
	if !g.IsTripletLike() || g.Open {
		return false
	}
	if g.Kind == GroupTriplet && d.WinGroup == i && !tsumo {
		return false
	}
	return true
}

func collectDecompositions(h *Hand, res *ShantenResult) []*Decomposition {
	if !h.IsComplete() {
		return nil
	}
	var decomps []*Decomposition
	if res.Standard == -1 {
		decomps = append(decomps, standardDecompositions(h)...)
	}
	if res.SevenPairs == -1 {
		decomps = append(decomps, sevenPairsDecomposition(h))
	}
	if res.Orphans == -1 {
		decomps = append(decomps, orphansDecomposition(h))
	}
	return decomps
}

func standardDecompositions(h *Hand) []*Decomposition {
	opens := make([]Group, 0, len(h.Melds))
	for _, m := range h.Melds {
		switch m.Kind {
		case MeldChi:
			opens = append(opens, Group{Kind: GroupSequence, Tile: m.Tile, Open: true})
		case MeldPon:
			opens = append(opens, Group{Kind: GroupTriplet, Tile: m.Tile, Open: true})
		case MeldMinkan:
			opens = append(opens, Group{Kind: GroupKan, Tile: m.Tile, Open: true})
		case MeldAnkan:
			opens = append(opens, Group{Kind: GroupKan, Tile: m.Tile})
		}
	}

	counts := h.Counts
	var decomps []*Decomposition
	seen := make(map[string]bool)
	var groups []Group
	var walk func(start Tile, pair Tile)
	walk = func(start Tile, pair Tile) {
		t := start
		for t < TileCount && counts[t] == 0 {
			t++
		}
		if t == TileCount {
			if pair == TileNull || len(groups)+len(opens) != 4 {
				return
			}
			all := append(slices.Clone(opens), groups...)
			for _, d := range winVariants(all, pair, h.WinTile) {
				key := decompKey(d)
				if !seen[key] {
					seen[key] = true
					decomps = append(decomps, d)
				}
			}
			return
		}

		if pair == TileNull && counts[t] >= 2 {
			counts[t] -= 2
			walk(t, t)
			counts[t] += 2
		}
		if counts[t] >= 3 {
			counts[t] -= 3
			groups = append(groups, Group{Kind: GroupTriplet, Tile: t})
			walk(t, pair)
			groups = groups[:len(groups)-1]
			counts[t] += 3
		}
		if t.IsSuit() && t.Rank() <= 6 && counts[t+1] > 0 && counts[t+2] > 0 {
			counts[t]--
			counts[t+1]--
			counts[t+2]--
			groups = append(groups, Group{Kind: GroupSequence, Tile: t})
			walk(t, pair)
			groups = groups[:len(groups)-1]
			counts[t]++
			counts[t+1]++
			counts[t+2]++
		}
	}
	walk(0, TileNull)
	return decomps
}

// winVariants 枚举和牌张落点, 不同落点听型和符不同
func winVariants(groups []Group, pair Tile, winTile Tile) []*Decomposition {
	base := func() *Decomposition {
		return &Decomposition{
			Form:     FormStandard,
			Groups:   slices.Clone(groups),
			Pair:     pair,
			WinGroup: -1,
			WinTile:  winTile,
		}
	}
	if winTile == TileNull {
		d := base()
		d.Wait = WaitNone
		return []*Decomposition{d}
	}

	var variants []*Decomposition
	if pair == winTile {
		d := base()
		d.Wait = WaitTanki
		variants = append(variants, d)
	}
	for i, g := range groups {
		if g.Open || !g.containsTile(winTile) || g.Kind == GroupKan {
			continue
		}
		d := base()
		d.WinGroup = i
		if g.IsTripletLike() {
			d.Wait = WaitShanpon
		} else {
			d.Wait = sequenceWait(g.Tile, winTile)
		}
		variants = append(variants, d)
	}
	return variants
}

func sequenceWait(low, win Tile) Wait {
	switch {
	case win == low+1:
		return WaitKanchan
	case win == low+2 && low.Rank() == 0:
		return WaitPenchan
	case win == low && low.Rank() == 6:
		return WaitPenchan
	default:
		return WaitRyanmen
	}
}

func sevenPairsDecomposition(h *Hand) *Decomposition {
	d := &Decomposition{
		Form:     FormSevenPairs,
		Pair:     TileNull,
		Wait:     WaitTanki,
		WinGroup: -1,
		WinTile:  h.WinTile,
	}
	for t := Tile(0); t < TileCount; t++ {
		if h.Counts[t] == 2 {
			d.Pairs = append(d.Pairs, t)
		}
	}
	return d
}

func orphansDecomposition(h *Hand) *Decomposition {
	d := &Decomposition{
		Form:     FormThirteenOrphans,
		Pair:     TileNull,
		Wait:     WaitTanki,
		WinGroup: -1,
		WinTile:  h.WinTile,
	}
	for t := Tile(0); t < TileCount; t++ {
		if h.Counts[t] == 2 {
			d.Pair = t
		}
	}
	if d.Pair == h.WinTile {
		d.Wait = WaitThirteen
	}
	return d
}

func decompKey(d *Decomposition) string {
	gs := slices.Clone(d.Groups)
	slices.SortFunc(gs, func(a, b Group) int {
		if a.Kind != b.Kind {
			return int(a.Kind - b.Kind)
		}
		if a.Tile != b.Tile {
			return int(a.Tile - b.Tile)
		}
		if a.Open != b.Open {
			if a.Open {
				return 1
			}
			return -1
		}
		return 0
	})
	winGroup := Group{Tile: TileNull}
	if d.WinGroup >= 0 {
		winGroup = d.Groups[d.WinGroup]
	}
	key := fmt.Sprintf("%d|%d|%d:%d|", d.Pair, d.Wait, winGroup.Kind, winGroup.Tile)
	for _, g := range gs {
		key += fmt.Sprintf("%d:%d:%v;", g.Kind, g.Tile, g.Open)
	}
	return key
}
