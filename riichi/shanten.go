package riichi

import "sync"

// ShantenResult 向听数, -1为和牌
type ShantenResult struct {
	Shanten    int
	Standard   int
	SevenPairs int
	Orphans    int

	// 和牌时的全部拆解(不同拆法役种不同)
	Decompositions []*Decomposition
}

type shantenKey struct {
	counts [TileCount]int8
	open   int8
}

var shantenCache = struct {
	sync.RWMutex
	items map[shantenKey]int
}{items: make(map[shantenKey]int)}

// Shanten 计算向听数, 支持1~14张(副露按3张折算)
func Shanten(h *Hand) (*ShantenResult, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	res := &ShantenResult{
		Standard:   standardShanten(h),
		SevenPairs: sevenPairsShanten(h),
		Orphans:    orphansShanten(h),
	}
	res.Shanten = min(res.Standard, res.SevenPairs, res.Orphans)

	if res.Shanten == -1 {
		res.Decompositions = collectDecompositions(h, res)
	}
	return res, nil
}

func standardShanten(h *Hand) int {
	key := shantenKey{counts: h.Counts, open: int8(len(h.Melds))}
	shantenCache.RLock()
	v, ok := shantenCache.items[key]
	shantenCache.RUnlock()
	if ok {
		return v
	}

	counts := h.Counts
	open := len(h.Melds)
	best := combineBlocks(counts[:], open, false)
	// 先取将牌再拆面子
	for t := Tile(0); t < TileCount; t++ {
		if counts[t] >= 2 {
			counts[t] -= 2
			if s := combineBlocks(counts[:], open, true); s < best {
				best = s
			}
			counts[t] += 2
		}
	}

	shantenCache.Lock()
	shantenCache.items[key] = best
	shantenCache.Unlock()
	return best
}

// combineBlocks 四个花色块的分解结果组合出最小向听
func combineBlocks(counts []int8, openMelds int, hasPair bool) int {
	blocks := [][]blockOutcome{
		suitTable.outcomes(counts[0:9]),
		suitTable.outcomes(counts[9:18]),
		suitTable.outcomes(counts[18:27]),
		honorTable.outcomes(counts[27:34]),
	}

	best := 8
	var walk func(i int, melds, partials int8)
	walk = func(i int, melds, partials int8) {
		if i == len(blocks) {
			m := int(melds) + openMelds
			t := int(partials)
			if t > 4-m {
				t = 4 - m
			}
			s := 8 - 2*m - t
			if hasPair {
				s--
			}
			if s < best {
				best = s
			}
			return
		}
		for _, o := range blocks[i] {
			walk(i+1, melds+o.melds, partials+o.partials)
		}
	}
	walk(0, 0, 0)
	return best
}

func sevenPairsShanten(h *Hand) int {
	if len(h.Melds) != 0 {
		return 8
	}
	pairs, kinds := 0, 0
	for _, c := range h.Counts {
		if c >= 1 {
			kinds++
		}
		if c >= 2 {
			pairs++
		}
	}
	s := 6 - pairs
	if kinds < 7 {
		s += 7 - kinds
	}
	return s
}

func orphansShanten(h *Hand) int {
	if len(h.Melds) != 0 {
		return 13
	}
	kinds, hasPair := 0, 0
	for t := Tile(0); t < TileCount; t++ {
		if !t.IsTerminalOrHonor() || h.Counts[t] == 0 {
			continue
		}
		kinds++
		if h.Counts[t] >= 2 {
			hasPair = 1
		}
	}
	return 13 - kinds - hasPair
}
