package riichi

import "sync"

// blockOutcome 一个花色内的分解结果: 面子数+搭子数(含将牌候选)
type blockOutcome struct {
	melds    int8
	partials int8
}

// blockTable 按花色缓存分解结果, key为计数的5进制编码
type blockTable struct {
	mu    sync.RWMutex
	items map[uint32][]blockOutcome
	runs  bool // 字牌不能成顺
}

var (
	suitTable  = &blockTable{items: make(map[uint32][]blockOutcome), runs: true}
	honorTable = &blockTable{items: make(map[uint32][]blockOutcome), runs: false}
)

func packCounts(counts []int8) uint32 {
	var code uint32
	for i := len(counts) - 1; i >= 0; i-- {
		code = code*5 + uint32(counts[i])
	}
	return code
}

func (b *blockTable) outcomes(counts []int8) []blockOutcome {
	code := packCounts(counts)
	b.mu.RLock()
	res, ok := b.items[code]
	b.mu.RUnlock()
	if ok {
		return res
	}

	cc := make([]int8, len(counts))
	copy(cc, counts)
	var set []blockOutcome
	walkBlock(cc, 0, 0, 0, b.runs, &set)
	res = pruneOutcomes(set)

	b.mu.Lock()
	b.items[code] = res
	b.mu.Unlock()
	return res
}

// walkBlock 从低位起枚举刻子/顺子/搭子的所有取法
func walkBlock(counts []int8, i int, melds, partials int8, runs bool, out *[]blockOutcome) {
	for i < len(counts) && counts[i] == 0 {
		i++
	}
	if i == len(counts) {
		*out = append(*out, blockOutcome{melds: melds, partials: partials})
		return
	}

	if counts[i] >= 3 {
		counts[i] -= 3
		walkBlock(counts, i, melds+1, partials, runs, out)
		counts[i] += 3
	}
	if runs && i+2 < len(counts) && counts[i+1] > 0 && counts[i+2] > 0 {
		counts[i]--
		counts[i+1]--
		counts[i+2]--
		walkBlock(counts, i, melds+1, partials, runs, out)
		counts[i]++
		counts[i+1]++
		counts[i+2]++
	}
	if counts[i] >= 2 {
		counts[i] -= 2
		walkBlock(counts, i, melds, partials+1, runs, out)
		counts[i] += 2
	}
	if runs && i+1 < len(counts) && counts[i+1] > 0 {
		counts[i]--
		counts[i+1]--
		walkBlock(counts, i, melds, partials+1, runs, out)
		counts[i]++
		counts[i+1]++
	}
	if runs && i+2 < len(counts) && counts[i+2] > 0 {
		counts[i]--
		counts[i+2]--
		walkBlock(counts, i, melds, partials+1, runs, out)
		counts[i]++
		counts[i+2]++
	}
	// 当孤张弃掉
	counts[i]--
	walkBlock(counts, i, melds, partials, runs, out)
	counts[i]++
}

// pruneOutcomes 去掉被支配的结果(面子和搭子都不更多)
func pruneOutcomes(set []blockOutcome) []blockOutcome {
	var res []blockOutcome
	for _, o := range set {
		dominated := false
		for _, p := range set {
			if p == o {
				continue
			}
			if p.melds >= o.melds && p.partials >= o.partials {
				dominated = true
				break
			}
		}
		if !dominated {
			dup := false
			for _, r := range res {
				if r == o {
					dup = true
					break
				}
			}
			if !dup {
				res = append(res, o)
			}
		}
	}
	return res
}
