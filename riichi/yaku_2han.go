package riichi

func checkChiitoitsu(e *evalState) (int, bool) {
	if e.d.Form == FormSevenPairs {
		return 2, false
	}
	return 0, false
}

// 三色同顺
func checkSanshokuDoujun(e *evalState) (int, bool) {
	if e.d.Form != FormStandard {
		return 0, false
	}
	var ranks [9][3]bool
	for _, g := range e.sequences() {
		ranks[g.Tile.Rank()][g.Tile.Suit()] = true
	}
	for r := 0; r < 9; r++ {
		if ranks[r][SuitMan] && ranks[r][SuitPin] && ranks[r][SuitSou] {
			return e.downgrade(2)
		}
	}
	return 0, false
}

// 一气通贯
func checkIttsu(e *evalState) (int, bool) {
	if e.d.Form != FormStandard {
		return 0, false
	}
	var parts [3][3]bool
	for _, g := range e.sequences() {
		r := g.Tile.Rank()
		if r%3 == 0 {
			parts[g.Tile.Suit()][r/3] = true
		}
	}
	for s := 0; s < 3; s++ {
		if parts[s][0] && parts[s][1] && parts[s][2] {
			return e.downgrade(2)
		}
	}
	return 0, false
}

// groupHasTerminalOrHonor 组内是否带幺九
func groupHasTerminalOrHonor(g Group) bool {
	if g.IsSequence() {
		return g.Tile.Rank() == 0 || g.Tile.Rank() == 6
	}
	return g.Tile.IsTerminalOrHonor()
}

// 混全带幺九: 每组带幺九, 须有顺子和字牌
func checkChanta(e *evalState) (int, bool) {
	if e.d.Form != FormStandard || !e.d.Pair.IsTerminalOrHonor() {
		return 0, false
	}
	hasSeq := false
	for _, g := range e.d.Groups {
		if !groupHasTerminalOrHonor(g) {
			return 0, false
		}
		if g.IsSequence() {
			hasSeq = true
		}
	}
	if !hasSeq || !e.anyTile(Tile.IsHonor) {
		return 0, false
	}
	return e.downgrade(2)
}

func checkToitoi(e *evalState) (int, bool) {
	if e.d.Form != FormStandard {
		return 0, false
	}
	for _, g := range e.d.Groups {
		if g.IsSequence() {
			return 0, false
		}
	}
	return 2, false
}

func checkSanankou(e *evalState) (int, bool) {
	if e.d.Form == FormStandard && e.concealedTriplets() == 3 {
		return 2, false
	}
	return 0, false
}

// 三色同刻
func checkSanshokuDoukou(e *evalState) (int, bool) {
	if e.d.Form != FormStandard {
		return 0, false
	}
	var ranks [9][3]bool
	for _, t := range e.tripletTiles() {
		if t.IsSuit() {
			ranks[t.Rank()][t.Suit()] = true
		}
	}
	for r := 0; r < 9; r++ {
		if ranks[r][SuitMan] && ranks[r][SuitPin] && ranks[r][SuitSou] {
			return 2, false
		}
	}
	return 0, false
}

// 混老头: 全幺九无顺子, 字牌老头牌都要有
func checkHonroutou(e *evalState) (int, bool) {
	if e.d.Form == FormThirteenOrphans {
		return 0, false
	}
	if !e.everyTile(Tile.IsTerminalOrHonor) {
		return 0, false
	}
	if !e.anyTile(Tile.IsHonor) || !e.anyTile(Tile.IsTerminal) {
		return 0, false
	}
	return 2, false
}

// 小三元
func checkShousangen(e *evalState) (int, bool) {
	if e.d.Form != FormStandard || !e.d.Pair.IsDragon() {
		return 0, false
	}
	n := 0
	for _, t := range e.tripletTiles() {
		if t.IsDragon() {
			n++
		}
	}
	if n == 2 {
		return 2, false
	}
	return 0, false
}
