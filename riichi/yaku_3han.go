package riichi

// 二盃口: 门清两组一盃口, 与七对子互斥取高
func checkRyanpeiko(e *evalState) (int, bool) {
	if !e.closed || e.d.Form != FormStandard {
		return 0, false
	}
	if e.identicalSeqPairs() == 2 {
		return 3, false
	}
	return 0, false
}

// 纯全带幺九: 每组带老头牌且无字牌
func checkJunchan(e *evalState) (int, bool) {
	if e.d.Form != FormStandard || !e.d.Pair.IsTerminal() {
		return 0, false
	}
	hasSeq := false
	for _, g := range e.d.Groups {
		if !groupHasTerminalOrHonor(g) || g.Tile.IsHonor() {
			return 0, false
		}
		if g.IsSequence() {
			hasSeq = true
		}
	}
	if !hasSeq {
		return 0, false
	}
	return e.downgrade(3)
}

// 混一色
func checkHonitsu(e *evalState) (int, bool) {
	if len(e.suitsUsed()) != 1 || !e.anyTile(Tile.IsHonor) {
		return 0, false
	}
	return e.downgrade(3)
}
