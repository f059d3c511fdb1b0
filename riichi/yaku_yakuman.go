package riichi

const hanYakuman = 13

func checkKokushi(e *evalState) (int, bool) {
	if e.d.Form == FormThirteenOrphans {
		return hanYakuman, false
	}
	return 0, false
}

// 四暗刻: 荣和刻子算明刻, 单骑荣和仍成立
func checkSuuankou(e *evalState) (int, bool) {
	if !e.closed || e.d.Form != FormStandard {
		return 0, false
	}
	if e.concealedTriplets() == 4 {
		return hanYakuman, false
	}
	return 0, false
}

func checkDaisangen(e *evalState) (int, bool) {
	if e.d.Form != FormStandard {
		return 0, false
	}
	n := 0
	for _, t := range e.tripletTiles() {
		if t.IsDragon() {
			n++
		}
	}
	if n == 3 {
		return hanYakuman, false
	}
	return 0, false
}

func (e *evalState) windTriplets() int {
	n := 0
	for _, t := range e.tripletTiles() {
		if t.IsWind() {
			n++
		}
	}
	return n
}

func checkShousuushi(e *evalState) (int, bool) {
	if e.d.Form == FormStandard && e.windTriplets() == 3 && e.d.Pair.IsWind() {
		return hanYakuman, false
	}
	return 0, false
}

func checkDaisuushi(e *evalState) (int, bool) {
	if e.d.Form == FormStandard && e.windTriplets() == 4 {
		return hanYakuman, false
	}
	return 0, false
}

func checkTsuuiisou(e *evalState) (int, bool) {
	if e.d.Form == FormThirteenOrphans {
		return 0, false
	}
	if e.everyTile(Tile.IsHonor) {
		return hanYakuman, false
	}
	return 0, false
}

func checkChinroutou(e *evalState) (int, bool) {
	if e.d.Form == FormStandard && e.everyTile(Tile.IsTerminal) {
		return hanYakuman, false
	}
	return 0, false
}

// 绿一色
func checkRyuuiisou(e *evalState) (int, bool) {
	if e.d.Form == FormThirteenOrphans {
		return 0, false
	}
	if e.everyTile(Tile.IsGreenTile) {
		return hanYakuman, false
	}
	return 0, false
}

// 九莲宝灯: 门清清一色1112345678999+任意1张
func checkChuuren(e *evalState) (int, bool) {
	if !e.closed || e.d.Form != FormStandard || len(e.hand.Melds) != 0 {
		return 0, false
	}
	suits := e.suitsUsed()
	if len(suits) != 1 || e.anyTile(Tile.IsHonor) {
		return 0, false
	}
	base := MakeTile(suits[0], 0)
	if e.all[base] < 3 || e.all[base+8] < 3 {
		return 0, false
	}
	for r := 1; r <= 7; r++ {
		if e.all[base+Tile(r)] < 1 {
			return 0, false
		}
	}
	return hanYakuman, false
}

func checkSuukantsu(e *evalState) (int, bool) {
	if e.hand.KanCount() == 4 {
		return hanYakuman, false
	}
	return 0, false
}

func checkTenhou(e *evalState) (int, bool) {
	if e.ctx.FirstTurn && e.ctx.Dealer && e.ctx.Tsumo && e.closed {
		return hanYakuman, false
	}
	return 0, false
}

func checkChiihou(e *evalState) (int, bool) {
	if e.ctx.FirstTurn && !e.ctx.Dealer && e.ctx.Tsumo && e.closed {
		return hanYakuman, false
	}
	return 0, false
}
