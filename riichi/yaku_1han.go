package riichi

func checkRiichi(e *evalState) (int, bool) {
	if e.ctx.Riichi && !e.ctx.DoubleRiichi && e.closed {
		return 1, false
	}
	return 0, false
}

func checkDoubleRiichi(e *evalState) (int, bool) {
	if e.ctx.DoubleRiichi && e.closed {
		return 2, false
	}
	return 0, false
}

func checkIppatsu(e *evalState) (int, bool) {
	if e.ctx.Ippatsu && (e.ctx.Riichi || e.ctx.DoubleRiichi) && e.closed {
		return 1, false
	}
	return 0, false
}

func checkMenzenTsumo(e *evalState) (int, bool) {
	if e.ctx.Tsumo && e.closed {
		return 1, false
	}
	return 0, false
}

// 平和: 门清4顺子+非役牌将+两面听
func checkPinfu(e *evalState) (int, bool) {
	if !e.closed || e.d.Form != FormStandard {
		return 0, false
	}
	if len(e.sequences()) != 4 || e.ctx.IsYakuhaiPair(e.d.Pair) {
		return 0, false
	}
	if e.d.Wait != WaitRyanmen {
		return 0, false
	}
	return 1, false
}

func checkIipeiko(e *evalState) (int, bool) {
	if !e.closed || e.d.Form != FormStandard {
		return 0, false
	}
	if e.identicalSeqPairs() == 1 {
		return 1, false
	}
	return 0, false
}

func checkTanyao(e *evalState) (int, bool) {
	if !e.closed && !e.rules.OpenTanyao {
		return 0, false
	}
	if e.everyTile(Tile.IsSimple) {
		return 1, false
	}
	return 0, false
}

func (e *evalState) tripletOf(t Tile) bool {
	for _, g := range e.d.Groups {
		if g.IsTripletLike() && g.Tile == t {
			return true
		}
	}
	return false
}

func checkSeatWind(e *evalState) (int, bool) {
	if e.d.Form == FormStandard && e.tripletOf(e.ctx.SeatWind.Tile()) {
		return 1, false
	}
	return 0, false
}

func checkRoundWind(e *evalState) (int, bool) {
	if e.d.Form == FormStandard && e.tripletOf(e.ctx.RoundWind.Tile()) {
		return 1, false
	}
	return 0, false
}

func checkWhiteDragon(e *evalState) (int, bool) {
	if e.d.Form == FormStandard && e.tripletOf(TileWhite) {
		return 1, false
	}
	return 0, false
}

func checkGreenDragon(e *evalState) (int, bool) {
	if e.d.Form == FormStandard && e.tripletOf(TileGreen) {
		return 1, false
	}
	return 0, false
}

func checkRedDragon(e *evalState) (int, bool) {
	if e.d.Form == FormStandard && e.tripletOf(TileRed) {
		return 1, false
	}
	return 0, false
}

func checkHaitei(e *evalState) (int, bool) {
	if e.ctx.LastWallTile && e.ctx.Tsumo {
		return 1, false
	}
	return 0, false
}

func checkHoutei(e *evalState) (int, bool) {
	if e.ctx.LastDiscard && !e.ctx.Tsumo {
		return 1, false
	}
	return 0, false
}

func checkRinshan(e *evalState) (int, bool) {
	if e.ctx.DeadWallDraw && e.ctx.Tsumo {
		return 1, false
	}
	return 0, false
}

func checkChankan(e *evalState) (int, bool) {
	if e.ctx.RobbedKan && !e.ctx.Tsumo {
		return 1, false
	}
	return 0, false
}
