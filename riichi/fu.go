package riichi

type FuKind int32

const (
	FuBase FuKind = iota
	FuChiitoitsu
	FuThirteenOrphans
	FuMenzenRon
	FuTsumo
	FuTriplet
	FuKan
	FuYakuhaiPair
	FuWait
	FuOpenPinfu
)

var fuNamesEn = map[FuKind]string{
	FuBase:            "Base",
	FuChiitoitsu:      "Chiitoitsu",
	FuThirteenOrphans: "Kokushi",
	FuMenzenRon:       "Concealed Ron",
	FuTsumo:           "Tsumo",
	FuTriplet:         "Triplet",
	FuKan:             "Kan",
	FuYakuhaiPair:     "Value Pair",
	FuWait:            "Wait",
	FuOpenPinfu:       "Open Pinfu Ron",
}

var fuNamesJa = map[FuKind]string{
	FuBase:            "副底",
	FuChiitoitsu:      "七対子",
	FuThirteenOrphans: "国士無双",
	FuMenzenRon:       "門前加符",
	FuTsumo:           "自摸符",
	FuTriplet:         "刻子",
	FuKan:             "槓子",
	FuYakuhaiPair:     "役牌雀頭",
	FuWait:            "待ち",
	FuOpenPinfu:       "食い平和",
}

func (k FuKind) Name(lang Lang) string {
	if lang == LangJa {
		return fuNamesJa[k]
	}
	return fuNamesEn[k]
}

type FuDetail struct {
	Kind  FuKind
	Value int
}

// calcFu 算符, 固定符型(七对25/国士30/平和自摸20)不进位
func calcFu(h *Hand, d *Decomposition, ctx *Context) (int, []FuDetail) {
	switch d.Form {
	case FormSevenPairs:
		return 25, []FuDetail{{FuChiitoitsu, 25}}
	case FormThirteenOrphans:
		return 30, []FuDetail{{FuThirteenOrphans, 30}}
	}

	closed := h.IsClosed()
	pinfuShape := isPinfuShape(d, ctx)
	if pinfuShape && closed && ctx.Tsumo {
		return 20, []FuDetail{{FuBase, 20}}
	}

	details := []FuDetail{{FuBase, 20}}
	if closed && !ctx.Tsumo {
		details = append(details, FuDetail{FuMenzenRon, 10})
	}
	if ctx.Tsumo {
		details = append(details, FuDetail{FuTsumo, 2})
	}

	for i, g := range d.Groups {
		if !g.IsTripletLike() {
			continue
		}
		fu := 2
		if d.ConcealedTriplet(i, ctx.Tsumo) {
			fu = 4
		}
		if g.Tile.IsTerminalOrHonor() {
			fu *= 2
		}
		kind := FuTriplet
		if g.Kind == GroupKan {
			fu *= 4
			kind = FuKan
		}
		details = append(details, FuDetail{kind, fu})
	}

	if d.Pair.IsDragon() {
		details = append(details, FuDetail{FuYakuhaiPair, 2})
	}
	if d.Pair == ctx.SeatWind.Tile() {
		details = append(details, FuDetail{FuYakuhaiPair, 2})
	}
	if d.Pair == ctx.RoundWind.Tile() {
		details = append(details, FuDetail{FuYakuhaiPair, 2})
	}

	switch d.Wait {
	case WaitTanki, WaitKanchan, WaitPenchan:
		details = append(details, FuDetail{FuWait, 2})
	}

	fu := 0
	for _, fd := range details {
		fu += fd.Value
	}
	// 食い平和形荣和补到30
	if fu == 20 && !closed {
		details = append(details, FuDetail{FuOpenPinfu, 10})
		fu = 30
	}
	return (fu + 9) / 10 * 10, details
}

func isPinfuShape(d *Decomposition, ctx *Context) bool {
	if d.Form != FormStandard || d.Wait != WaitRyanmen {
		return false
	}
	for _, g := range d.Groups {
		if !g.IsSequence() {
			return false
		}
	}
	return !ctx.IsYakuhaiPair(d.Pair)
}
