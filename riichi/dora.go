package riichi

// CountDora 含副露, 杠按4张计
func CountDora(h *Hand, indicators []Tile) int {
	if len(indicators) == 0 {
		return 0
	}
	all := h.AllCounts()
	n := 0
	for _, ind := range indicators {
		d := ind.NextTile()
		if d.IsValid() {
			n += int(all[d])
		}
	}
	return n
}

// doraValues 宝牌类加番, 不计役
func doraValues(h *Hand, ctx *Context) []YakuValue {
	var res []YakuValue
	if n := CountDora(h, ctx.DoraIndicators); n > 0 {
		res = append(res, YakuValue{Yaku: YakuDora, Han: n})
	}
	if ctx.Riichi || ctx.DoubleRiichi {
		if n := CountDora(h, ctx.UraIndicators); n > 0 {
			res = append(res, YakuValue{Yaku: YakuUraDora, Han: n})
		}
	}
	if ctx.RedFives > 0 {
		res = append(res, YakuValue{Yaku: YakuRedFive, Han: ctx.RedFives})
	}
	return res
}
