package riichi

// 流し满贯: 由局面判定, 按5番役处理
func checkNagashiMangan(e *evalState) (int, bool) {
	if e.ctx.NagashiMangan {
		return 5, false
	}
	return 0, false
}
