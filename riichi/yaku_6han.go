package riichi

// 清一色
func checkChinitsu(e *evalState) (int, bool) {
	if len(e.suitsUsed()) != 1 || e.anyTile(Tile.IsHonor) {
		return 0, false
	}
	return e.downgrade(6)
}
