package riichi

// Context 和牌时的局面状态
type Context struct {
	Tsumo        bool // 自摸
	Riichi       bool
	DoubleRiichi bool
	Ippatsu      bool // 一发, 需立直
	Dealer       bool // 庄家
	SeatWind     Wind
	RoundWind    Wind

	LastWallTile  bool // 海底
	LastDiscard   bool // 河底
	DeadWallDraw  bool // 岭上
	RobbedKan     bool // 抢杠
	FirstTurn     bool // 天和/地和用, 第一巡无鸣牌
	NagashiMangan bool

	DoraIndicators []Tile
	UraIndicators  []Tile // 立直才计
	RedFives       int    // 赤5数量
}

func (c *Context) clone() *Context {
	if c == nil {
		return &Context{}
	}
	cc := *c
	return &cc
}

// IsYakuhaiPair 将牌是否役牌(连风各算一次)
func (c *Context) IsYakuhaiPair(t Tile) bool {
	return t.IsDragon() || t == c.SeatWind.Tile() || t == c.RoundWind.Tile()
}
