package riichi

type Yaku int32

const (
	YakuRiichi Yaku = iota
	YakuDoubleRiichi
	YakuIppatsu
	YakuMenzenTsumo
	YakuPinfu
	YakuIipeiko
	YakuTanyao
	YakuSeatWind
	YakuRoundWind
	YakuWhiteDragon
	YakuGreenDragon
	YakuRedDragon
	YakuHaitei
	YakuHoutei
	YakuRinshan
	YakuChankan
	YakuChiitoitsu
	YakuSanshokuDoujun
	YakuIttsu
	YakuChanta
	YakuToitoi
	YakuSanankou
	YakuSanshokuDoukou
	YakuHonroutou
	YakuShousangen
	YakuRyanpeiko
	YakuJunchan
	YakuHonitsu
	YakuNagashiMangan
	YakuChinitsu
	YakuKokushi
	YakuSuuankou
	YakuDaisangen
	YakuShousuushi
	YakuDaisuushi
	YakuTsuuiisou
	YakuChinroutou
	YakuRyuuiisou
	YakuChuuren
	YakuSuukantsu
	YakuTenhou
	YakuChiihou
	YakuDora
	YakuUraDora
	YakuRedFive
)

var yakuNamesEn = map[Yaku]string{
	YakuRiichi:         "Riichi",
	YakuDoubleRiichi:   "Double Riichi",
	YakuIppatsu:        "Ippatsu",
	YakuMenzenTsumo:    "Menzen Tsumo",
	YakuPinfu:          "Pinfu",
	YakuIipeiko:        "Iipeiko",
	YakuTanyao:         "Tanyao",
	YakuSeatWind:       "Seat Wind",
	YakuRoundWind:      "Prevalent Wind",
	YakuWhiteDragon:    "White Dragon",
	YakuGreenDragon:    "Green Dragon",
	YakuRedDragon:      "Red Dragon",
	YakuHaitei:         "Haitei Raoyue",
	YakuHoutei:         "Houtei Raoyui",
	YakuRinshan:        "Rinshan Kaihou",
	YakuChankan:        "Chankan",
	YakuChiitoitsu:     "Chiitoitsu",
	YakuSanshokuDoujun: "Sanshoku Doujun",
	YakuIttsu:          "Ittsu",
	YakuChanta:         "Chanta",
	YakuToitoi:         "Toitoi",
	YakuSanankou:       "Sanankou",
	YakuSanshokuDoukou: "Sanshoku Doukou",
	YakuHonroutou:      "Honroutou",
	YakuShousangen:     "Shousangen",
	YakuRyanpeiko:      "Ryanpeiko",
	YakuJunchan:        "Junchan",
	YakuHonitsu:        "Honitsu",
	YakuNagashiMangan:  "Nagashi Mangan",
	YakuChinitsu:       "Chinitsu",
	YakuKokushi:        "Kokushi Musou",
	YakuSuuankou:       "Suuankou",
	YakuDaisangen:      "Daisangen",
	YakuShousuushi:     "Shousuushi",
	YakuDaisuushi:      "Daisuushi",
	YakuTsuuiisou:      "Tsuuiisou",
	YakuChinroutou:     "Chinroutou",
	YakuRyuuiisou:      "Ryuuiisou",
	YakuChuuren:        "Chuuren Poutou",
	YakuSuukantsu:      "Suukantsu",
	YakuTenhou:         "Tenhou",
	YakuChiihou:        "Chiihou",
	YakuDora:           "Dora",
	YakuUraDora:        "Ura Dora",
	YakuRedFive:        "Red Five",
}

var yakuNamesJa = map[Yaku]string{
	YakuRiichi:         "立直",
	YakuDoubleRiichi:   "ダブル立直",
	YakuIppatsu:        "一発",
	YakuMenzenTsumo:    "門前清自摸和",
	YakuPinfu:          "平和",
	YakuIipeiko:        "一盃口",
	YakuTanyao:         "断幺九",
	YakuSeatWind:       "自風牌",
	YakuRoundWind:      "場風牌",
	YakuWhiteDragon:    "白",
	YakuGreenDragon:    "發",
	YakuRedDragon:      "中",
	YakuHaitei:         "海底摸月",
	YakuHoutei:         "河底撈魚",
	YakuRinshan:        "嶺上開花",
	YakuChankan:        "槍槓",
	YakuChiitoitsu:     "七対子",
	YakuSanshokuDoujun: "三色同順",
	YakuIttsu:          "一気通貫",
	YakuChanta:         "混全帯幺九",
	YakuToitoi:         "対々和",
	YakuSanankou:       "三暗刻",
	YakuSanshokuDoukou: "三色同刻",
	YakuHonroutou:      "混老頭",
	YakuShousangen:     "小三元",
	YakuRyanpeiko:      "二盃口",
	YakuJunchan:        "純全帯幺九",
	YakuHonitsu:        "混一色",
	YakuNagashiMangan:  "流し満貫",
	YakuChinitsu:       "清一色",
	YakuKokushi:        "国士無双",
	YakuSuuankou:       "四暗刻",
	YakuDaisangen:      "大三元",
	YakuShousuushi:     "小四喜",
	YakuDaisuushi:      "大四喜",
	YakuTsuuiisou:      "字一色",
	YakuChinroutou:     "清老頭",
	YakuRyuuiisou:      "緑一色",
	YakuChuuren:        "九蓮宝燈",
	YakuSuukantsu:      "四槓子",
	YakuTenhou:         "天和",
	YakuChiihou:        "地和",
	YakuDora:           "ドラ",
	YakuUraDora:        "裏ドラ",
	YakuRedFive:        "赤ドラ",
}

func (y Yaku) IsYakuman() bool {
	return y >= YakuKokushi && y <= YakuChiihou
}

// IsExtra 宝牌类, 加番不算役
func (y Yaku) IsExtra() bool {
	return y == YakuDora || y == YakuUraDora || y == YakuRedFive
}

func (y Yaku) Name(lang Lang) string {
	if lang == LangJa {
		return yakuNamesJa[y]
	}
	return yakuNamesEn[y]
}

// YakuValue 一个成立的番种
type YakuValue struct {
	Yaku Yaku
	Han  int
	Open bool // 食い下がり
}

func (y YakuValue) Name(lang Lang) string {
	name := y.Yaku.Name(lang)
	if !y.Open {
		return name
	}
	if lang == LangJa {
		return name + "（鳴）"
	}
	return name + " (Open)"
}

// evalState 单个拆解的判定状态
type evalState struct {
	hand   *Hand
	all    [TileCount]int8
	d      *Decomposition
	ctx    *Context
	rules  *Rules
	closed bool
}

func newEvalState(h *Hand, d *Decomposition, ctx *Context, rules *Rules) *evalState {
	return &evalState{
		hand:   h,
		all:    h.AllCounts(),
		d:      d,
		ctx:    ctx,
		rules:  rules,
		closed: h.IsClosed(),
	}
}

// downgrade 门清为基准番, 副露减1
func (e *evalState) downgrade(closedHan int) (int, bool) {
	if e.closed {
		return closedHan, false
	}
	return closedHan - 1, true
}

func (e *evalState) sequences() []Group {
	var res []Group
	for _, g := range e.d.Groups {
		if g.IsSequence() {
			res = append(res, g)
		}
	}
	return res
}

func (e *evalState) tripletTiles() []Tile {
	var res []Tile
	for _, g := range e.d.Groups {
		if g.IsTripletLike() {
			res = append(res, g.Tile)
		}
	}
	return res
}

func (e *evalState) concealedTriplets() int {
	n := 0
	for i := range e.d.Groups {
		if e.d.ConcealedTriplet(i, e.ctx.Tsumo) {
			n++
		}
	}
	return n
}

func (e *evalState) identicalSeqPairs() int {
	seqs := e.sequences()
	pairs := 0
	for i := 0; i < len(seqs); i++ {
		for j := i + 1; j < len(seqs); j++ {
			if seqs[i].Tile == seqs[j].Tile {
				pairs++
				seqs[j].Tile = TileNull
				break
			}
		}
	}
	return pairs
}

func (e *evalState) everyTile(pred func(Tile) bool) bool {
	for t := Tile(0); t < TileCount; t++ {
		if e.all[t] > 0 && !pred(t) {
			return false
		}
	}
	return true
}

func (e *evalState) anyTile(pred func(Tile) bool) bool {
	for t := Tile(0); t < TileCount; t++ {
		if e.all[t] > 0 && pred(t) {
			return true
		}
	}
	return false
}

// suitsUsed 用到的数牌花色
func (e *evalState) suitsUsed() []Suit {
	var res []Suit
	for s := SuitMan; s <= SuitSou; s++ {
		for r := 0; r < 9; r++ {
			if e.all[MakeTile(s, r)] > 0 {
				res = append(res, s)
				break
			}
		}
	}
	return res
}

type yakuChecker struct {
	yaku  Yaku
	check func(*evalState) (int, bool)
}

// 判定顺序固定, 役满放最后统一筛选
var yakuCheckers = []yakuChecker{
	{YakuRiichi, checkRiichi},
	{YakuDoubleRiichi, checkDoubleRiichi},
	{YakuIppatsu, checkIppatsu},
	{YakuMenzenTsumo, checkMenzenTsumo},
	{YakuPinfu, checkPinfu},
	{YakuIipeiko, checkIipeiko},
	{YakuTanyao, checkTanyao},
	{YakuSeatWind, checkSeatWind},
	{YakuRoundWind, checkRoundWind},
	{YakuWhiteDragon, checkWhiteDragon},
	{YakuGreenDragon, checkGreenDragon},
	{YakuRedDragon, checkRedDragon},
	{YakuHaitei, checkHaitei},
	{YakuHoutei, checkHoutei},
	{YakuRinshan, checkRinshan},
	{YakuChankan, checkChankan},
	{YakuChiitoitsu, checkChiitoitsu},
	{YakuSanshokuDoujun, checkSanshokuDoujun},
	{YakuIttsu, checkIttsu},
	{YakuChanta, checkChanta},
	{YakuToitoi, checkToitoi},
	{YakuSanankou, checkSanankou},
	{YakuSanshokuDoukou, checkSanshokuDoukou},
	{YakuHonroutou, checkHonroutou},
	{YakuShousangen, checkShousangen},
	{YakuRyanpeiko, checkRyanpeiko},
	{YakuJunchan, checkJunchan},
	{YakuHonitsu, checkHonitsu},
	{YakuNagashiMangan, checkNagashiMangan},
	{YakuChinitsu, checkChinitsu},
	{YakuKokushi, checkKokushi},
	{YakuSuuankou, checkSuuankou},
	{YakuDaisangen, checkDaisangen},
	{YakuShousuushi, checkShousuushi},
	{YakuDaisuushi, checkDaisuushi},
	{YakuTsuuiisou, checkTsuuiisou},
	{YakuChinroutou, checkChinroutou},
	{YakuRyuuiisou, checkRyuuiisou},
	{YakuChuuren, checkChuuren},
	{YakuSuukantsu, checkSuukantsu},
	{YakuTenhou, checkTenhou},
	{YakuChiihou, checkChiihou},
}

// evalYaku 判定一个拆解的全部番种, 役满成立时仅保留役满
func evalYaku(e *evalState) []YakuValue {
	var res []YakuValue
	hasYakuman := false
	for _, c := range yakuCheckers {
		han, open := c.check(e)
		if han <= 0 {
			continue
		}
		if c.yaku.IsYakuman() {
			hasYakuman = true
		}
		res = append(res, YakuValue{Yaku: c.yaku, Han: han, Open: open})
	}
	if hasYakuman {
		var ym []YakuValue
		for _, y := range res {
			if y.Yaku.IsYakuman() {
				ym = append(ym, y)
			}
		}
		return ym
	}
	return res
}
