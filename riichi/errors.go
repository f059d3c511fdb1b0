package riichi

import "errors"

var (
	// ErrInvalidHand 牌型非法(张数超4或总数不对)
	ErrInvalidHand = errors.New("riichi: invalid hand")
	// ErrIncompleteHand 和牌计算要求14张完成形
	ErrIncompleteHand = errors.New("riichi: hand is not complete")
	// ErrNoYaku 无役(宝牌不算役)
	ErrNoYaku = errors.New("riichi: no yaku")
)
