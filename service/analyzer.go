package service

import (
	"context"
	"errors"

	"github.com/kevin-chtw/tw_riichi/riichi"
	pitaya "github.com/topfreegames/pitaya/v3/pkg"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/types/known/structpb"
)

// Analyzer 牌理服务, 无状态
type Analyzer struct {
	component.Base
	app   pitaya.Pitaya
	rules *riichi.Rules
}

func NewAnalyzer(app pitaya.Pitaya, rules *riichi.Rules) *Analyzer {
	if rules == nil {
		rules = riichi.DefaultRules()
	}
	return &Analyzer{
		app:   app,
		rules: rules,
	}
}

// Shanten 请求: {hand: "123m456p789s11222z"}
func (a *Analyzer) Shanten(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	hand, err := riichi.NewHand(req.GetFields()["hand"].GetStringValue())
	if err != nil {
		logger.Log.Errorf("parse hand: %v", err)
		return nil, err
	}

	res, err := riichi.Shanten(hand)
	if err != nil {
		return nil, err
	}
	return structpb.NewStruct(map[string]any{
		"shanten":     res.Shanten,
		"standard":    res.Standard,
		"seven_pairs": res.SevenPairs,
		"orphans":     res.Orphans,
	})
}

// Score 请求: {hand, tsumo, riichi, dealer, seat_wind, round_wind, dora_indicators}
func (a *Analyzer) Score(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	hand, err := riichi.NewHand(fields["hand"].GetStringValue())
	if err != nil {
		logger.Log.Errorf("parse hand: %v", err)
		return nil, err
	}

	evalCtx, err := contextFromFields(fields)
	if err != nil {
		return nil, err
	}

	res, err := riichi.Evaluate(hand, evalCtx, a.rules)
	if err != nil {
		if errors.Is(err, riichi.ErrNoYaku) || errors.Is(err, riichi.ErrIncompleteHand) {
			return structpb.NewStruct(map[string]any{"error": err.Error()})
		}
		return nil, err
	}

	yaku := make([]any, 0, len(res.Yaku))
	for _, y := range res.Yaku {
		yaku = append(yaku, map[string]any{
			"name": y.Name(a.rules.Lang),
			"han":  y.Han,
		})
	}
	return structpb.NewStruct(map[string]any{
		"han":   res.Han,
		"fu":    res.Fu,
		"rank":  res.Rank.Name(a.rules.Lang),
		"total": res.Total(),
		"yaku":  yaku,
	})
}

func contextFromFields(fields map[string]*structpb.Value) (*riichi.Context, error) {
	indicators, err := riichi.ParseTiles(fields["dora_indicators"].GetStringValue())
	if err != nil && fields["dora_indicators"].GetStringValue() != "" {
		return nil, err
	}
	seat := riichi.Wind(fields["seat_wind"].GetNumberValue())
	round := riichi.Wind(fields["round_wind"].GetNumberValue())
	if seat < riichi.WindEast || seat > riichi.WindNorth || round < riichi.WindEast || round > riichi.WindNorth {
		return nil, riichi.ErrInvalidHand
	}
	return &riichi.Context{
		Tsumo:          fields["tsumo"].GetBoolValue(),
		Riichi:         fields["riichi"].GetBoolValue(),
		Ippatsu:        fields["ippatsu"].GetBoolValue(),
		Dealer:         fields["dealer"].GetBoolValue(),
		SeatWind:       seat,
		RoundWind:      round,
		DoraIndicators: indicators,
	}, nil
}
