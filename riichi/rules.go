package riichi

import (
	"fmt"

	"github.com/spf13/viper"
)

type Lang int32

const (
	LangEn Lang = iota
	LangJa
)

// FuPolicy 同番多拆解时的取符策略
type FuPolicy int32

const (
	// FuPolicyMax 番优先, 同番取高符
	FuPolicyMax FuPolicy = iota
	// FuPolicyMin 同番取低符(部分竞技规则)
	FuPolicyMin
)

// Rules 番种开关与显示设置
type Rules struct {
	Lang       Lang
	OpenTanyao bool // 食断
	FuPolicy   FuPolicy
}

func DefaultRules() *Rules {
	return &Rules{
		Lang:       LangEn,
		OpenTanyao: true,
		FuPolicy:   FuPolicyMax,
	}
}

// LoadRules 从yaml读取规则
func LoadRules(file string) (*Rules, error) {
	vp := viper.New()
	vp.SetConfigType("yaml")
	vp.SetConfigFile(file)
	vp.SetDefault("open_tanyao", true)
	vp.SetDefault("lang", "en")
	vp.SetDefault("fu_policy", "max")
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	r := DefaultRules()
	r.OpenTanyao = vp.GetBool("open_tanyao")
	if vp.GetString("lang") == "ja" {
		r.Lang = LangJa
	}
	if vp.GetString("fu_policy") == "min" {
		r.FuPolicy = FuPolicyMin
	}
	return r, nil
}
