package riichi_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kevin-chtw/tw_riichi/riichi"
)

func TestLoadRules(t *testing.T) {
	file := filepath.Join(t.TempDir(), "rules.yaml")
	data := []byte("open_tanyao: false\nlang: ja\nfu_policy: min\n")
	if err := os.WriteFile(file, data, 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := riichi.LoadRules(file)
	if err != nil {
		t.Fatal(err)
	}
	if r.OpenTanyao {
		t.Error("OpenTanyao = true, want false")
	}
	if r.Lang != riichi.LangJa {
		t.Errorf("Lang = %v, want ja", r.Lang)
	}
	if r.FuPolicy != riichi.FuPolicyMin {
		t.Errorf("FuPolicy = %v, want min", r.FuPolicy)
	}
}

func TestLoadRulesMissing(t *testing.T) {
	if _, err := riichi.LoadRules(filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestOpenTanyaoOff(t *testing.T) {
	// 鸣牌断幺九被规则关闭
	h, err := riichi.NewHand("23457m678p22s 345s 6m")
	if err != nil {
		t.Fatal(err)
	}
	rules := riichi.DefaultRules()
	rules.OpenTanyao = false
	if _, err := riichi.Evaluate(h, &riichi.Context{}, rules); err == nil {
		t.Error("expected no yaku with open tanyao disabled")
	}

	res, err := riichi.Evaluate(h, &riichi.Context{}, riichi.DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	if !hasYaku(res, riichi.YakuTanyao) {
		t.Errorf("Yaku = %v, want tanyao", res.Yaku)
	}
}
