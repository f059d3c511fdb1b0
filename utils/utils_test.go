package utils_test

import (
	"strings"
	"testing"

	"github.com/kevin-chtw/tw_riichi/utils"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestToAnyRoundtrip(t *testing.T) {
	msg := wrapperspb.String("tenpai")
	data, err := utils.ToAny(msg)
	if err != nil {
		t.Fatal(err)
	}

	dst := &wrapperspb.StringValue{}
	if err := utils.FromAny(data, dst); err != nil {
		t.Fatal(err)
	}
	if dst.GetValue() != "tenpai" {
		t.Errorf("value = %q, want %q", dst.GetValue(), "tenpai")
	}

	// 类型不符
	if err := utils.FromAny(data, &structpb.Struct{}); err == nil {
		t.Error("expected error for mismatched type")
	}
}

func TestTypeUrl(t *testing.T) {
	url, err := utils.TypeUrl(wrapperspb.Int64(1))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(url, "google.protobuf.Int64Value") {
		t.Errorf("url = %q", url)
	}
}
