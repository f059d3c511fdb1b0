package utils

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

// ToAny 事件负载打包
func ToAny(msg proto.Message) (*anypb.Any, error) {
	data, err := anypb.New(msg)
	if err != nil {
		return nil, fmt.Errorf("pack message: %w", err)
	}
	return data, nil
}

func TypeUrl(msg proto.Message) (string, error) {
	data, err := ToAny(msg)
	if err != nil {
		return "", err
	}
	return data.GetTypeUrl(), nil
}

// FromAny 解出指定类型, 类型不符报错
func FromAny[T proto.Message](data *anypb.Any, dst T) error {
	if err := data.UnmarshalTo(dst); err != nil {
		return fmt.Errorf("unpack message: %w", err)
	}
	return nil
}
