package formatter

import (
	"fmt"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

// BuildProto serializes a GTFS-Realtime message to its binary wire form.
func BuildProto(m proto.Message) ([]byte, error) {
	data, err := proto.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal to protobuf: %w", err)
	}
	return data, nil
}

// BuildProtoText serializes a GTFS-Realtime message to indented text format.
func BuildProtoText(m proto.Message) ([]byte, error) {
	data, err := prototext.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal to protobuf text: %w", err)
	}
	return data, nil
}
