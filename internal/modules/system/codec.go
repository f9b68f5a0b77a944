package system

import (
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Format selects the status encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// EncodeStatus serializes st for the presentation layer.
func EncodeStatus(st Status, format Format) ([]byte, error) {
	switch format {
	case FormatJSON, "":
		return json.MarshalIndent(st, "", "  ")
	case FormatMsgpack:
		return msgpack.Marshal(st)
	}
	return nil, fmt.Errorf("unsupported status format %q", format)
}

// DecodeStatus is the inverse of EncodeStatus.
func DecodeStatus(data []byte, format Format) (Status, error) {
	var st Status
	var err error
	switch format {
	case FormatJSON, "":
		err = json.Unmarshal(data, &st)
	case FormatMsgpack:
		err = msgpack.Unmarshal(data, &st)
	default:
		return Status{}, fmt.Errorf("unsupported status format %q", format)
	}
	if err != nil {
		return Status{}, fmt.Errorf("failed to decode status: %w", err)
	}
	return st, nil
}
