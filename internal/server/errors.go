package server

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// giftParseError reports an unparseable gift in an enrich request.
type giftParseError struct {
	index  int
	giftID string
	cause  error
}

func (e *giftParseError) Error() string {
	return fmt.Sprintf("gifts[%d] (gift %s): %v", e.index, e.giftID, e.cause)
}

func (e *giftParseError) Unwrap() error {
	return e.cause
}

// unmarshalStrict decodes JSON rejecting unknown fields.
func unmarshalStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
