package codec

import (
	"fmt"

	"github.com/unkn0wn-root/jsontime/wire"
)

// Limit wraps another document model to enforce a maximum allowed payload
// size at Unmarshal time. Marshal is forwarded to Inner unchanged.
// If MaxDecode <= 0, size limiting is disabled.
//
// Typical use: protect against oversized/malicious inputs coming from an
// untrusted source.
type Limit struct {
	// Inner is the underlying model being wrapped. It must be set.
	Inner Document
	// MaxDecode is the maximum permitted length (in bytes) of the incoming
	// payload for Unmarshal. If payload length exceeds MaxDecode, Unmarshal
	// returns an error without invoking Inner.
	MaxDecode int
}

var _ Document = Limit{}

func (c Limit) Name() string                         { return c.Inner.Name() }
func (c Limit) Supports(k wire.Kind) bool            { return c.Inner.Supports(k) }
func (c Limit) Marshal(v wire.Value) ([]byte, error) { return c.Inner.Marshal(v) }
func (c Limit) Unmarshal(b []byte) (wire.Value, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		return wire.Value{}, fmt.Errorf("payload too large: %d > %d", len(b), c.MaxDecode)
	}
	return c.Inner.Unmarshal(b)
}
