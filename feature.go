package jsontime

import (
	"fmt"
	"math/bits"
	"strings"
)

// Feature is a single serialization toggle. Key-suffixed features apply to
// map keys only; the others apply to values.
type Feature uint32

const (
	WriteDatesAsTimestamps Feature = 1 << iota
	WriteDateTimestampsAsNanoseconds
	WriteDatesWithZoneID
	WriteDatesWithContextTimeZone
	WriteDateKeysAsTimestamps
	WriteDateKeyTimestampsAsNanoseconds
	WriteDateKeysWithZoneID
	WriteDateKeysWithContextTimeZone

	featureEnd
)

var featureNames = map[Feature]string{
	WriteDatesAsTimestamps:              "WRITE_DATES_AS_TIMESTAMPS",
	WriteDateTimestampsAsNanoseconds:    "WRITE_DATE_TIMESTAMPS_AS_NANOSECONDS",
	WriteDatesWithZoneID:                "WRITE_DATES_WITH_ZONE_ID",
	WriteDatesWithContextTimeZone:       "WRITE_DATES_WITH_CONTEXT_TIME_ZONE",
	WriteDateKeysAsTimestamps:           "WRITE_DATE_KEYS_AS_TIMESTAMPS",
	WriteDateKeyTimestampsAsNanoseconds: "WRITE_DATE_KEY_TIMESTAMPS_AS_NANOSECONDS",
	WriteDateKeysWithZoneID:             "WRITE_DATE_KEYS_WITH_ZONE_ID",
	WriteDateKeysWithContextTimeZone:    "WRITE_DATE_KEYS_WITH_CONTEXT_TIME_ZONE",
}

func (f Feature) String() string {
	if n, ok := featureNames[f]; ok {
		return n
	}
	return fmt.Sprintf("feature(%#x)", uint32(f))
}

// ParseFeature accepts the upper snake case names ("WRITE_DATES_AS_TIMESTAMPS"),
// case-insensitively.
func ParseFeature(s string) (Feature, error) {
	up := strings.ToUpper(strings.TrimSpace(s))
	for f, n := range featureNames {
		if n == up {
			return f, nil
		}
	}
	return 0, fmt.Errorf("jsontime: unknown feature %q", s)
}

// Features is a set of toggles.
type Features uint32

// DefaultFeatures renders region ids for zoned values and honors a context
// zone when one is configured. Timestamps are off.
const DefaultFeatures = Features(WriteDatesWithZoneID | WriteDateKeysWithZoneID |
	WriteDatesWithContextTimeZone | WriteDateKeysWithContextTimeZone)

func (s Features) Enabled(f Feature) bool { return s&Features(f) != 0 }

func (s Features) With(fs ...Feature) Features {
	for _, f := range fs {
		s |= Features(f)
	}
	return s
}

func (s Features) Without(fs ...Feature) Features {
	for _, f := range fs {
		s &^= Features(f)
	}
	return s
}

// List returns the enabled features in declaration order.
func (s Features) List() []Feature {
	out := make([]Feature, 0, bits.OnesCount32(uint32(s)))
	for f := Feature(1); f < featureEnd; f <<= 1 {
		if s.Enabled(f) {
			out = append(out, f)
		}
	}
	return out
}

func (s Features) String() string {
	names := make([]string, 0, 8)
	for _, f := range s.List() {
		names = append(names, f.String())
	}
	return strings.Join(names, "|")
}

// featureSet selects the value or key variant of each toggle.
type featureSet struct {
	timestamps, nanos, zoneID, contextZone Feature
}

var (
	valueFeatures = featureSet{WriteDatesAsTimestamps, WriteDateTimestampsAsNanoseconds, WriteDatesWithZoneID, WriteDatesWithContextTimeZone}
	keyFeatures   = featureSet{WriteDateKeysAsTimestamps, WriteDateKeyTimestampsAsNanoseconds, WriteDateKeysWithZoneID, WriteDateKeysWithContextTimeZone}
)
