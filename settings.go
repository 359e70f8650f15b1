package jsontime

import (
	"fmt"
	"time"
)

// SettingsOptions configure NewSettings. Every field is optional.
type SettingsOptions struct {
	// Patterns are the global per-kind patterns. A missing kind uses the
	// canonical form.
	Patterns map[Kind]*Pattern
	// ZoneModifiers map a value's own zone to the rendering zone, per kind.
	// A missing kind uses IdentityZone.
	ZoneModifiers map[Kind]ZoneModifier
	// ContextZone is the writer-wide zone. Honored only while the context
	// zone features are enabled.
	ContextZone *time.Location
	// Features; zero means DefaultFeatures. Use NoFeatures for an empty set.
	Features Features
}

// NoFeatures is an explicitly empty feature set for SettingsOptions.
const NoFeatures = Features(1 << 31)

// Settings is the immutable global configuration shared by every codec
// bound from it.
type Settings struct {
	patterns    [len(kindNames)]*Pattern
	modifiers   [len(kindNames)]ZoneModifier
	contextZone *time.Location
	features    Features
}

var defaultSettings = &Settings{features: DefaultFeatures}

// DefaultSettings has no patterns, identity modifiers, no context zone and
// DefaultFeatures.
func DefaultSettings() *Settings { return defaultSettings }

// NewSettings validates opts and builds Settings. A pattern that cannot
// carry its kind is a *ConfigurationError.
func NewSettings(opts SettingsOptions) (*Settings, error) {
	s := &Settings{
		contextZone: opts.ContextZone,
		features:    coalesce[Features](opts.Features, DefaultFeatures) &^ NoFeatures,
	}
	for k, p := range opts.Patterns {
		if !validKind(k) {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown kind %d", k)}
		}
		if p == nil {
			continue
		}
		if reason := checkKindPattern(k, p); reason != "" {
			return nil, &ConfigurationError{Kind: k, Reason: reason + ": " + p.String()}
		}
		s.patterns[k] = p
	}
	for k, m := range opts.ZoneModifiers {
		if !validKind(k) {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown kind %d", k)}
		}
		if m != nil && !k.zoned() {
			return nil, &ConfigurationError{Kind: k, Reason: "zone modifier on a kind without zone"}
		}
		s.modifiers[k] = m
	}
	return s, nil
}

// Pattern returns the global pattern for k, or nil.
func (s *Settings) Pattern(k Kind) *Pattern {
	if !validKind(k) {
		return nil
	}
	return s.patterns[k]
}

// ZoneModifier returns the modifier for k; IdentityZone when unset.
func (s *Settings) ZoneModifier(k Kind) ZoneModifier {
	if validKind(k) && s.modifiers[k] != nil {
		return s.modifiers[k]
	}
	return IdentityZone
}

func (s *Settings) ContextZone() *time.Location { return s.contextZone }

func (s *Settings) Features() Features { return s.features }

// WithFeatures returns a copy of s with a different feature set.
func (s *Settings) WithFeatures(f Features) *Settings {
	c := *s
	c.features = f
	return &c
}

// WithContextZone returns a copy of s with a different context zone.
func (s *Settings) WithContextZone(loc *time.Location) *Settings {
	c := *s
	c.contextZone = loc
	return &c
}

func validKind(k Kind) bool { return k > KindInvalid && int(k) < len(kindNames) }

// checkKindPattern dispatches to the adapter registered for k.
func checkKindPattern(k Kind, p *Pattern) string {
	switch k {
	case KindInstant:
		return Instants.checkPattern(p)
	case KindLocalDate:
		return LocalDates.checkPattern(p)
	case KindLocalTime:
		return LocalTimes.checkPattern(p)
	case KindLocalDateTime:
		return LocalDateTimes.checkPattern(p)
	case KindOffsetTime:
		return OffsetTimes.checkPattern(p)
	case KindOffsetDateTime:
		return OffsetDateTimes.checkPattern(p)
	case KindZonedDateTime:
		return ZonedDateTimes.checkPattern(p)
	case KindDate:
		return Dates.checkPattern(p)
	}
	return "unknown kind"
}
