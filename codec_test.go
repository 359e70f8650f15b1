package jsontime

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/jsontime/wire"
)

func mustStr(t *testing.T, w wire.Value) string {
	t.Helper()
	s, ok := w.Str()
	require.True(t, ok, "want string, got %s", w.Kind())
	return s
}

func mustDecimal(t *testing.T, text string) wire.Value {
	t.Helper()
	w, err := wire.Decimal(text)
	require.NoError(t, err)
	return w
}

func ints(ns ...int64) []wire.Value {
	out := make([]wire.Value, len(ns))
	for i, n := range ns {
		out[i] = wire.Int(n)
	}
	return out
}

// recordingHooks captures every hook call.
type recordingHooks struct {
	mu        sync.Mutex
	rejected  []string
	failed    []string
	fallbacks []string
	ignored   []Kind
}

func (h *recordingHooks) BindRejected(_ Kind, field string, _ error) {
	h.mu.Lock()
	h.rejected = append(h.rejected, field)
	h.mu.Unlock()
}

func (h *recordingHooks) ParseFailed(_ Kind, _ string, raw string, _ error) {
	h.mu.Lock()
	h.failed = append(h.failed, raw)
	h.mu.Unlock()
}

func (h *recordingHooks) PatternFallback(_ Kind, _ string, raw string) {
	h.mu.Lock()
	h.fallbacks = append(h.fallbacks, raw)
	h.mu.Unlock()
}

func (h *recordingHooks) ZoneModifierIgnored(k Kind) {
	h.mu.Lock()
	h.ignored = append(h.ignored, k)
	h.mu.Unlock()
}

// ==============================
// Scenarios
// ==============================

func TestInstantAsDecimalSeconds(t *testing.T) {
	s := DefaultSettings().WithFeatures(DefaultFeatures.With(WriteDatesAsTimestamps, WriteDateTimestampsAsNanoseconds))
	c, err := NewCodec(s, Instants, FieldFormat{})
	require.NoError(t, err)

	v := InstantOf(time.Date(2023, 12, 10, 19, 22, 40, 758927000, time.UTC))
	w := c.Encode(v)
	assert.Equal(t, wire.KindDecimal, w.Kind())
	text, _ := w.DecimalText()
	assert.Equal(t, "1702236160.758927000", text)

	back, err := c.Decode(w)
	require.NoError(t, err)
	assert.True(t, back.Equal(v.Time))
}

func TestInstantPatternInSingapore(t *testing.T) {
	sg := mustZone(t, "Asia/Singapore")
	s, err := NewSettings(SettingsOptions{
		Patterns: map[Kind]*Pattern{KindInstant: MustPattern("yyyy-MM-dd'T'HH:mm:ss.SSSXXX", sg)},
	})
	require.NoError(t, err)
	c, err := NewCodec(s, Instants, FieldFormat{})
	require.NoError(t, err)

	v := InstantOf(time.Date(2023, 12, 23, 19, 22, 40, 758927000, time.UTC))
	assert.Equal(t, "2023-12-24T03:22:40.758+08:00", mustStr(t, c.Encode(v)))

	back, err := c.Decode(wire.String("2023-12-24T03:22:40.758+08:00"))
	require.NoError(t, err)
	assert.True(t, back.Equal(v.Time.Truncate(time.Millisecond)))
	assert.Equal(t, time.UTC, back.Location())
}

func TestZonedCanonicalKeepsRegion(t *testing.T) {
	moscow := mustZone(t, "Europe/Moscow")
	c, err := NewCodec(nil, ZonedDateTimes, FieldFormat{})
	require.NoError(t, err)

	v := ZonedDateTimeOf(time.Date(2023, 12, 23, 22, 22, 40, 758927000, moscow))
	w := c.Encode(v)
	assert.Equal(t, "2023-12-23T22:22:40.758927+03:00[Europe/Moscow]", mustStr(t, w))

	back, err := c.Decode(w)
	require.NoError(t, err)
	assert.True(t, back.Same(v), "got %s", back)
}

func TestZonedWithoutZoneID(t *testing.T) {
	moscow := mustZone(t, "Europe/Moscow")
	s := DefaultSettings().WithFeatures(DefaultFeatures.Without(WriteDatesWithZoneID))
	c, err := NewCodec(s, ZonedDateTimes, FieldFormat{})
	require.NoError(t, err)

	v := ZonedDateTimeOf(time.Date(2023, 12, 23, 22, 22, 40, 0, moscow))
	assert.Equal(t, "2023-12-23T22:22:40+03:00", mustStr(t, c.Encode(v)))

	back, err := c.Decode(c.Encode(v))
	require.NoError(t, err)
	assert.True(t, back.Equal(v.Time))
	assert.False(t, back.Same(v), "region is lost without the zone id")
}

// ==============================
// Every kind in every shape
// ==============================

func TestShapesEveryKind(t *testing.T) {
	moscow := mustZone(t, "Europe/Moscow")
	plus3 := OffsetZone(3 * 3600)

	t.Run("instant", func(t *testing.T) {
		v := InstantOf(time.Date(2023, 12, 23, 19, 22, 40, 758927000, time.UTC))
		checkShapes(t, Instants, v, shapeWants{
			str:   "2023-12-23T19:22:40.758927Z",
			num:   1703359360758,
			dec:   "1703359360.758927000",
			array: wire.Array(ints(2023, 12, 23, 19, 22, 40, 758927000)...),
		}, func(a, b Instant) bool { return a.Equal(b.Time) })
	})

	t.Run("local date", func(t *testing.T) {
		v := LocalDate{Year: 2023, Month: 12, Day: 23}
		checkShapes(t, LocalDates, v, shapeWants{
			str:   "2023-12-23",
			num:   19714,
			array: wire.Array(ints(2023, 12, 23)...),
		}, func(a, b LocalDate) bool { return a == b })
	})

	t.Run("local time", func(t *testing.T) {
		v := LocalTime{Hour: 19, Minute: 22, Second: 40, Nanosecond: 758000000}
		checkShapes(t, LocalTimes, v, shapeWants{
			str:   "19:22:40.758",
			num:   69760,
			dec:   "69760.758000000",
			array: wire.Array(ints(19, 22, 40, 758000000)...),
		}, func(a, b LocalTime) bool { return a == b })
	})

	t.Run("local date time", func(t *testing.T) {
		v := LocalDateTime{
			Date: LocalDate{Year: 2023, Month: 12, Day: 23},
			Time: LocalTime{Hour: 19, Minute: 22, Second: 40, Nanosecond: 758000000},
		}
		checkShapes(t, LocalDateTimes, v, shapeWants{
			str:   "2023-12-23T19:22:40.758",
			num:   1703359360,
			dec:   "1703359360.758000000",
			array: wire.Array(ints(2023, 12, 23, 19, 22, 40, 758000000)...),
		}, func(a, b LocalDateTime) bool { return a == b })
	})

	t.Run("offset time", func(t *testing.T) {
		v := OffsetTime{Time: LocalTime{Hour: 19, Minute: 22, Second: 40, Nanosecond: 758000000}, Offset: 3 * 3600}
		checkShapes(t, OffsetTimes, v, shapeWants{
			str:   "19:22:40.758+03:00",
			num:   58960758,
			dec:   "58960.758000000",
			array: wire.Array(append(ints(19, 22, 40, 758000000), wire.String("+03:00"))...),
		}, func(a, b OffsetTime) bool { return a.WithOffset(0) == b.WithOffset(0) })
	})

	t.Run("offset date time", func(t *testing.T) {
		v := OffsetDateTimeOf(time.Date(2023, 12, 23, 22, 22, 40, 758000000, plus3))
		checkShapes(t, OffsetDateTimes, v, shapeWants{
			str:   "2023-12-23T22:22:40.758+03:00",
			num:   1703359360758,
			dec:   "1703359360.758000000",
			array: wire.Array(append(ints(2023, 12, 23, 22, 22, 40, 758000000), wire.String("+03:00"))...),
		}, func(a, b OffsetDateTime) bool { return a.Equal(b.Time) })
	})

	t.Run("zoned date time", func(t *testing.T) {
		v := ZonedDateTimeOf(time.Date(2023, 12, 23, 22, 22, 40, 758000000, moscow))
		checkShapes(t, ZonedDateTimes, v, shapeWants{
			str:   "2023-12-23T22:22:40.758+03:00[Europe/Moscow]",
			num:   1703359360758,
			dec:   "1703359360.758000000",
			array: wire.Array(append(ints(2023, 12, 23, 22, 22, 40, 758000000), wire.String("+03:00"), wire.String("Europe/Moscow"))...),
		}, func(a, b ZonedDateTime) bool { return a.Equal(b.Time) })
	})

	t.Run("date", func(t *testing.T) {
		v := DateOf(time.Date(2023, 12, 23, 19, 22, 40, 758000000, time.UTC))
		checkShapes(t, Dates, v, shapeWants{
			str:   "2023-12-23T19:22:40.758Z",
			num:   1703359360758,
			array: wire.Array(ints(2023, 12, 23, 19, 22, 40, 758000000)...),
		}, func(a, b Date) bool { return a.Equal(b.Time) })
	})
}

type shapeWants struct {
	str   string
	num   int64
	dec   string // empty: decimal not exercised
	array wire.Value
}

func checkShapes[T any](t *testing.T, a Adapter[T], v T, want shapeWants, same func(a, b T) bool) {
	t.Helper()

	roundTrip := func(shape Shape, check func(w wire.Value)) {
		c, err := NewCodec(nil, a, FieldFormat{Name: "f", Shape: shape})
		require.NoError(t, err, shape.String())
		w := c.Encode(v)
		check(w)
		back, err := c.Decode(w)
		require.NoError(t, err, shape.String())
		assert.True(t, same(v, back), "%s: %v != %v", shape, v, back)
	}

	roundTrip(ShapeString, func(w wire.Value) {
		assert.Equal(t, want.str, mustStr(t, w))
	})
	// integer timestamps truncate, so only re-encoding is stable
	ic, err := NewCodec(nil, a, FieldFormat{Name: "f", Shape: ShapeNumberInt})
	require.NoError(t, err)
	w := ic.Encode(v)
	n, ok := w.Int64()
	require.True(t, ok)
	assert.Equal(t, want.num, n)
	back, err := ic.Decode(w)
	require.NoError(t, err)
	assert.True(t, w.Equal(ic.Encode(back)), "re-encoded %s", ic.Encode(back))

	if want.dec != "" {
		roundTrip(ShapeNumberFloat, func(w wire.Value) {
			text, ok := w.DecimalText()
			require.True(t, ok)
			assert.Equal(t, want.dec, text)
		})
	}
	roundTrip(ShapeArray, func(w wire.Value) {
		assert.True(t, want.array.Equal(w), "got %s", w)
	})
}

func TestZonedArrayKeepsRegion(t *testing.T) {
	moscow := mustZone(t, "Europe/Moscow")
	c, err := NewCodec(nil, ZonedDateTimes, FieldFormat{Shape: ShapeArray})
	require.NoError(t, err)

	v := ZonedDateTimeOf(time.Date(2024, 7, 1, 9, 0, 0, 5, moscow))
	back, err := c.Decode(c.Encode(v))
	require.NoError(t, err)
	assert.True(t, back.Same(v))
}

func TestIntTimestampsFloor(t *testing.T) {
	c, err := NewCodec(nil, Instants, FieldFormat{Shape: ShapeNumberInt})
	require.NoError(t, err)

	v := InstantOf(time.Date(1969, 12, 31, 23, 59, 59, 999_900_000, time.UTC))
	n, _ := c.Encode(v).Int64()
	assert.Equal(t, int64(-1), n)

	back, err := c.Decode(wire.Int(-1))
	require.NoError(t, err)
	assert.True(t, back.Equal(time.Date(1969, 12, 31, 23, 59, 59, 999_000_000, time.UTC)))
}

func TestEpochOutOfRange(t *testing.T) {
	c, err := NewCodec(nil, LocalDates, FieldFormat{Shape: ShapeNumberInt})
	require.NoError(t, err)

	_, err = c.Decode(wire.Int(1 << 62))
	assert.ErrorIs(t, err, ErrParse)

	// epoch days beyond the supported years would wrap into a wrong date
	_, err = c.Decode(wire.Int(maxEpochDay + 1))
	assert.ErrorIs(t, err, ErrParse)
	_, err = c.Decode(wire.Int(-maxEpochDay - 1))
	assert.ErrorIs(t, err, ErrParse)

	got, err := c.Decode(wire.Int(19714))
	require.NoError(t, err)
	assert.Equal(t, LocalDate{Year: 2023, Month: 12, Day: 23}, got)

	kc, err := NewKeyCodec(nil, LocalDates, FieldFormat{Shape: ShapeNumberInt})
	require.NoError(t, err)
	_, err = kc.Decode("4611686018427387904")
	assert.ErrorIs(t, err, ErrParse)

	ic, err := NewCodec(nil, Instants, FieldFormat{})
	require.NoError(t, err)
	_, err = ic.Decode(mustDecimal(t, "900000000000000000.5"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestDecodeAcceptsEveryWireKind(t *testing.T) {
	c, err := NewCodec(nil, Instants, FieldFormat{})
	require.NoError(t, err)
	want := time.Date(2023, 12, 23, 19, 22, 40, 758000000, time.UTC)

	for _, w := range []wire.Value{
		wire.String("2023-12-23T19:22:40.758Z"),
		wire.String("2023-12-23T22:22:40.758+03:00"),
		wire.Int(1703359360758),
		mustDecimal(t, "1703359360.758"),
		wire.Array(ints(2023, 12, 23, 19, 22, 40, 758000000)...),
	} {
		got, err := c.Decode(w)
		require.NoError(t, err, w.String())
		assert.True(t, got.Equal(want), "%s decoded to %s", w, got)
	}

	got, err := c.Decode(wire.Null())
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestDecodeNumericText(t *testing.T) {
	c, err := NewCodec(nil, Instants, FieldFormat{Shape: ShapeNumberInt})
	require.NoError(t, err)
	got, err := c.Decode(wire.String("1703359360758"))
	require.NoError(t, err)
	assert.Equal(t, int64(1703359360758), got.UnixMilli())

	// string shapes do not read numeric text
	sc, err := NewCodec(nil, Instants, FieldFormat{})
	require.NoError(t, err)
	_, err = sc.Decode(wire.String("1703359360758"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestOffsetDateTimeUsesModifier(t *testing.T) {
	s, err := NewSettings(SettingsOptions{
		ZoneModifiers: map[Kind]ZoneModifier{KindOffsetDateTime: FixedZoneModifier(time.UTC)},
	})
	require.NoError(t, err)
	c, err := NewCodec(s, OffsetDateTimes, FieldFormat{})
	require.NoError(t, err)

	v := OffsetDateTimeOf(time.Date(2023, 12, 23, 22, 22, 40, 0, OffsetZone(3*3600)))
	assert.Equal(t, "2023-12-23T19:22:40Z", mustStr(t, c.Encode(v)))
}

// ==============================
// Errors and hooks
// ==============================

func TestParseErrorContents(t *testing.T) {
	h := &recordingHooks{}
	s, err := NewSettings(SettingsOptions{
		Patterns: map[Kind]*Pattern{KindInstant: MustPattern("yyyy-MM-dd HH:mm XXX", nil)},
	})
	require.NoError(t, err)
	c, err := NewCodec(s, Instants, FieldFormat{Name: "createdAt"}, WithHooks(h))
	require.NoError(t, err)

	got, err := c.Decode(wire.String("yesterday"))
	require.Error(t, err)
	assert.True(t, got.IsZero())

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "createdAt", pe.Field)
	assert.Equal(t, KindInstant, pe.Kind)
	assert.Equal(t, `"yesterday"`, pe.Raw)
	assert.Equal(t, []string{"yyyy-MM-dd HH:mm XXX", "<canonical>"}, pe.Patterns)
	assert.True(t, errors.Is(err, ErrParse))
	assert.Contains(t, err.Error(), "createdAt")
	assert.Equal(t, []string{`"yesterday"`}, h.failed)
}

func TestMalformedArrays(t *testing.T) {
	c, err := NewCodec(nil, LocalDates, FieldFormat{})
	require.NoError(t, err)

	for _, w := range []wire.Value{
		wire.Array(ints(2023, 12)...),
		wire.Array(ints(2023, 13, 1)...),
		wire.Array(ints(2023, 2, 30)...),
		wire.Array(wire.Int(2023), wire.String("12"), wire.Int(1)),
	} {
		_, err := c.Decode(w)
		assert.ErrorIs(t, err, ErrParse, w.String())
	}
}

func TestPatternFallbackHook(t *testing.T) {
	h := &recordingHooks{}
	s, err := NewSettings(SettingsOptions{
		Patterns: map[Kind]*Pattern{KindLocalDate: MustPattern("dd.MM.yyyy", nil)},
	})
	require.NoError(t, err)
	c, err := NewCodec(s, LocalDates, FieldFormat{Name: "d"}, WithHooks(h))
	require.NoError(t, err)

	got, err := c.Decode(wire.String("23.12.2023"))
	require.NoError(t, err)
	assert.Equal(t, LocalDate{Year: 2023, Month: 12, Day: 23}, got)
	assert.Empty(t, h.fallbacks)

	got, err = c.Decode(wire.String("2023-12-23"))
	require.NoError(t, err)
	assert.Equal(t, LocalDate{Year: 2023, Month: 12, Day: 23}, got)
	assert.Equal(t, []string{`"2023-12-23"`}, h.fallbacks)
}

func TestZoneModifierIgnoredHook(t *testing.T) {
	h := &recordingHooks{}
	moscow := mustZone(t, "Europe/Moscow")
	s, err := NewSettings(SettingsOptions{
		ZoneModifiers: map[Kind]ZoneModifier{
			KindZonedDateTime: func(*time.Location) *time.Location { return nil },
		},
	})
	require.NoError(t, err)
	c, err := NewCodec(s, ZonedDateTimes, FieldFormat{}, WithHooks(h))
	require.NoError(t, err)

	v := ZonedDateTimeOf(time.Date(2023, 12, 23, 22, 22, 40, 0, moscow))
	assert.Equal(t, "2023-12-23T22:22:40+03:00[Europe/Moscow]", mustStr(t, c.Encode(v)))
	assert.Equal(t, []Kind{KindZonedDateTime}, h.ignored)
}

func TestBindRejections(t *testing.T) {
	h := &recordingHooks{}

	_, err := NewCodec(nil, LocalDates, FieldFormat{Name: "day", Shape: ShapeNumberFloat}, WithHooks(h))
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, KindLocalDate, ce.Kind)
	assert.Equal(t, ShapeNumberFloat, ce.Shape)

	_, err = NewCodec(nil, LocalDates, FieldFormat{Name: "day", Pattern: "yyyy-MM-dd HH:mm"}, WithHooks(h))
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewCodec(nil, LocalTimes, FieldFormat{Name: "at", Pattern: "HH:mm XXX"}, WithHooks(h))
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewCodec(nil, Instants, FieldFormat{Name: "at", Pattern: "HH:mm"}, WithHooks(h))
	assert.ErrorIs(t, err, ErrConfiguration, "instant pattern without date cannot parse")

	assert.Equal(t, []string{"day", "day", "at", "at"}, h.rejected)
}

func TestZonelessPatternNeedsPinnedZone(t *testing.T) {
	moscow := mustZone(t, "Europe/Moscow")
	ny := mustZone(t, "America/New_York")
	plain := FieldFormat{Name: "at", Pattern: "yyyy-MM-dd HH:mm:ss"}

	h := &recordingHooks{}
	_, err := NewCodec(nil, ZonedDateTimes, plain, WithHooks(h))
	var ce *ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, KindZonedDateTime, ce.Kind)
	assert.Equal(t, []string{"at"}, h.rejected)

	_, err = NewCodec(nil, OffsetDateTimes, plain)
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = NewCodec(nil, Times, plain)
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = NewCodec(nil, OffsetTimes, FieldFormat{Pattern: "HH:mm"})
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = NewCodec(nil, OffsetTimes, FieldFormat{Pattern: "HH:mm", Zone: ny})
	assert.ErrorIs(t, err, ErrConfiguration, "a zone with daylight saving does not fix an offset")

	// instants are always read in UTC
	_, err = NewCodec(nil, Instants, plain)
	assert.NoError(t, err)

	// a field zone reads the text back in the zone it was written in
	pinned := plain
	pinned.Zone = moscow
	zc, err := NewCodec(nil, ZonedDateTimes, pinned)
	require.NoError(t, err)
	zdt := ZonedDateTimeOf(time.Date(2023, 12, 23, 22, 20, 36, 0, moscow))
	w := zc.Encode(zdt)
	assert.Equal(t, "2023-12-23 22:20:36", mustStr(t, w))
	back, err := zc.Decode(w)
	require.NoError(t, err)
	assert.True(t, back.Equal(zdt.Time), "%s != %s", back, zdt)

	oc, err := NewCodec(nil, OffsetTimes, FieldFormat{Pattern: "HH:mm", Zone: OffsetZone(3 * 3600)})
	require.NoError(t, err)
	ot := OffsetTime{Time: LocalTime{Hour: 10}, Offset: 3 * 3600}
	w = oc.Encode(ot)
	assert.Equal(t, "10:00", mustStr(t, w))
	otBack, err := oc.Decode(w)
	require.NoError(t, err)
	assert.Equal(t, ot, otBack)

	// so does a context zone
	_, err = NewCodec(DefaultSettings().WithContextZone(moscow), OffsetDateTimes, plain)
	assert.NoError(t, err)
	_, err = NewCodec(DefaultSettings().WithContextZone(moscow), OffsetDateTimes,
		FieldFormat{Pattern: plain.Pattern, Without: Features(WriteDatesWithContextTimeZone)})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNewSettingsValidation(t *testing.T) {
	_, err := NewSettings(SettingsOptions{
		Patterns: map[Kind]*Pattern{KindLocalTime: MustPattern("yyyy", nil)},
	})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewSettings(SettingsOptions{
		ZoneModifiers: map[Kind]ZoneModifier{KindLocalDate: IdentityZone},
	})
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewSettings(SettingsOptions{Patterns: map[Kind]*Pattern{Kind(42): MustPattern("HH", nil)}})
	assert.ErrorIs(t, err, ErrConfiguration)

	s, err := NewSettings(SettingsOptions{})
	require.NoError(t, err)
	assert.Equal(t, DefaultFeatures, s.Features())

	s, err = NewSettings(SettingsOptions{Features: NoFeatures})
	require.NoError(t, err)
	assert.Equal(t, Features(0), s.Features())
}

func TestTimeAdapterIsZoned(t *testing.T) {
	moscow := mustZone(t, "Europe/Moscow")
	c, err := NewCodec(nil, Times, FieldFormat{})
	require.NoError(t, err)
	assert.Equal(t, KindZonedDateTime, c.Kind())

	v := time.Date(2023, 12, 23, 22, 22, 40, 0, moscow)
	assert.Equal(t, "2023-12-23T22:22:40+03:00[Europe/Moscow]", mustStr(t, c.Encode(v)))

	back, err := c.Decode(c.Encode(v))
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", back.Location().String())
	assert.True(t, back.Equal(v))
}

func TestLegacyDateForms(t *testing.T) {
	c, err := NewCodec(nil, Dates, FieldFormat{})
	require.NoError(t, err)
	want := time.Date(2023, 12, 23, 19, 22, 40, 0, time.UTC)

	for _, s := range []string{
		"2023-12-23T19:22:40.000Z",
		"2023-12-23T22:22:40+03:00",
		"2023-12-23T19:22:40",
		"Sat, 23 Dec 2023 19:22:40 GMT",
		"Sat, 23 Dec 2023 22:22:40 +0300",
	} {
		got, err := c.Decode(wire.String(s))
		require.NoError(t, err, s)
		assert.True(t, got.Equal(want), "%s decoded to %s", s, got)
	}

	got, err := c.Decode(wire.String("2023-12-23"))
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2023, 12, 23, 0, 0, 0, 0, time.UTC)))
}
