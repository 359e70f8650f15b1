package jsontime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpochDays(t *testing.T) {
	d := LocalDate{Year: 2023, Month: 12, Day: 23}
	assert.Equal(t, int64(19714), d.EpochDay())
	assert.Equal(t, d, LocalDateOfEpochDay(19714))

	before := LocalDate{Year: 1969, Month: 12, Day: 31}
	assert.Equal(t, int64(-1), before.EpochDay())
	assert.Equal(t, before, LocalDateOfEpochDay(-1))

	assert.False(t, LocalDate{Year: 2023, Month: 2, Day: 29}.Valid())
	assert.True(t, LocalDate{Year: 2024, Month: 2, Day: 29}.Valid())
}

func TestOffsetTimeWithOffset(t *testing.T) {
	v := OffsetTime{Time: LocalTime{Hour: 1, Minute: 30}, Offset: 3 * 3600}
	utc := v.WithOffset(0)
	assert.Equal(t, LocalTime{Hour: 22, Minute: 30}, utc.Time, "wraps to the previous day")
	assert.Equal(t, "22:30:00Z", utc.String())
	assert.Equal(t, "01:30:00+03:00", v.String())
}

func TestCanonicalFractions(t *testing.T) {
	cases := map[int]string{
		0:         "",
		758000000: ".758",
		758927000: ".758927",
		758927001: ".758927001",
		1:         ".000000001",
	}
	for nano, want := range cases {
		assert.Equal(t, want, fraction(nano), "nano=%d", nano)
	}
}

func TestCanonicalYears(t *testing.T) {
	assert.Equal(t, "0099-01-02", LocalDate{Year: 99, Month: 1, Day: 2}.String())
	assert.Equal(t, "+10000-01-01", LocalDate{Year: 10000, Month: 1, Day: 1}.String())
	assert.Equal(t, "-0001-01-01", LocalDate{Year: -1, Month: 1, Day: 1}.String())
}

func TestISOScannerRejects(t *testing.T) {
	for _, s := range []string{
		"",
		"2023-12-23T",
		"2023-12-23 19:22:40Z",
		"2023-13-01T00:00Z",
		"2023-12-23T24:00Z",
		"2023-12-23T19:22:40.1234567890Z",
		"2023-12-23T19:22:40Zjunk",
		"2023-12-23T19:22:40",
	} {
		_, err := Instants.parseCanonical(s, nil)
		assert.ErrorIs(t, err, errISO, s)
	}
}

func TestZonedCanonicalForms(t *testing.T) {
	z, err := ZonedDateTimes.parseCanonical("2023-12-23T22:22:40+03:00[Europe/Moscow]", nil)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", z.Location().String())

	z, err = ZonedDateTimes.parseCanonical("2023-12-23T19:22:40Z", nil)
	require.NoError(t, err)
	assert.Equal(t, "2023-12-23T19:22:40Z", z.String())

	// a zone at UTC is still a region
	assert.Equal(t, "2023-12-23T19:22:40Z[UTC]", ZonedDateTimeOf(time.Date(2023, 12, 23, 19, 22, 40, 0, time.UTC)).String())

	_, err = ZonedDateTimes.parseCanonical("2023-12-23T19:22:40Z[Nowhere/Land]", nil)
	assert.Error(t, err)
}

func TestStableOffset(t *testing.T) {
	off, ok := stableOffset(mustZone(t, "Asia/Singapore"))
	assert.True(t, ok)
	assert.Equal(t, 8*3600, off)

	_, ok = stableOffset(mustZone(t, "America/New_York"))
	assert.False(t, ok)

	// a time of day cannot move into a zone with daylight saving
	v := OffsetTime{Time: LocalTime{Hour: 12}, Offset: 0}
	assert.Equal(t, v, inZone(v, mustZone(t, "America/New_York")))
	assert.Equal(t, "20:00:00+08:00", inZone(v, mustZone(t, "Asia/Singapore")).String())
}
