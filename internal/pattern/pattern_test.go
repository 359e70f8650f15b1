package pattern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLayout(t *testing.T, src string) *Layout {
	t.Helper()
	l, err := Get(src)
	require.NoError(t, err)
	return l
}

// ==============================
// Compile
// ==============================

func TestCompilePresence(t *testing.T) {
	l := mustLayout(t, "yyyy-MM-dd'T'HH:mm:ss.SSSXXX")
	assert.True(t, l.HasDate())
	assert.True(t, l.HasTime())
	assert.True(t, l.HasOffset())
	assert.False(t, l.HasZoneID())
	assert.Equal(t, "yyyy-MM-dd'T'HH:mm:ss.SSSXXX", l.String())

	l = mustLayout(t, "HH:mm")
	assert.False(t, l.HasDate())
	assert.True(t, l.HasTime())

	l = mustLayout(t, "yyyy-MM-dd VV")
	assert.True(t, l.HasZoneID())
}

func TestCompileRejects(t *testing.T) {
	for _, src := range []string{"", "yyyy 'T", "MMMMM", "G", "zzz", "V", "[yyyy]", "SSSSSSSSSS", "hh:mm"} {
		_, err := Compile(src)
		var ce *CompileError
		assert.ErrorAs(t, err, &ce, "pattern %q", src)
	}
}

func TestCompileQuotes(t *testing.T) {
	l := mustLayout(t, "HH 'o''clock' ''")
	f := Fields{Hour: 7}
	assert.Equal(t, "07 o'clock '", l.Format(f))
}

// ==============================
// Format
// ==============================

func TestFormatInstantInZone(t *testing.T) {
	sg, err := LoadZone("Asia/Singapore")
	require.NoError(t, err)
	ts := time.Date(2023, 12, 23, 19, 22, 40, 758927000, time.UTC).In(sg)

	l := mustLayout(t, "yyyy-MM-dd'T'HH:mm:ss.SSSXXX")
	assert.Equal(t, "2023-12-24T03:22:40.758+08:00", l.Format(FieldsOf(ts)))
}

func TestFormatLettersAndOffsets(t *testing.T) {
	loc := OffsetZone(-(4*3600 + 30*60))
	ts := time.Date(2024, 3, 5, 15, 4, 5, 120000000, loc)
	f := FieldsOf(ts)

	cases := map[string]string{
		"yy/M/d":            "24/3/5",
		"EEE, dd MMM yyyy":  "Tue, 05 Mar 2024",
		"EEEE MMMM":         "Tuesday March",
		"h:mm a":            "3:04 PM",
		"HH:mm:ss.SS":       "15:04:05.12",
		"X":                 "-0430",
		"XX":                "-0430",
		"XXX":               "-04:30",
		"xxx":               "-04:30",
		"Z":                 "-0430",
		"ZZZZZ":             "-04:30",
		"VV":                "-04:30",
		"yyyyMMddHHmmssSSS": "20240305150405120",
	}
	for src, want := range cases {
		assert.Equal(t, want, mustLayout(t, src).Format(f), "pattern %q", src)
	}

	utc := FieldsOf(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "Z", mustLayout(t, "X").Format(utc))
	assert.Equal(t, "+00", mustLayout(t, "x").Format(utc))
	assert.Equal(t, "+0000", mustLayout(t, "Z").Format(utc))
	assert.Equal(t, "UTC", mustLayout(t, "VV").Format(utc))
	assert.Equal(t, "12:00 AM", mustLayout(t, "hh:mm a").Format(utc))
}

func TestIsRegionID(t *testing.T) {
	assert.True(t, IsRegionID("Europe/Moscow"))
	assert.True(t, IsRegionID("UTC"))
	assert.False(t, IsRegionID("Z"))
	assert.False(t, IsRegionID("+03:00"))
	assert.False(t, IsRegionID(""))
	assert.False(t, IsRegionID("Local"))
}

// ==============================
// Parse
// ==============================

func TestParseRoundTrip(t *testing.T) {
	l := mustLayout(t, "yyyy-MM-dd'T'HH:mm:ss.SSSXXX")
	p, err := l.Parse("2023-12-24T03:22:40.758+08:00")
	require.NoError(t, err)
	assert.True(t, p.HasOffset)
	assert.Equal(t, 8*3600, p.Offset)
	require.NotNil(t, p.Zone)
	assert.Equal(t, "+08:00", p.Zone.String())

	ts := time.Date(p.Year, p.Month, p.Day, p.Hour, p.Minute, p.Second, p.Nanosecond, p.Zone)
	assert.True(t, ts.Equal(time.Date(2023, 12, 23, 19, 22, 40, 758000000, time.UTC)))
}

func TestParseAdjacentNumbers(t *testing.T) {
	p, err := mustLayout(t, "yyyyMMddHHmm").Parse("202403051504")
	require.NoError(t, err)
	assert.Equal(t, 2024, p.Year)
	assert.Equal(t, time.March, p.Month)
	assert.Equal(t, 5, p.Day)
	assert.Equal(t, 15, p.Hour)
	assert.Equal(t, 4, p.Minute)
}

func TestParseTextAndAMPM(t *testing.T) {
	p, err := mustLayout(t, "EEE, dd MMM yyyy h:mm a").Parse("tue, 05 mar 2024 3:04 pm")
	require.NoError(t, err)
	assert.Equal(t, 15, p.Hour)
	assert.Equal(t, time.Tuesday, p.Weekday)

	_, err = mustLayout(t, "EEE, dd MMM yyyy").Parse("Wed, 05 Mar 2024")
	require.Error(t, err)

	p, err = mustLayout(t, "hh a").Parse("12 AM")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Hour)
}

func TestParseZoneID(t *testing.T) {
	p, err := mustLayout(t, "yyyy-MM-dd HH:mm VV").Parse("2024-01-01 10:00 Europe/Moscow")
	require.NoError(t, err)
	assert.True(t, p.HasZoneID)
	assert.Equal(t, "Europe/Moscow", p.Zone.String())

	p, err = mustLayout(t, "HH:mm VV").Parse("10:00 +05:30")
	require.NoError(t, err)
	assert.Equal(t, "+05:30", p.Zone.String())
}

func TestParseFailures(t *testing.T) {
	cases := map[string]string{
		"yyyy-MM-dd":    "2024-02-30",
		"HH:mm":         "24:00",
		"HH:mm ":        "10:00",
		"yyyy-MM-ddXXX": "2024-01-01+0300",
		"MM/dd":         "1/02",
		"yyyy-MM-dd VV": "2024-01-01 Mars/Olympus",
		"HH:mm:ss":      "10:00:00 trailing",
		"SSS":           "12",
	}
	for src, text := range cases {
		_, err := mustLayout(t, src).Parse(text)
		var pe *ParseError
		assert.ErrorAs(t, err, &pe, "pattern %q text %q", src, text)
	}
}

func TestLoadZone(t *testing.T) {
	for id, want := range map[string]string{
		"Z":             "Z",
		"+03:00":        "+03:00",
		"-0430":         "-04:30",
		"+05:45:30":     "+05:45:30",
		"Europe/Moscow": "Europe/Moscow",
	} {
		loc, err := LoadZone(id)
		require.NoError(t, err, id)
		assert.Equal(t, want, loc.String())
	}
	_, err := LoadZone("+3")
	require.Error(t, err)
	_, err = LoadZone("Nowhere/Else")
	require.Error(t, err)

	assert.Same(t, OffsetZone(3600), OffsetZone(3600))
}

func TestGetCachesLayouts(t *testing.T) {
	_, err := Get("yyyy 'bad")
	require.Error(t, err)

	a := mustLayout(t, "dd.MM.yyyy")
	b := mustLayout(t, "dd.MM.yyyy")
	assert.Equal(t, a.String(), b.String())
}
