package timex_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-handy-utils/timex"
)

func TestHumanDuration(t *testing.T) {
	assert.Equal(t, "0 seconds", timex.HumanDuration(0))
	assert.Contains(t, timex.HumanDuration(90*time.Minute), "1 hour")
	assert.Contains(t, timex.HumanDuration(90*time.Minute), "30 minutes")
	assert.Contains(t, timex.HumanDuration(5*time.Second), "5 seconds")
}

func TestISODurationRoundTrip(t *testing.T) {
	for _, d := range []time.Duration{90 * time.Minute, 26 * time.Hour, 45 * time.Second} {
		iso := timex.FormatISODuration(d)
		got, err := timex.ParseISODuration(iso)
		require.NoError(t, err, "iso=%q", iso)
		assert.Equal(t, d, got, "iso=%q", iso)
	}
}

func TestParseISODuration(t *testing.T) {
	d, err := timex.ParseISODuration("PT1H30M")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	_, err = timex.ParseISODuration("not a period")
	assert.Error(t, err)
}

func TestToSeconds(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"01:30:00", 5400},
		{"02:15", 135},
		{"90", 90},
		{"1.5", 1.5},
		{"1.5h", 5400},
		{"45s", 45},
	}
	for _, c := range cases {
		got, ok := timex.ToSeconds(c.in)
		require.True(t, ok, "ToSeconds(%q)", c.in)
		assert.Equal(t, c.want, got, "ToSeconds(%q)", c.in)
	}
	for _, bad := range []string{"", "a:b", "1:2:3:4", "ninety", "-1:30"} {
		_, ok := timex.ToSeconds(bad)
		assert.False(t, ok, "ToSeconds(%q) should fail", bad)
	}
}

func TestRelativeTo(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "just now", timex.RelativeTo(now.Add(-10*time.Second), now))
	assert.Equal(t, "1 minute ago", timex.RelativeTo(now.Add(-90*time.Second), now))
	assert.Equal(t, "5 minutes ago", timex.RelativeTo(now.Add(-5*time.Minute), now))
	assert.Equal(t, "2 hours ago", timex.RelativeTo(now.Add(-2*time.Hour), now))
	assert.Equal(t, "3 days ago", timex.RelativeTo(now.Add(-72*time.Hour), now))
	assert.Equal(t, "2 months ago", timex.RelativeTo(now.Add(-61*24*time.Hour), now))
	assert.Equal(t, "1 year ago", timex.RelativeTo(now.Add(-400*24*time.Hour), now))
	assert.Equal(t, "in 2 days", timex.RelativeTo(now.Add(49*time.Hour), now))
	assert.Equal(t, "just now", timex.RelativeTo(now, now))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2024, 6, 1, 0, 5, 0, 0, time.UTC)
	b := time.Date(2024, 6, 1, 23, 55, 0, 0, time.UTC)
	c := time.Date(2024, 6, 2, 0, 5, 0, 0, time.UTC)
	assert.True(t, timex.SameDay(a, b))
	assert.False(t, timex.SameDay(a, c))
}
