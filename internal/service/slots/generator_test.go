package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func assertInstant(t *testing.T, want, got time.Time) {
	t.Helper()
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
	assert.Equal(t, want.Location().String(), got.Location().String())
}

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator(domain.DefaultBusinessHours())
	require.NoError(t, err)
	return g
}

func TestStartSlots_ReferenceZone(t *testing.T) {
	g := newTestGenerator(t)
	ny := mustLoad(t, "America/New_York")
	date := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)

	got := g.StartSlots(date, ny)

	require.Len(t, got, 56)
	assertInstant(t, time.Date(2024, time.June, 12, 8, 0, 0, 0, ny), got[0])
	assertInstant(t, time.Date(2024, time.June, 12, 21, 45, 0, 0, ny), got[len(got)-1])
	for i := 1; i < len(got); i++ {
		assert.Equal(t, 15*time.Minute, got[i].Sub(got[i-1]), "slot %d", i)
	}
}

func TestStartSlots_ConvertedToLocalZone(t *testing.T) {
	g := newTestGenerator(t)
	london := mustLoad(t, "Europe/London")
	// New York is UTC-5 and London is UTC+0 in early March
	date := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)

	got := g.StartSlots(date, london)

	require.Len(t, got, 56)
	assertInstant(t, time.Date(2024, time.March, 4, 13, 0, 0, 0, london), got[0])
	assertInstant(t, time.Date(2024, time.March, 5, 2, 45, 0, 0, london), got[len(got)-1])
	assert.Equal(t, london, got[0].Location())
	assert.Equal(t, "01:00 PM", g.Label(got[0], london))
}

func TestStartSlots_AcrossUSSpringForward(t *testing.T) {
	g := newTestGenerator(t)
	ny := mustLoad(t, "America/New_York")
	london := mustLoad(t, "Europe/London")
	// New York moves to UTC-4 on this date while London stays on UTC+0
	date := time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

	inNY := g.StartSlots(date, ny)
	inLondon := g.StartSlots(date, london)

	require.Len(t, inNY, 56)
	require.Len(t, inLondon, 56)
	assert.Equal(t, 8, inNY[0].Hour())
	assert.Equal(t, 12, inLondon[0].Hour())
	for i := range inNY {
		assert.True(t, inNY[i].Equal(inLondon[i]), "slot %d", i)
	}
}

func TestEndSlots_FromOpening(t *testing.T) {
	g := newTestGenerator(t)
	ny := mustLoad(t, "America/New_York")
	date := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)
	start := time.Date(2024, time.June, 12, 8, 0, 0, 0, ny)

	got := g.EndSlots(date, start, ny)

	require.Len(t, got, 55)
	assertInstant(t, time.Date(2024, time.June, 12, 8, 15, 0, 0, ny), got[0])
	assertInstant(t, time.Date(2024, time.June, 12, 21, 45, 0, 0, ny), got[len(got)-1])
}

func TestEndSlots_StartGivenInLocalZone(t *testing.T) {
	g := newTestGenerator(t)
	london := mustLoad(t, "Europe/London")
	date := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	// 13:00 London is 08:00 New York
	start := time.Date(2024, time.March, 4, 13, 0, 0, 0, london)

	got := g.EndSlots(date, start, london)

	require.Len(t, got, 55)
	assertInstant(t, time.Date(2024, time.March, 4, 13, 15, 0, 0, london), got[0])
}

func TestEndSlots_AtOrAfterClosing(t *testing.T) {
	g := newTestGenerator(t)
	ny := mustLoad(t, "America/New_York")
	date := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
	}{
		{name: "last start slot", start: time.Date(2024, time.June, 12, 21, 45, 0, 0, ny)},
		{name: "closing time", start: time.Date(2024, time.June, 12, 22, 0, 0, 0, ny)},
		{name: "late evening", start: time.Date(2024, time.June, 12, 23, 30, 0, 0, ny)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.EndSlots(date, tt.start, ny)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestSlots_Idempotent(t *testing.T) {
	g := newTestGenerator(t)
	la := mustLoad(t, "America/Los_Angeles")
	date := time.Date(2024, time.November, 3, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, g.StartSlots(date, la), g.StartSlots(date, la))

	start := g.StartSlots(date, la)[10]
	assert.Equal(t, g.EndSlots(date, start, la), g.EndSlots(date, start, la))
}

func TestStartSlots_NilLocalUsesReferenceZone(t *testing.T) {
	g := newTestGenerator(t)
	date := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)

	got := g.StartSlots(date, nil)

	require.NotEmpty(t, got)
	assert.Equal(t, g.Location(), got[0].Location())
	assert.Equal(t, "08:00 AM", g.Label(got[0], g.Location()))
}

func TestContains(t *testing.T) {
	g := newTestGenerator(t)
	ny := mustLoad(t, "America/New_York")
	at := func(h, m int) time.Time { return time.Date(2024, time.June, 12, h, m, 0, 0, ny) }

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{name: "inside", start: at(9, 0), end: at(10, 0), want: true},
		{name: "full window", start: at(8, 0), end: at(22, 0), want: true},
		{name: "before opening", start: at(7, 45), end: at(8, 30), want: false},
		{name: "after closing", start: at(21, 30), end: at(22, 15), want: false},
		{name: "reversed", start: at(10, 0), end: at(9, 0), want: false},
		{name: "zero length", start: at(10, 0), end: at(10, 0), want: false},
		{name: "spans two days", start: at(21, 0), end: at(9, 0).AddDate(0, 0, 1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Contains(tt.start, tt.end))
		})
	}
}

func TestNewGenerator_Errors(t *testing.T) {
	hours := domain.DefaultBusinessHours()
	hours.TimeZone = "Mars/Olympus_Mons"
	_, err := NewGenerator(hours)
	assert.ErrorIs(t, err, ErrUnknownTimeZone)

	hours = domain.DefaultBusinessHours()
	hours.Open, hours.Close = hours.Close, hours.Open
	_, err = NewGenerator(hours)
	assert.ErrorIs(t, err, ErrInvalidHours)
}
