package numduration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitScale(t *testing.T) {
	testCases := []struct {
		unit     Unit
		expected int64
	}{
		{Nanosecond, 1},
		{Microsecond, 1_000},
		{Millisecond, 1_000_000},
		{Second, 1_000_000_000},
		{Minute, 60_000_000_000},
		{Hour, 3_600_000_000_000},
		{Day, 86_400_000_000_000},
		{Week, 604_800_000_000_000},
	}

	for _, tc := range testCases {
		t.Run(tc.unit.String(), func(t *testing.T) {
			assert.True(t, tc.unit.Valid())
			assert.Equal(t, time.Duration(tc.expected), tc.unit.Scale())
		})
	}

	assert.Len(t, Units(), len(testCases))
}

func TestUnitsAscending(t *testing.T) {
	units := Units()
	for i := 1; i < len(units); i++ {
		assert.Less(t, units[i-1].Scale(), units[i].Scale())
	}
}

func TestInvalidUnit(t *testing.T) {
	u := Unit(8)
	assert.False(t, u.Valid())
	assert.Zero(t, u.Scale())
	assert.Equal(t, "Unit(8)", u.String())
}

func TestParseUnit(t *testing.T) {
	t.Run("Valid names", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected Unit
		}{
			{"nanosecond", Nanosecond},
			{"nanoseconds", Nanosecond},
			{"ns", Nanosecond},
			{"us", Microsecond},
			{"µs", Microsecond},
			{"microseconds", Microsecond},
			{"ms", Millisecond},
			{"Millisecond", Millisecond},
			{"s", Second},
			{"sec", Second},
			{"SECONDS", Second},
			{"m", Minute},
			{"min", Minute},
			{"minutes", Minute},
			{"h", Hour},
			{"hr", Hour},
			{" hours ", Hour},
			{"d", Day},
			{"days", Day},
			{"w", Week},
			{"wk", Week},
			{"weeks", Week},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				u, err := ParseUnit(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, u)
			})
		}
	})

	t.Run("Canonical names round trip", func(t *testing.T) {
		for _, u := range Units() {
			parsed, err := ParseUnit(u.String())
			require.NoError(t, err)
			assert.Equal(t, u, parsed)
		}
	})

	t.Run("Invalid names", func(t *testing.T) {
		testCases := []string{"", "   ", "month", "years", "1h", "fortnight", "hours2"}

		for _, input := range testCases {
			t.Run(input, func(t *testing.T) {
				_, err := ParseUnit(input)
				assert.ErrorIs(t, err, ErrUnknownUnit)
			})
		}
	})
}
