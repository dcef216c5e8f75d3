package domain

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEstimate(t *testing.T) {
	cases := []struct {
		name string
		text string
		want *int
	}{
		{"spelled out", "1 day, 4 hours", IntPtr(12)},
		{"abbreviated", "1d 4h", IntPtr(12)},
		{"hours only", "4h", IntPtr(4)},
		{"days only", "3d", IntPtr(24)},
		{"plural days no hours", "2 days", IntPtr(16)},
		{"singular hour", "1 hour", IntPtr(1)},
		{"no separator", "1d4h", IntPtr(12)},
		{"comma abbreviated", "2d, 3h", IntPtr(19)},
		{"multi digit hours", "12h", IntPtr(12)},
		{"parsed zero", "0d", IntPtr(0)},
		{"zero hours", "0h", IntPtr(0)},
		{"empty", "", nil},
		{"garbage", "garbage", nil},
		{"bare number", "42", nil},
		{"unit before number", "h4", nil},
		{"mixed case units", "1 Day, 2 Hours", IntPtr(10)},
		{"surrounding whitespace", "  1d  ", IntPtr(8)},
		{"trailing text ignored", "1d remaining", IntPtr(8)},
		{"overflow", "99999999999999999999999d", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ParseEstimate(tc.text)
			if tc.want == nil {
				assert.Nil(t, got, "text=%q", tc.text)
				return
			}
			require.NotNil(t, got, "text=%q", tc.text)
			assert.Equal(t, *tc.want, *got, "text=%q", tc.text)
		})
	}
}

func TestFormatEstimate(t *testing.T) {
	assert.Equal(t, "-", FormatEstimate(nil))
	assert.Equal(t, "0h", FormatEstimate(IntPtr(0)))
	assert.Equal(t, "5h", FormatEstimate(IntPtr(5)))
	assert.Equal(t, "2d", FormatEstimate(IntPtr(16)))
	assert.Equal(t, "1d 4h", FormatEstimate(IntPtr(12)))
}

func TestParseEstimate_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("spelled and abbreviated forms agree", prop.ForAll(
		func(days, hours int) bool {
			spelled := ParseEstimate(fmt.Sprintf("%d days, %d hours", days, hours))
			short := ParseEstimate(fmt.Sprintf("%dd %dh", days, hours))
			return spelled != nil && short != nil &&
				*spelled == *short && *short == days*WorkdayHours+hours
		},
		gen.IntRange(0, 400),
		gen.IntRange(0, 400),
	))

	properties.Property("format then parse is the identity", prop.ForAll(
		func(hours int) bool {
			parsed := ParseEstimate(FormatEstimate(&hours))
			return parsed != nil && *parsed == hours
		},
		gen.IntRange(0, 10000),
	))

	properties.Property("text without digits never parses", prop.ForAll(
		func(s string) bool {
			return ParseEstimate(s) == nil
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
