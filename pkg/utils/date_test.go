package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextThursday(t *testing.T) {
	testCases := []struct {
		name string
		from time.Time
		want time.Time
	}{
		{
			name: "from a monday",
			from: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "from a thursday rolls to next week",
			from: time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC),
		},
		{
			name: "from a friday",
			from: time.Date(2025, 6, 6, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextThursday(tc.from)
			assert.Equal(t, time.Thursday, got.Weekday())
			assert.Equal(t, tc.want, got)
		})
	}
}
