package schedule_test

import (
	"testing"
	"time"

	"github.com/gestorsaas/gestor_financeiro_app/internal/utils/schedule"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{
			name:   "plain month advance",
			start:  date(2025, time.March, 15),
			months: 1,
			want:   date(2025, time.April, 15),
		},
		{
			name:   "jan 31 clamps to feb 28",
			start:  date(2025, time.January, 31),
			months: 1,
			want:   date(2025, time.February, 28),
		},
		{
			name:   "jan 31 clamps to feb 29 in leap year",
			start:  date(2024, time.January, 31),
			months: 1,
			want:   date(2024, time.February, 29),
		},
		{
			name:   "year rollover",
			start:  date(2025, time.November, 10),
			months: 3,
			want:   date(2026, time.February, 10),
		},
		{
			name:   "multiple years ahead",
			start:  date(2025, time.May, 31),
			months: 13,
			want:   date(2026, time.June, 30),
		},
		{
			name:   "zero months is identity",
			start:  date(2025, time.August, 31),
			months: 0,
			want:   date(2025, time.August, 31),
		},
		{
			name:   "negative months go back and clamp",
			start:  date(2025, time.March, 31),
			months: -1,
			want:   date(2025, time.February, 28),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(schedule.AddMonths(tt.start, tt.months)),
				"want %s, got %s", tt.want, schedule.AddMonths(tt.start, tt.months))
		})
	}
}
