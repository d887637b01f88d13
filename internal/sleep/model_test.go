package sleep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/GoSim-25-26J-441/trackers-backend/internal/apperr"
)

var bed = time.Date(2025, time.May, 1, 23, 15, 0, 0, time.UTC)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		f    Fields
		ok   bool
	}{
		{"normal night", Fields{BedTime: bed, WakeTime: bed.Add(7*time.Hour + 30*time.Minute), Quality: 8}, true},
		{"exactly a day", Fields{BedTime: bed, WakeTime: bed.Add(24 * time.Hour), Quality: 1}, true},
		{"missing times", Fields{Quality: 5}, false},
		{"wake equals bed", Fields{BedTime: bed, WakeTime: bed, Quality: 5}, false},
		{"wake before bed", Fields{BedTime: bed, WakeTime: bed.Add(-time.Hour), Quality: 5}, false},
		{"too long", Fields{BedTime: bed, WakeTime: bed.Add(25 * time.Hour), Quality: 5}, false},
		{"quality zero", Fields{BedTime: bed, WakeTime: bed.Add(time.Hour), Quality: 0}, false},
		{"quality eleven", Fields{BedTime: bed, WakeTime: bed.Add(time.Hour), Quality: 11}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.f.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperr.ErrInvalid)
			}
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	f := Fields{BedTime: bed, WakeTime: bed.Add(7*time.Hour + 30*time.Minute + 45*time.Second)}
	assert.Equal(t, 450, f.DurationMinutes())
}
