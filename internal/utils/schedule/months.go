package schedule

import "time"

// AddMonths advances a date by the given number of months, clamping the day
// to the last day of the target month. Jan 31 plus one month is Feb 28 (or
// Feb 29 in a leap year), not Mar 3.
func AddMonths(d time.Time, months int) time.Time {
	year := d.Year()
	month := int(d.Month()) - 1 + months
	year += month / 12
	month = month % 12
	if month < 0 {
		month += 12
		year--
	}
	day := d.Day()
	if last := daysIn(year, time.Month(month+1)); day > last {
		day = last
	}
	return time.Date(year, time.Month(month+1), day, d.Hour(), d.Minute(), d.Second(), d.Nanosecond(), d.Location())
}

func daysIn(year int, month time.Month) int {
	// Day zero of the next month normalizes to the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
