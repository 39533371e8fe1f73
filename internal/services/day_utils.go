package services

import "time"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

func DayKey(value time.Time, location *time.Location) string {
	return DateAtLocation(value, location).Format("2006-01-02")
}

func SameDay(a time.Time, b time.Time, location *time.Location) bool {
	return DateAtLocation(a, location).Equal(DateAtLocation(b, location))
}

// WeekStart returns the Monday that opens the ISO week containing value.
func WeekStart(value time.Time, location *time.Location) time.Time {
	day := DateAtLocation(value, location)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}
	return day.AddDate(0, 0, -offset)
}

func MonthStart(value time.Time, location *time.Location) time.Time {
	day := DateAtLocation(value, location)
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
}
