package agenda

// HoursPerDay is the number of hour slots in the day view.
const HoursPerDay = 24

// hourLabels are the canonical slot labels, indexed by hour of day.
var hourLabels = [HoursPerDay]string{
	"12 AM", "1 AM", "2 AM", "3 AM", "4 AM", "5 AM",
	"6 AM", "7 AM", "8 AM", "9 AM", "10 AM", "11 AM",
	"12 PM", "1 PM", "2 PM", "3 PM", "4 PM", "5 PM",
	"6 PM", "7 PM", "8 PM", "9 PM", "10 PM", "11 PM",
}

var hourIndexByLabel = func() map[string]int {
	m := make(map[string]int, HoursPerDay)
	for i, label := range hourLabels {
		m[label] = i
	}
	return m
}()

// HourLabel returns the canonical label for an hour of day (0-23)
func HourLabel(hour int) string {
	return hourLabels[hour]
}

// HourIndex resolves a slot label to its hour of day. ok is false for any
// label outside the canonical 24; such items are treated as unscheduled.
func HourIndex(label string) (int, bool) {
	hour, ok := hourIndexByLabel[label]
	return hour, ok
}
