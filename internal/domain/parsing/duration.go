package parsing

import (
	"regexp"
	"strconv"
	"time"
)

// maxRentalDays guards against garbage ranges (typo'd years and the like).
const maxRentalDays = 365

var (
	reSlashRange = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{4})\s*(?:to|–|-)\s*(\d{1,2})/(\d{1,2})/(\d{4})`)
	reMonthSpan  = regexp.MustCompile(`(?i)([a-z]{3,9})\s+(\d{1,2})\s*(?:to|–|-)\s*(\d{1,2})\s*,?\s*\d{4}`)
	reISORange   = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})\s*(?:to|–|-)\s*(\d{4})-(\d{2})-(\d{2})`)
	reExplicit   = regexp.MustCompile(`(?i)(\d+)\s*(?:days?|nights?)\b`)
)

// ParseDays turns free-text rental period input into a day count. It never
// fails: anything unparsable yields 1.
//
// Recognized shapes, tried in order (first match wins):
//
//	A. "15/06/2025 to 20/06/2025"  DD/MM/YYYY ranges; the count is the
//	   number of nights (return day excluded).
//	B. "June 15-20, 2025"          plain numeric span of the day-of-month.
//	C. "2025-06-15 to 2025-06-20"  ISO range; inclusive count (calendar
//	   difference plus one).
//	D. "5 days" / "3 nights"       explicit count anywhere in the text.
//
// A and C deliberately disagree on whether the return day counts. The two
// conventions shipped independently and existing quotes were priced under
// them; keep both until the business rules them into one.
func ParseDays(rentalDates string) int {
	if m := reSlashRange.FindStringSubmatch(rentalDates); m != nil {
		return daysFromSlashRange(m)
	}
	if m := reMonthSpan.FindStringSubmatch(rentalDates); m != nil {
		return daysFromNumericSpan(m[2], m[3])
	}
	if m := reISORange.FindStringSubmatch(rentalDates); m != nil {
		return daysFromISORange(m)
	}
	if m := reExplicit.FindStringSubmatch(rentalDates); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			return n
		}
	}
	return 1
}

func daysFromSlashRange(m []string) int {
	start, ok1 := slashDate(m[1], m[2], m[3])
	end, ok2 := slashDate(m[4], m[5], m[6])
	if !ok1 || !ok2 || end.Before(start) {
		return 1
	}
	days := int(end.Sub(start).Hours() / 24)
	if days > maxRentalDays {
		return 1
	}
	if days < 1 {
		return 1
	}
	return days
}

// slashDate parses a DD/MM/YYYY date. The forms reach a UK audience, so
// day-first is the default; a first component over 12 only confirms it. A
// second component over 12 cannot be a month, which marks the date as the
// US month-first order instead.
func slashDate(a, b, y string) (time.Time, bool) {
	day, _ := strconv.Atoi(a)
	month, _ := strconv.Atoi(b)
	year, _ := strconv.Atoi(y)
	if month > 12 && day <= 12 {
		day, month = month, day
	}
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1000 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return t, true
}

func daysFromNumericSpan(startDay, endDay string) int {
	s, _ := strconv.Atoi(startDay)
	e, _ := strconv.Atoi(endDay)
	if e-s < 1 {
		return 1
	}
	return e - s
}

func daysFromISORange(m []string) int {
	start, err1 := time.Parse("2006-01-02", m[1]+"-"+m[2]+"-"+m[3])
	end, err2 := time.Parse("2006-01-02", m[4]+"-"+m[5]+"-"+m[6])
	if err1 != nil || err2 != nil || end.Before(start) {
		return 1
	}
	days := int(end.Sub(start).Hours()/24) + 1
	if days > maxRentalDays || days < 1 {
		return 1
	}
	return days
}
