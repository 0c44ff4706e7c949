package schema

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/f4f-study-portal/models"
)

const (
	todayToken = "today"
	nowToken   = "now"
)

var momentaryPattern = regexp.MustCompile(`^(now|today)([+-])(\d+)$`)

// Momentary is a date or time default relative to the moment the form is
// filled in: "today-3" is three days ago, "now+60" is a minute from now.
type Momentary struct {
	// Datatype is DateType or TimeType and decides the unit of Offset.
	Datatype models.FieldType

	// Offset is in days for DateType and in seconds for TimeType.
	Offset int
}

// Token returns "today" for dates and "now" for times.
func (m Momentary) Token() string {
	return momentaryToken(m.Datatype)
}

// Unit returns "days" for dates and "seconds" for times.
func (m Momentary) Unit() string {
	if m.Datatype == models.DateType {
		return "days"
	}
	return "seconds"
}

// String formats the value the way it is stored: the token followed by the
// signed offset, or the bare token for a zero offset.
func (m Momentary) String() string {
	switch {
	case m.Offset > 0:
		return m.Token() + "+" + strconv.Itoa(m.Offset)
	case m.Offset < 0:
		return m.Token() + strconv.Itoa(m.Offset)
	}
	return m.Token()
}

// Resolve returns the absolute moment relative to now.
func (m Momentary) Resolve(now time.Time) time.Time {
	if m.Datatype == models.DateType {
		y, mo, d := now.Date()
		return time.Date(y, mo, d+m.Offset, 0, 0, 0, 0, now.Location())
	}
	return now.Add(time.Duration(m.Offset) * time.Second)
}

// WithDatatype keeps the offset and switches unit and token to t.
func (m Momentary) WithDatatype(t models.FieldType) Momentary {
	return Momentary{Datatype: t, Offset: m.Offset}
}

// ParseMomentary reads a momentary value for a field of type t.
//
// A value is momentary when it starts with the token of t. The offset is the
// leading signed integer after the token; a missing or unreadable offset
// counts as zero. A fully formed value of the other temporal type, e.g.
// "now-10" for a date, is converted to t keeping its offset.
func ParseMomentary(t models.FieldType, value string) (Momentary, bool) {
	if !t.IsTemporal() {
		return Momentary{}, false
	}

	token := momentaryToken(t)
	if strings.HasPrefix(value, token) {
		return Momentary{Datatype: t, Offset: leadingInt(value[len(token):])}, true
	}

	if m := momentaryPattern.FindStringSubmatch(value); m != nil {
		n, err := strconv.Atoi(m[3])
		if err != nil {
			return Momentary{}, false
		}
		if m[2] == "-" {
			n = -n
		}
		return Momentary{Datatype: t, Offset: n}, true
	}

	return Momentary{}, false
}

// IsMomentary reports whether value is a well formed momentary value of any
// temporal type, i.e. a token followed by a signed offset.
func IsMomentary(value string) bool {
	return momentaryPattern.MatchString(value)
}

func momentaryToken(t models.FieldType) string {
	if t == models.DateType {
		return todayToken
	}
	return nowToken
}

// leadingInt parses an optional sign followed by digits at the start of s.
func leadingInt(s string) int {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
