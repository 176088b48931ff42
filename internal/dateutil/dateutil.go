// Package dateutil formats timestamps from user-friendly format strings.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid timestamp format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultTimestampFormat renders as "2006-01-02 15:04:05 UTC".
const DefaultTimestampFormat = "YYYY-MM-DD HH:mm:ss [UTC]"

// dateTokens maps user-friendly tokens to Go layout fragments.
// Ordered by length descending for greedy matching; matching is case-sensitive
// so "MM" (month) and "mm" (minute) do not collide.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common formats.
var DatePresets = map[string]string{
	"default": DefaultTimestampFormat,
	"iso":     "YYYY-MM-DD",
	"rfc3339": "YYYY-MM-DD[T]HH:mm:ss[Z]",
	"long":    "MMMM D, YYYY",
}

// segment is either a Go layout fragment or literal text copied verbatim.
type segment struct {
	text    string
	literal bool
}

// Layout is a parsed format string.
type Layout struct {
	segments []segment
}

// Parse converts a format string into a Layout.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss.
// Brackets escape literal text: [UTC] is copied as "UTC".
// Presets (case-insensitive) are expanded first.
// Literals are never passed to time.Format, so "[Mon]" stays "Mon".
func Parse(format string) (*Layout, error) {
	if preset, ok := DatePresets[strings.ToLower(format)]; ok {
		format = preset
	}
	if format == "" {
		return nil, fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return nil, fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	l := &Layout{}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			l.segments = append(l.segments, segment{text: lit.String(), literal: true})
			lit.Reset()
		}
	}

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return nil, fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			lit.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				flush()
				l.segments = append(l.segments, segment{text: t.goFmt})
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			lit.WriteByte(format[i])
			i++
		}
	}
	flush()

	return l, nil
}

// Format renders t. The caller picks the time zone.
func (l *Layout) Format(t time.Time) string {
	var b strings.Builder
	for _, s := range l.segments {
		if s.literal {
			b.WriteString(s.text)
			continue
		}
		b.WriteString(t.Format(s.text))
	}
	return b.String()
}
