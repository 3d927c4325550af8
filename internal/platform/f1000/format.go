package f1000

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Checkbox glyphs. The PDF backend draws them as vector boxes since the
// core fonts carry neither character.
const (
	CheckedBox   = "☒"
	UncheckedBox = "☐"
)

const (
	isoDate     = "2006-01-02"
	displayDate = "02.01.2006"
)

// FormatDate renders an ISO date (or a time.Time) as DD.MM.YYYY. Nil and
// empty values yield "". Text that does not parse is returned unchanged.
func FormatDate(v any) string {
	switch d := deref(v).(type) {
	case nil:
		return ""
	case time.Time:
		if d.IsZero() {
			return ""
		}
		return d.Format(displayDate)
	case string:
		if t, ok := parseISODate(d); ok {
			return t.Format(displayDate)
		}
		return d
	default:
		return fmt.Sprint(d)
	}
}

// parseISODate reads a YYYY-MM-DD date, optionally followed by a time part
// introduced by 'T' or a space.
func parseISODate(s string) (time.Time, bool) {
	n := len(isoDate)
	if len(s) < n || (len(s) > n && s[n] != 'T' && s[n] != ' ') {
		return time.Time{}, false
	}
	t, err := time.Parse(isoDate, s[:n])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatTime renders a time of day as HH:MM. Accepts time.Time or text in
// HH:MM[:SS[.ffffff]] form; anything else is returned unchanged.
func FormatTime(v any) string {
	switch t := deref(v).(type) {
	case nil:
		return ""
	case time.Time:
		return t.Format("15:04")
	case string:
		if t == "" {
			return ""
		}
		if len(t) >= 5 && (len(t) == 5 || t[5] == ':') {
			if _, err := time.Parse("15:04", t[:5]); err == nil {
				return t[:5]
			}
		}
		return t
	default:
		return fmt.Sprint(t)
	}
}

var (
	trueTokens  = map[string]bool{"true": true, "1": true, "yes": true, "ja": true, "y": true, "on": true}
	falseTokens = map[string]bool{"false": true, "0": true, "no": true, "nein": true, "n": true, "off": true, "": true}
)

// ToBoolean coerces loosely typed flag values. Strings and named string
// types are matched against the known yes/no tokens (trimmed,
// case-insensitive), numbers are true when nonzero, nil is false and
// anything else falls back to Go-style truthiness (non-empty collections,
// non-nil values).
func ToBoolean(v any) bool {
	switch b := deref(v).(type) {
	case nil:
		return false
	case bool:
		return b
	case string:
		return tokenBool(b)
	}

	rv := reflect.ValueOf(deref(v))
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return tokenBool(rv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Interface, reflect.Func:
		return !rv.IsNil()
	}
	return true
}

// tokenBool maps a yes/no token. Unknown non-empty text counts as true.
func tokenBool(s string) bool {
	tok := strings.ToLower(strings.TrimSpace(s))
	if trueTokens[tok] {
		return true
	}
	return !falseTokens[tok]
}

// CheckboxGlyph returns the box glyph for a checked or unchecked option.
func CheckboxGlyph(checked bool) string {
	if checked {
		return CheckedBox
	}
	return UncheckedBox
}

// TextOrEmpty stringifies v, mapping nil (and nil pointers) to "".
func TextOrEmpty(v any) string {
	switch s := deref(v).(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprint(s)
	}
}

// deref follows pointers until it reaches a non-pointer value. A nil
// pointer anywhere along the way yields nil.
func deref(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}
