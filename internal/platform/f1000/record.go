package f1000

// Record is the flat projection of one entity that the layout reads.
// Adapters store text as string and flags as bool. A nil Record stands for
// an absent optional entity; all accessors are safe on it.
type Record map[string]any

// Text returns the value at key as text, or "".
func (r Record) Text(key string) string {
	return TextOrEmpty(r[key])
}

// Flag returns the value at key coerced to bool.
func (r Record) Flag(key string) bool {
	return ToBoolean(r[key])
}

// Date returns the value at key formatted as DD.MM.YYYY.
func (r Record) Date(key string) string {
	return FormatDate(r[key])
}

// Time returns the value at key formatted as HH:MM.
func (r Record) Time(key string) string {
	return FormatTime(r[key])
}

// Has reports whether key carries a non-nil value.
func (r Record) Has(key string) bool {
	v, ok := r[key]
	return ok && deref(v) != nil
}

// Bundle is everything one report needs to be rendered: the report and
// its already resolved relations. Employer, Carrier and Insurer may be
// nil.
type Bundle struct {
	Report    Record
	Patient   Record
	Clinician Record
	Employer  Record
	Carrier   Record
	Insurer   Record
}
