package pseudo

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/nonibytes/searchbox/searchbox/schema"
)

// ISOLayout is the timestamp format of date filter values.
const ISOLayout = "2006-01-02T15:04:05.000Z"

var daysAgoRe = regexp.MustCompile(`(?i)(\d+)\s+days\s+ago`)

// comparisonSuffix maps a comparison operator to its filter key suffix.
var comparisonSuffix = map[string]string{
	"<":  "[lt]",
	"<=": "[lte]",
	"==": "",
	">=": "[gte]",
	">":  "[gt]",
}

// ComparisonSuffix returns the filter suffix for op.
func ComparisonSuffix(op string) (string, bool) {
	s, ok := comparisonSuffix[op]
	return s, ok
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseDate reads a relative "N days ago" expression or an absolute date.
func ParseDate(exp string, now time.Time) (time.Time, bool) {
	if m := daysAgoRe.FindStringSubmatch(exp); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, false
		}
		return now.AddDate(0, 0, -n), true
	}

	exp = strings.TrimSpace(exp)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, exp); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ConvertDate builds the fragment for a date comparison against key.
func ConvertDate(key, op, exp string, now time.Time) (Fragment, bool) {
	suffix, ok := ComparisonSuffix(op)
	if !ok {
		return nil, false
	}
	t, ok := ParseDate(exp, now)
	if !ok {
		return nil, false
	}
	return Fragment{key + suffix: t.UTC().Format(ISOLayout)}, true
}

// DateField is a pseudo key comparing the system timestamp attr.
func DateField(key, attr string, now func() time.Time) Field {
	return Field{
		Key:       key,
		Operators: schema.ComparisonOperators,
		Convert: FuncRule{Fn: func(_ context.Context, op, value, _ string) (Fragment, bool) {
			return ConvertDate(attr, op, value, now())
		}},
	}
}
