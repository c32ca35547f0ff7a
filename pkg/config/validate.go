package config

import (
	"fmt"
	"strconv"

	"github.com/macropower/chatwin/pkg/loadreport"
	"github.com/macropower/chatwin/pkg/props"
)

const (
	literalTrue  = "true"
	literalFalse = "false"
)

// ValidateDimensions validates raw width and height strings.
func ValidateDimensions(r *loadreport.Report, width, height string) *loadreport.Report {
	validateIntegerWithMin(r, KeyWidth, width, MinDimension)
	validateIntegerWithMin(r, KeyHeight, height, MinDimension)

	return r
}

// ValidateChromaBorder validates raw chroma border inset strings.
func ValidateChromaBorder(r *loadreport.Report, left, top, right, bottom string) *loadreport.Report {
	validateIntegerWithMin(r, KeyChromaLeft, left, MinChromaBorder)
	validateIntegerWithMin(r, KeyChromaTop, top, MinChromaBorder)
	validateIntegerWithMin(r, KeyChromaRight, right, MinChromaBorder)
	validateIntegerWithMin(r, KeyChromaBottom, bottom, MinChromaBorder)

	return r
}

// ValidateValue validates a single raw value for a known key. Unknown keys
// are recorded as malformed.
func ValidateValue(r *loadreport.Report, key, value string) *loadreport.Report {
	f, ok := lookupField(key)
	if !ok {
		r.AddError(key, loadreport.KindMalformed, "unknown key")
		return r
	}

	validateField(r, f, value)

	return r
}

// ValidateValues checks the presence of every required key in store, then
// validates every present value. All problems are recorded; none stop the
// remaining checks.
func ValidateValues(r *loadreport.Report, store props.Store) *loadreport.Report {
	for _, f := range fields {
		if !f.required {
			continue
		}

		if _, ok := store.Get(f.key); !ok {
			r.AddError(f.key, loadreport.KindMissing, "required key is missing")
		}
	}

	for _, f := range fields {
		v, ok := store.Get(f.key)
		if !ok {
			continue
		}

		validateField(r, f, v)
	}

	return r
}

func validateField(r *loadreport.Report, f field, value string) {
	switch f.kind {
	case kindBool:
		validateBoolean(r, f.key, value)
	case kindInt:
		n, ok := validateInteger(r, f.key, value)
		if !ok {
			return
		}

		switch {
		case f.hasMin && f.hasMax && (n < f.min || n > f.max):
			r.AddError(f.key, loadreport.KindOutOfRange,
				fmt.Sprintf("%d is outside the range [%d, %d]", n, f.min, f.max))
		case f.hasMin && n < f.min:
			r.AddError(f.key, loadreport.KindOutOfRange,
				fmt.Sprintf("%d is less than the minimum %d", n, f.min))
		case f.hasMax && n > f.max:
			r.AddError(f.key, loadreport.KindOutOfRange,
				fmt.Sprintf("%d is greater than the maximum %d", n, f.max))
		}
	}
}

func validateIntegerWithMin(r *loadreport.Report, key, value string, minimum int) {
	n, ok := validateInteger(r, key, value)
	if ok && n < minimum {
		r.AddError(key, loadreport.KindOutOfRange,
			fmt.Sprintf("%d is less than the minimum %d", n, minimum))
	}
}

func validateInteger(r *loadreport.Report, key, value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		r.AddError(key, loadreport.KindMalformed, fmt.Sprintf("%q is not an integer", value))
		return 0, false
	}

	return n, true
}

func validateBoolean(r *loadreport.Report, key, value string) {
	if value != literalTrue && value != literalFalse {
		r.AddError(key, loadreport.KindMalformed,
			fmt.Sprintf("%q is not one of %q or %q", value, literalTrue, literalFalse))
	}
}

func formatBool(b bool) string {
	if b {
		return literalTrue
	}

	return literalFalse
}
