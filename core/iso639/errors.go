package iso639

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/iso639/core/errors"
	"github.com/FocuswithJustin/iso639/core/mapping"
)

// InvalidValueError reports a candidate that does not correspond to any
// known ISO 639 identifier or name, or explicit tag/value pairs that
// resolve to different languages.
type InvalidValueError struct {
	// Values holds the offending input(s), formatted as "value" or
	// "tag=value" for explicit pairs.
	Values []string
}

func (e *InvalidValueError) Error() string {
	switch len(e.Values) {
	case 0:
		return "no ISO 639 value supplied"
	case 1:
		return fmt.Sprintf("%q is not a valid ISO 639 value", e.Values[0])
	}
	return fmt.Sprintf("%s are not all values of a single ISO 639 language",
		strings.Join(e.Values, ", "))
}

func (e *InvalidValueError) Unwrap() error {
	return errors.ErrInvalidInput
}

// DeprecatedValueError reports a candidate that refers to an identifier or
// name retired by a registration authority. ChangeTo, when non-empty, names
// the replacement identifier; callers are expected to re-resolve with it.
type DeprecatedValueError struct {
	ID        string // retired identifier
	Name      string // reference name at time of retirement
	Reason    string // one-letter (639-3) or two-letter (639-1/2) reason code
	ChangeTo  string // replacement identifier, if any
	RetRemedy string // free-text remedy, if any
	Effective string // ISO 8601 date the retirement took effect
}

func (e *DeprecatedValueError) Error() string {
	msg := fmt.Sprintf("%q (%s) is a deprecated ISO 639 value, effective %s",
		e.ID, e.Name, e.Effective)
	if e.ChangeTo != "" {
		msg += fmt.Sprintf(", changed to %q", e.ChangeTo)
	}
	return msg
}

func (e *DeprecatedValueError) Unwrap() error {
	return errors.ErrDeprecated
}

func invalidValue(values ...string) error {
	return &InvalidValueError{Values: values}
}

func deprecatedValue(ret mapping.Retirement) error {
	return &DeprecatedValueError{
		ID:        ret.ID,
		Name:      ret.Name,
		Reason:    ret.Reason,
		ChangeTo:  ret.ChangeTo,
		RetRemedy: ret.RetRemedy,
		Effective: ret.Effective,
	}
}
