package validator

import (
	"errors"
	"fmt"

	val "github.com/go-playground/validator/v10"
)

type describe func(field, param string) string

func static(format string) describe {
	return func(field, _ string) string {
		return fmt.Sprintf(format, field)
	}
}

func bounded(format string) describe {
	return func(field, param string) string {
		return fmt.Sprintf(format, field, param)
	}
}

var descriptions = map[string]describe{
	"required":     static("%s is required"),
	"email":        static("%s must be a valid email address"),
	"contactemail": static("%s must look like name@domain.tld"),
	"yearmonth":    static("%s must be formatted as YYYY-MM"),
	"civildate":    static("%s must be formatted as YYYY-MM-DD"),
	"timezone":     static("%s must be an IANA timezone name"),
	"uuid":         static("%s must be a valid UUID"),
	"oneof":        bounded("%s must be one of %s"),
	"min":          bounded("%s must be greater than or equal to %s"),
	"gte":          bounded("%s must be greater than or equal to %s"),
	"max":          bounded("%s must be less than or equal to %s"),
	"lte":          bounded("%s must be less than or equal to %s"),
	"trimmedmin":   bounded("%s must have at least %s characters"),
	"phonedigits":  bounded("%s must contain at least %s digits"),
}

// message reports the first failing field in words a booking form can show.
// name stands in for the field of a single value check.
func message(err error, name string) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err.Error()
	}

	first := fieldErrors[0]

	field := first.Field()
	if field == "" {
		field = name
	}

	if text, ok := descriptions[first.Tag()]; ok {
		return text(field, first.Param())
	}

	return field + " is invalid"
}
