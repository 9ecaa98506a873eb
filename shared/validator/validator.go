package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/NikQuila/website-gocar-sub000/shared/constant"
	"github.com/NikQuila/website-gocar-sub000/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var (
	validate *val.Validate

	contactEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// registerTrimmedMinValidation checks the rune length of the trimmed string.
func registerTrimmedMinValidation(field val.FieldLevel) bool {
	minLen, err := strconv.Atoi(field.Param())
	if err != nil {
		return false
	}

	return utf8.RuneCountInString(strings.TrimSpace(field.Field().String())) >= minLen
}

// registerPhoneDigitsValidation counts digits only, so "+56 9 1234 5678" has 11.
func registerPhoneDigitsValidation(field val.FieldLevel) bool {
	minDigits, err := strconv.Atoi(field.Param())
	if err != nil {
		return false
	}

	digits := 0
	for _, r := range field.Field().String() {
		if unicode.IsDigit(r) {
			digits++
		}
	}

	return digits >= minDigits
}

func registerContactEmailValidation(field val.FieldLevel) bool {
	return contactEmailPattern.MatchString(strings.TrimSpace(field.Field().String()))
}

func registerLayoutValidation(layout string) val.Func {
	return func(field val.FieldLevel) bool {
		_, err := time.Parse(layout, field.Field().String())

		return err == nil
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	validations := map[string]val.Func{
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
		"trimmedmin":   registerTrimmedMinValidation,
		"phonedigits":  registerPhoneDigitsValidation,
		"contactemail": registerContactEmailValidation,
		"yearmonth":    registerLayoutValidation(constant.MonthFormat),
		"civildate":    registerLayoutValidation(constant.DateOnlyFormat),
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes a JSON body into data and checks its `validate` tags.
// Both decode and rule failures are 400s.
func Validate[T any](r io.Reader, data *T) error {
	if err := json.NewDecoder(r).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err, "")) //nolint:wrapcheck
	}

	return nil
}

// ValidateVar checks a single value, such as a query parameter, reporting
// failures under name.
func ValidateVar(name string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		return failure.BadRequestFromString(message(err, name)) //nolint:wrapcheck
	}

	return nil
}
