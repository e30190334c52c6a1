package handler

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/QuestGate_Go/internal/wallet"
)

// Validator checks request structs against their validate tags
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce sync.Once
	validatorInst *Validator
)

// GetValidator returns the shared validator, building it on first use
func GetValidator() *Validator {
	validatorOnce.Do(func() {
		validatorInst = newValidator()
	})
	return validatorInst
}

func newValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so error fields match the request body
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails for an empty tag or nil func
	_ = v.RegisterValidation("wallet", validateWallet)

	return &Validator{validate: v}
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// fieldMessages turns a failed tag into the text shown for that field
var fieldMessages = map[string]func(param string) string{
	"required": func(string) string { return "This field is required" },
	"wallet":   func(string) string { return "Invalid wallet address" },
	"max":      func(p string) string { return "Must be at most " + p },
	"min":      func(p string) string { return "Must be at least " + p },
	"gt":       func(p string) string { return "Must be greater than " + p },
	"gte":      func(p string) string { return "Must be at least " + p },
}

// FormatValidationError maps each failing field (by json name) to a message
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		msg := "Invalid value"
		if f, ok := fieldMessages[e.Tag()]; ok {
			msg = f(e.Param())
		}
		out[e.Field()] = msg
	}
	return out
}

// validateWallet accepts EVM addresses and shard.realm.num account ids.
// Empty passes so that optional fields only fail on "required".
func validateWallet(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, err := wallet.Parse(value)
	return err == nil
}
