package validation

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
)

type violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PayloadError holds all violations found in request data
type PayloadError struct {
	Violations []violation `json:"errors"`
}

func (e *PayloadError) Error() string {
	messages := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		messages = append(messages, v.Message)
	}
	return strings.Join(messages, "\n")
}

// EchoValidator is echo.Validator backed by go-playground validator with english messages
type EchoValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// Echo builds new EchoValidator
func Echo(validator *validator.Validate, translator ut.Translator) *EchoValidator {
	return &EchoValidator{
		validator:  validator,
		translator: translator,
	}
}

// NewEnglish builds EchoValidator with default english translations registered
func NewEnglish() (*EchoValidator, error) {
	enLocale := en.New()
	trans, ok := ut.New(enLocale, enLocale).GetTranslator("en")
	if !ok {
		return nil, errors.New("missing en translations")
	}

	v := validator.New()
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("failed to register en translations - %w", err)
	}
	return Echo(v, trans), nil
}

// Validate validates struct and converts violations into PayloadError
func (v *EchoValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *EchoValidator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{Violations: make([]violation, 0, len(ve))}
	for _, e := range ve {
		pldErr.Violations = append(pldErr.Violations, violation{
			Field:   e.Field(),
			Message: e.Translate(v.translator),
		})
	}
	return pldErr
}
