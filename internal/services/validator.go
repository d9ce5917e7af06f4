package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/inzzo/inzzo-landing/internal/models"
	apperrors "github.com/inzzo/inzzo-landing/pkg/errors"
)

// Rules are reported in this order regardless of field order; the lowest
// rank among all failing fields wins.
var ruleRank = map[string]int{
	"required":   0,
	"min":        1,
	"contains":   2,
	"startswith": 3,
}

// SubmissionValidator checks landing form payloads
type SubmissionValidator struct {
	validate *validator.Validate
}

// NewSubmissionValidator creates a validator for lead and order submissions
func NewSubmissionValidator() *SubmissionValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &SubmissionValidator{validate: v}
}

// ValidateLead normalizes and validates a lead submission
func (v *SubmissionValidator) ValidateLead(lead *models.LeadSubmission) error {
	lead.Normalize()
	return v.check(lead, models.MsgLeadRequired)
}

// ValidateOrder normalizes and validates an order submission
func (v *SubmissionValidator) ValidateOrder(order *models.OrderSubmission) error {
	order.Normalize()
	return v.check(order, models.MsgOrderRequired)
}

func (v *SubmissionValidator) check(submission any, requiredMessage string) error {
	err := v.validate.Struct(submission)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return apperrors.InternalError("submission validation: " + err.Error())
	}

	first := fieldErrors[0]
	for _, fe := range fieldErrors[1:] {
		if rank(fe.Tag()) < rank(first.Tag()) {
			first = fe
		}
	}

	return toValidationError(first, requiredMessage)
}

func rank(tag string) int {
	if r, ok := ruleRank[tag]; ok {
		return r
	}
	return len(ruleRank)
}

func toValidationError(fe validator.FieldError, requiredMessage string) *apperrors.ValidationError {
	switch fe.Tag() {
	case "required":
		return apperrors.NewValidationError(fe.Field(), "required fields missing", requiredMessage)
	case "min":
		return apperrors.NewValidationError(fe.Field(), "name too short", models.MsgNameTooShort)
	case "contains":
		return apperrors.NewValidationError(fe.Field(), "invalid email", models.MsgInvalidEmail)
	case "startswith":
		return apperrors.NewValidationError(fe.Field(), "telegram must start with @", models.MsgTelegramPrefix)
	default:
		return apperrors.NewValidationError(fe.Field(), fe.Tag(), requiredMessage)
	}
}
