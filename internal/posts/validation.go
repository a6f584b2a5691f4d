package posts

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report json field names instead of Go ones
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,max=255"`
	Content string `json:"content" validate:"required"`
}

type UpdatePostRequest struct {
	Title   *string `json:"title" validate:"omitempty,max=255"`
	Content *string `json:"content"`
}

func (r UpdatePostRequest) toPostUpdate() PostUpdate {
	return PostUpdate{
		Title:   r.Title,
		Content: r.Content,
	}
}

type ValidationResult struct {
	Valid   bool
	Reasons []string
}

func (r ValidationResult) Error() string {
	return strings.Join(r.Reasons, "; ")
}

func ValidateCreate(req CreatePostRequest) ValidationResult {
	return validateStruct(req)
}

func ValidateUpdate(req UpdatePostRequest) ValidationResult {
	return validateStruct(req)
}

func validateStruct(s any) ValidationResult {
	err := validate.Struct(s)
	if err == nil {
		return ValidationResult{Valid: true}
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return ValidationResult{Reasons: []string{err.Error()}}
	}

	reasons := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		reasons = append(reasons, reasonFor(fieldErr))
	}
	return ValidationResult{Reasons: reasons}
}

func reasonFor(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s should not be empty", fieldErr.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fieldErr.Field(), fieldErr.Param())
	default:
		return fmt.Sprintf("%s failed on '%s'", fieldErr.Field(), fieldErr.Tag())
	}
}

// ParsePostID parses the id path parameter.
func ParsePostID(idStr string) (int, error) {
	if idStr == "" {
		return 0, errors.New("id empty")
	}
	// Atoi takes a leading '+', path ids are plain digits with an optional '-'
	if strings.HasPrefix(idStr, "+") {
		return 0, errors.New("id NaN")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return 0, errors.New("id NaN")
	}
	return id, nil
}
