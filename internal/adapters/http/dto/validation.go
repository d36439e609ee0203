package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/articles-service/internal/domain"
)

// Field messages produced while decoding a request.
const (
	MsgNotANumber  = "Enter a number."
	MsgWrongType   = "Incorrect type."
	MsgDateFormat  = "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	msgInvalidBody = "request body is not valid JSON"
)

var (
	// ErrValidation wraps validator failures on query structs.
	ErrValidation = errors.New("validation failed")

	// ErrBinding wraps a body or query string that could not be decoded.
	ErrBinding = errors.New("binding failed")
)

// queryValidator reports fields under their wire names: the json tag, or
// the form tag for query structs.
var queryValidator = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(wireName)

	return v
}()

func wireName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		switch name {
		case "-":
			return ""
		case "":
			continue
		default:
			return name
		}
	}

	return ""
}

// BindJSON decodes the request body into v. A JSON value of the wrong type
// for a known field is reported against that field as a domain validation
// error. Anything else (syntax, empty body, oversize) wraps ErrBinding.
func BindJSON(c *gin.Context, v any) error {
	err := c.ShouldBindJSON(v)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		top, _, _ := strings.Cut(typeErr.Field, ".")
		return domain.NewValidationError(top, MsgWrongType)
	}

	return fmt.Errorf("%w: %s", ErrBinding, msgInvalidBody)
}

// BindQueryAndValidate decodes the query string into v and runs its
// validate tags. Non-numeric limit or offset is a binding error; a negative
// one is a validation error.
func BindQueryAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindQuery(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	if err := queryValidator.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

var tagMessages = map[string]string{
	"required": domain.MsgRequired,
	"gte":      "Ensure this value is greater than or equal to %s.",
	"lte":      "Ensure this value is less than or equal to %s.",
	"oneof":    "Select one of: %s.",
}

// ValidationErrors returns one message per failing field of a validator
// error, keyed by wire name. Other errors give an empty map.
func ValidationErrors(err error) map[string]string {
	out := map[string]string{}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return out
	}

	for _, fe := range fieldErrs {
		msg, ok := tagMessages[fe.Tag()]
		switch {
		case !ok:
			msg = "failed validation: " + fe.Tag()
		case strings.Contains(msg, "%s"):
			msg = fmt.Sprintf(msg, fe.Param())
		}

		out[fe.Field()] = msg
	}

	return out
}

// MergeFields copies every entry of src into dst that dst does not already
// hold, so decoding messages win over later checks on the same field.
func MergeFields(dst, src map[string]string) map[string]string {
	if dst == nil {
		dst = make(map[string]string, len(src))
	}

	for k, v := range src {
		if _, ok := dst[k]; !ok {
			dst[k] = v
		}
	}

	return dst
}
