package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode - читает JSON тело и проверяет теги validate
func Decode[T any](body io.Reader) (T, error) {
	var payload T
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, fmt.Errorf("invalid request body: %w", err)
	}

	if err := validate.Struct(payload); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			return payload, ValidationError(vErrs)
		}
		return payload, err
	}
	return payload, nil
}

// ValidationError - ошибки валидации одной строкой
func ValidationError(errs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is required", err.Field()))
		case "gt", "min":
			msgs = append(msgs, fmt.Sprintf("field %s is too small", err.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is invalid", err.Field()))
		}
	}
	return errors.New(strings.Join(msgs, ", "))
}
