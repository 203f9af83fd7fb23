package todo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for Draft checks.
var validate = validator.New()

// Validate checks a draft before it is handed to the store. The store itself
// accepts any draft; only the form boundary calls this.
func (d Draft) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, draftFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func draftFieldError(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "name is required"
	case "DueDate":
		return "due date must look like YYYY-MM-DD"
	case "DueTime":
		return "due time must look like HH:MM"
	}
	return fmt.Sprintf("%s is invalid", strings.ToLower(fe.Field()))
}
