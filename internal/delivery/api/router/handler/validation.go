package handler

import (
	"strconv"

	"boothly/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and runs its validate tags.
// On failure the error response is already written and ok is false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "Request could not be decoded")
	}

	if err := c.Validate(req); err != nil {
		return false, response.ValidationError(c, err)
	}

	return true, nil
}

// missingIDs reports every element of a replacement list that has no id.
func missingIDs[T any](field string, items []T, id func(T) string) map[string]string {
	details := make(map[string]string)
	for i, item := range items {
		if id(item) == "" {
			details[field+"["+strconv.Itoa(i)+"].id"] = "required"
		}
	}
	if len(details) == 0 {
		return nil
	}

	return details
}
