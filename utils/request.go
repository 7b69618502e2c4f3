package utils

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	json "github.com/goccy/go-json"
	"github.com/julienschmidt/httprouter"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

var validate = newValidator()

// newValidator reports field errors under their JSON names so callers see
// the field they actually sent.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into dst and validates it. The
// returned error message carries field-level detail for the caller.
func DecodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("invalid JSON body")
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%s: failed %q validation",
				verrs[0].Field(), verrs[0].Tag())
		}
		return err
	}
	return nil
}

// ParsePagination reads skip/limit query params. Limit defaults to 10 and
// is capped at 100 to keep scans bounded.
func ParsePagination(r *http.Request) (skip, limit int) {
	skip, err := strconv.Atoi(r.URL.Query().Get("skip"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err = strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}

// ParseIDParam reads a numeric path parameter.
func ParseIDParam(ps httprouter.Params, name string) (uint, bool) {
	id, err := strconv.ParseUint(ps.ByName(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// SplitCSV splits a comma-separated value list, trimming whitespace and
// dropping empty entries.
func SplitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
