// Package bind decodes, validates, and injects JSON request payloads.
package bind

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "leadrouter/internal/platform/errors"
	"leadrouter/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ctxKey keys the parsed payload stashed on the request context
type ctxKey uint8

const bindJSONPayloadKey ctxKey = iota

type (
	// FieldLevel aliases validator.FieldLevel
	FieldLevel = validator.FieldLevel
	// UT aliases ut.Translator
	UT = ut.Translator
	// FieldError aliases validator.FieldError
	FieldError = validator.FieldError
)

// ValidatorSvc holds the process validator and its translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc

	// seam for trailing-data tests
	jsonMore = func(dec *json.Decoder) bool { return dec.More() }
)

// jsonFieldName reports the name validation errors should use for a
// struct field: the json tag when present, the Go name otherwise
func jsonFieldName(fld reflect.StructField) string {
	tag := fld.Tag.Get("json")
	if tag == "-" || tag == "" {
		return fld.Name
	}
	if idx := strings.Index(tag, ","); idx >= 0 {
		tag = tag[:idx]
	}
	return tag
}

// Init builds the validator once: english messages, json tag field names,
// and the shorter min/max translations
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		locale := en.New()
		trans, _ := ut.New(locale, locale).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// error messages talk about json field names, not Go field names
		v.RegisterTagNameFunc(jsonFieldName)

		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerShortBound(v, trans, "min", "{0} must be at least {1}")
		registerShortBound(v, trans, "max", "{0} must be at most {1}")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get hands back the process-wide validator, building it lazily
func Get() *ValidatorSvc {
	if vSvc == nil {
		return Init()
	}
	return vSvc
}

// RegisterValidation adds a custom validate tag; later registrations win
func RegisterValidation(tag string, fn validator.Func) error {
	return Get().Validator.RegisterValidation(tag, fn)
}

// JSONOptions controls parsing behavior. The zero value is not the
// default; see defaultJSONOptions
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
	AllowEmptyBody  bool
}

// 1MB cap, unknown fields rejected, body required
func defaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// ParseJSON decodes the request body into T, validates it, and maps
// failures onto project error codes
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	opt := defaultJSONOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.Get().Error().Err(err).Msg("failed to close request body")
		}
	}()

	reader, emptyOK, err := bodyReader(r, opt)
	if err != nil {
		return zero, err
	}
	if emptyOK {
		return zero, nil
	}
	if opt.MaxBytes > 0 {
		reader = io.LimitReader(reader, opt.MaxBytes)
	}

	dec := json.NewDecoder(reader)
	if opt.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var out T
	if err := dec.Decode(&out); err != nil {
		if opt.AllowEmptyBody && errors.Is(err, io.EOF) {
			return out, nil
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Get().Validator.Struct(out); err != nil {
		if inv, ok := err.(*validator.InvalidValidationError); ok {
			logger.Get().Error().Err(inv).Msg("validator internal error")
			return zero, perr.JSONErrf("validation error")
		}
		_, msg := ValidationFieldAndMessage(err)
		return zero, perr.Newf(perr.ErrorCodeValidation, "%s", msg)
	}

	return out, nil
}

// JSON parses the body into T and stashes a pointer on the request
// context for downstream handlers
func JSON[T any](opts ...JSONOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			val, err := ParseJSON[T](r, opts...)
			if err != nil {
				// transport-agnostic middleware, error rendering stays with the caller
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			ctx := context.WithValue(r.Context(), bindJSONPayloadKey, &val)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext pulls the payload the JSON middleware bound, nil when absent
func FromContext[T any](r *http.Request) *T {
	v, _ := r.Context().Value(bindJSONPayloadKey).(*T)
	return v
}

// bodyReader prepares the request body for decoding. When the body must
// not be empty it peeks one byte, so a missing body can be told apart
// from invalid JSON. emptyOK reports that an absent body is acceptable
// for the method and the caller should bind the zero value
func bodyReader(r *http.Request, opt JSONOptions) (reader io.Reader, emptyOK bool, err error) {
	if opt.AllowEmptyBody {
		return r.Body, false, nil
	}

	peek := make([]byte, 1)
	n, _ := r.Body.Read(peek)
	if n == 0 {
		// safe/idempotent methods may legitimately carry no body
		switch r.Method {
		case http.MethodGet, http.MethodDelete, http.MethodHead, http.MethodOptions:
			return nil, true, nil
		}
		return nil, false, perr.JSONErrf("empty body")
	}
	return io.MultiReader(bytes.NewReader(peek[:n]), r.Body), false, nil
}

// ValidationFieldAndMessage returns the first failing field and its
// translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		return "", inv.Error()
	}
	if ferrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ferrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

// As aliases errors.As so handlers need one fewer import
func As(err error, target any) bool { return errors.As(err, target) }

// registerShortBound replaces the stock min/max messages with terser ones
func registerShortBound(v *validator.Validate, trans ut.Translator, tag, msg string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, msg, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			out, _ := t.T(tag, fe.Field(), fe.Param())
			return out
		},
	)
}
