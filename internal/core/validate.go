package core

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
	trans        ut.Translator
)

// validatorInstance builds the shared validator with English messages that
// name fields by their JSON tag.
func validatorInstance() (*validator.Validate, ut.Translator) {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}

			return name
		})

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		// the default gtfield message names the Go field; say what it means
		_ = v.RegisterTranslation("gtfield", trans,
			func(ut ut.Translator) error {
				return ut.Add("gtfield", "{0} must be after {1}", true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T("gtfield", fe.Field(), strings.ToLower(fe.Param()))
				return t
			})

		validate = v
	})

	return validate, trans
}

// validateStruct checks s against its validate tags and converts failures
// into a *ValidationError for entity.
func validateStruct(entity string, s any) error {
	v, tr := validatorInstance()

	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		if _, seen := fields[fe.Field()]; !seen {
			fields[fe.Field()] = fe.Translate(tr)
		}
	}

	return &ValidationError{Entity: entity, Fields: fields}
}
