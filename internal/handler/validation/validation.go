package validation

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"meeting-room-approval/internal/domain/meeting"
	"meeting-room-approval/internal/domain/user"
	"meeting-room-approval/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

var customTags = map[string]func(string) error{
	"hhmm": func(s string) error {
		_, err := meeting.ParseWallClock(s)
		return err
	},
	"isodate": func(s string) error {
		_, err := meeting.ParseCalendarDate(s)
		return err
	},
	"approvalaction": func(s string) error {
		_, err := meeting.ParseAction(s)
		return err
	},
	"role": func(s string) error {
		_, err := user.NewRole(s)
		return err
	},
}

// Register installs the custom binding tags on gin's validator. Safe to call
// more than once. A tag that fails to register panics, since requests would
// otherwise bind without that check.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Warn("custom binding tags not installed", "engine", fmt.Sprintf("%T", binding.Validator.Engine()))
			return
		}
		v.RegisterTagNameFunc(jsonName)
		if err := registerTags(v, customTags); err != nil {
			panic(err)
		}
	})
}

func registerTags(v *validator.Validate, tags map[string]func(string) error) error {
	for tag, parse := range tags {
		if err := v.RegisterValidation(tag, parses(parse)); err != nil {
			return errs.Wrapf(err, "register binding tag %q", tag)
		}
	}
	return nil
}

func parses(parse func(string) error) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return parse(s) == nil
	}
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Describe maps each failed field to the tag it broke, or nil when err is not
// a validation failure (malformed JSON, wrong types).
func Describe(err error) map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
