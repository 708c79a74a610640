package handler

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/bharaths07/sportsv1.1-sub000/internal/service"
)

var tagNamesOnce sync.Once

// useJSONFieldNames makes validation errors report json/form names.
func useJSONFieldNames() {
	tagNamesOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "form"} {
				name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
	})
}

// bindError turns a binding failure into the aggregated validation error.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return service.NewInvalidInputError([]service.FieldError{{Field: "body", Message: "malformed request"}})
	}
	fields := make([]service.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, service.FieldError{Field: fieldPath(fe), Message: validationMessage(fe)})
	}
	return service.NewInvalidInputError(fields)
}

// fieldPath drops the root struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must be set"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", "|")
	case "min", "gte":
		return "must be >= " + fe.Param()
	case "max", "lte":
		return "must be <= " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

// queryInt reads an integer query parameter; malformed values fall back to def.
func queryInt(c interface{ Query(string) string }, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	return v
}
