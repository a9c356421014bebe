package validation

import (
	"math"
	"reflect"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	validate = newValidator()

	integerString = regexp.MustCompile(`^[-+]?[0-9]+$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("notempty", notEmpty)
	v.RegisterValidation("string", isString)
	v.RegisterValidation("mongoid", isMongoID)
	v.RegisterValidation("nonnegint", isNonNegativeInt)
	return v
}

// notEmpty rejects only the empty string; numbers, booleans and objects
// count as present.
func notEmpty(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() == reflect.String {
		return f.Len() > 0
	}
	return true
}

func isString(fl validator.FieldLevel) bool {
	return fl.Field().Kind() == reflect.String
}

func isMongoID(fl validator.FieldLevel) bool {
	f := fl.Field()
	return f.Kind() == reflect.String && primitive.IsValidObjectID(f.String())
}

func isNonNegativeInt(fl validator.FieldLevel) bool {
	f := fl.Field()
	switch f.Kind() {
	case reflect.Float32, reflect.Float64:
		n := f.Float()
		return n >= 0 && n == math.Trunc(n) && n < math.MaxInt64
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return f.Int() >= 0
	case reflect.String:
		s := f.String()
		return integerString.MatchString(s) && s[0] != '-'
	}
	return false
}
