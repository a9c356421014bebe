package repository

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"warehouse_api/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fieldType int

const (
	stringField fieldType = iota
	numberField
	integerField
	objectIDField
)

func (t fieldType) String() string {
	switch t {
	case numberField:
		return "number"
	case integerField:
		return "integer"
	case objectIDField:
		return "ObjectId"
	default:
		return "string"
	}
}

type field struct {
	name     string
	typ      fieldType
	required bool
	def      any
}

// schema is the store-level shape of a collection's documents. Fields not
// listed are dropped before anything reaches the driver.
type schema struct {
	resource string
	fields   []field
}

var categorySchema = schema{
	resource: "Category",
	fields: []field{
		{name: "name", typ: stringField, required: true},
		{name: "description", typ: stringField},
	},
}

var productSchema = schema{
	resource: "Product",
	fields: []field{
		{name: "name", typ: stringField, required: true},
		{name: "price", typ: numberField, required: true},
		{name: "category", typ: objectIDField, required: true},
		{name: "stock", typ: integerField, def: int64(0)},
	},
}

// forCreate casts a full document, applying defaults and required checks.
func (s schema) forCreate(fields map[string]any) (bson.M, error) {
	doc := bson.M{}
	var violations []domain.Violation

	for _, f := range s.fields {
		raw, present := fields[f.name]
		if !present || isBlank(raw) {
			if f.required {
				violations = append(violations, requiredViolation(f))
			} else if f.def != nil {
				doc[f.name] = f.def
			}
			continue
		}
		v, err := f.cast(raw)
		if err != nil {
			violations = append(violations, domain.Violation{Field: f.name, Message: err.Error(), Value: raw})
			continue
		}
		doc[f.name] = v
	}

	if len(violations) > 0 {
		return nil, s.validationError(violations)
	}
	return doc, nil
}

// forUpdate casts only the fields present in the payload. Null clears an
// optional field.
func (s schema) forUpdate(fields map[string]any) (set bson.M, unset bson.M, err error) {
	set, unset = bson.M{}, bson.M{}
	var violations []domain.Violation

	for _, f := range s.fields {
		raw, present := fields[f.name]
		if !present {
			continue
		}
		if isBlank(raw) {
			if f.required {
				violations = append(violations, requiredViolation(f))
			} else {
				unset[f.name] = ""
			}
			continue
		}
		v, err := f.cast(raw)
		if err != nil {
			violations = append(violations, domain.Violation{Field: f.name, Message: err.Error(), Value: raw})
			continue
		}
		set[f.name] = v
	}

	if len(violations) > 0 {
		return nil, nil, s.validationError(violations)
	}
	return set, unset, nil
}

func (s schema) validationError(violations []domain.Violation) error {
	msgs := make([]string, 0, len(violations))
	for _, v := range violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return domain.NewValidationError(
		fmt.Sprintf("%s validation failed: %s", s.resource, strings.Join(msgs, ", ")),
		violations...,
	)
}

func requiredViolation(f field) domain.Violation {
	return domain.Violation{Field: f.name, Message: fmt.Sprintf("Path `%s` is required.", f.name)}
}

func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}

func (f field) cast(v any) (any, error) {
	switch f.typ {
	case stringField:
		switch t := v.(type) {
		case string:
			return t, nil
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64), nil
		case bool:
			return strconv.FormatBool(t), nil
		}
	case numberField:
		switch t := v.(type) {
		case float64:
			return t, nil
		case int:
			return float64(t), nil
		case string:
			if n, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				return n, nil
			}
		}
	case integerField:
		switch t := v.(type) {
		case float64:
			// float64 cannot hold MaxInt64; 2^63 is the first value out of range.
			if t == math.Trunc(t) && t >= math.MinInt64 && t < 1<<63 {
				return int64(t), nil
			}
		case int:
			return int64(t), nil
		case string:
			if n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64); err == nil {
				return n, nil
			}
		}
	case objectIDField:
		switch t := v.(type) {
		case string:
			if oid, err := primitive.ObjectIDFromHex(t); err == nil {
				return oid, nil
			}
		case primitive.ObjectID:
			return t, nil
		}
	}
	return nil, fmt.Errorf("Cast to %s failed for value %q", f.typ, fmt.Sprint(v))
}
