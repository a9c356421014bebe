package validation

import "warehouse_api/internal/domain"

type Check struct {
	Tag     string
	Message string
}

// Rule lists the checks for one payload field. Optional fields skip their
// checks only when absent; an explicit null still fails them.
type Rule struct {
	Field    string
	Optional bool
	Checks   []Check
}

type RuleSet []Rule

// Validate runs every check of every rule and returns all failures.
func (rs RuleSet) Validate(payload map[string]any) []domain.Violation {
	var violations []domain.Violation
	for _, rule := range rs {
		value, present := payload[rule.Field]
		if rule.Optional && !present {
			continue
		}
		for _, check := range rule.Checks {
			if value != nil && validate.Var(value, check.Tag) == nil {
				continue
			}
			violations = append(violations, domain.Violation{
				Field:   rule.Field,
				Message: check.Message,
				Value:   value,
			})
		}
	}
	return violations
}

var ProductRules = RuleSet{
	{
		Field: "name",
		Checks: []Check{
			{Tag: "notempty", Message: "Name is required"},
			{Tag: "string", Message: "Name must be a string"},
		},
	},
	{
		Field: "price",
		Checks: []Check{
			{Tag: "notempty", Message: "Price is required"},
			{Tag: "numeric", Message: "Price must be a number"},
		},
	},
	{
		Field:    "category",
		Optional: true,
		Checks: []Check{
			{Tag: "mongoid", Message: "Category must be a valid MongoDB ObjectId"},
		},
	},
	{
		Field:    "stock",
		Optional: true,
		Checks: []Check{
			{Tag: "nonnegint", Message: "Stock must be a non-negative integer"},
		},
	},
}

var CategoryRules = RuleSet{
	{
		Field: "name",
		Checks: []Check{
			{Tag: "notempty", Message: "Name is required"},
			{Tag: "string", Message: "Name must be a string"},
		},
	},
	{
		Field:    "description",
		Optional: true,
		Checks: []Check{
			{Tag: "string", Message: "Description must be a string"},
		},
	},
}
