package query

import (
	"fmt"
	"strings"
)

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.);
	// composite conditions hand out contiguous indexes to their children.
	SQL(paramIndex int) (string, map[string]interface{})
}

func paramName(index int) string {
	return fmt.Sprintf("p%d", index)
}

// eqCondition implements equality comparison (field = value).
type eqCondition struct {
	field string
	value interface{}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("vendor_id", "v-1") generates "vendor_id = @p0"
func Eq(field string, value interface{}) Condition {
	return &eqCondition{
		field: field,
		value: value,
	}
}

func (c *eqCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := paramName(paramIndex)
	return fmt.Sprintf("%s = @%s", c.field, name), map[string]interface{}{
		name: c.value,
	}
}

// likeCondition implements a case-insensitive substring match.
type likeCondition struct {
	field  string
	needle string
}

// Like creates a WHERE condition matching rows whose field contains the
// needle, ignoring case. The field argument may be any SQL expression,
// e.g. a column name or JSON_VALUE(...).
// Example: Like("title", "lamp") generates "LOWER(title) LIKE @p0"
// with parameter "%lamp%".
func Like(field, needle string) Condition {
	return &likeCondition{
		field:  field,
		needle: needle,
	}
}

func (c *likeCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := paramName(paramIndex)
	return fmt.Sprintf("LOWER(%s) LIKE @%s", c.field, name), map[string]interface{}{
		name: "%" + strings.ToLower(c.needle) + "%",
	}
}

// gteCondition implements numeric comparison (field >= value).
type gteCondition struct {
	field string
	value interface{}
}

// Gte creates a WHERE condition for "greater than or equal" comparison.
func Gte(field string, value interface{}) Condition {
	return &gteCondition{
		field: field,
		value: value,
	}
}

func (c *gteCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := paramName(paramIndex)
	return fmt.Sprintf("%s >= @%s", c.field, name), map[string]interface{}{
		name: c.value,
	}
}

// lteCondition implements numeric comparison (field <= value).
type lteCondition struct {
	field string
	value interface{}
}

// Lte creates a WHERE condition for "less than or equal" comparison.
func Lte(field string, value interface{}) Condition {
	return &lteCondition{
		field: field,
		value: value,
	}
}

func (c *lteCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	name := paramName(paramIndex)
	return fmt.Sprintf("%s <= @%s", c.field, name), map[string]interface{}{
		name: c.value,
	}
}

// inCondition implements set membership (field IN UNNEST(@p)).
type inCondition struct {
	field  string
	values []string
}

// In creates a WHERE condition for set membership over string values.
// An empty value set generates "FALSE" so the condition never matches.
func In(field string, values []string) Condition {
	return &inCondition{
		field:  field,
		values: values,
	}
}

func (c *inCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	if len(c.values) == 0 {
		return "FALSE", map[string]interface{}{}
	}
	name := paramName(paramIndex)
	return fmt.Sprintf("%s IN UNNEST(@%s)", c.field, name), map[string]interface{}{
		name: c.values,
	}
}

// compositeCondition joins child conditions with a boolean operator.
type compositeCondition struct {
	op       string
	children []Condition
}

// And combines conditions with AND logic, parenthesized as a unit.
func And(conditions ...Condition) Condition {
	return &compositeCondition{op: "AND", children: conditions}
}

// Or combines conditions with OR logic, parenthesized as a unit.
func Or(conditions ...Condition) Condition {
	return &compositeCondition{op: "OR", children: conditions}
}

func (c *compositeCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	params := make(map[string]interface{})
	if len(c.children) == 0 {
		return "TRUE", params
	}
	fragments := make([]string, 0, len(c.children))
	index := paramIndex
	for _, child := range c.children {
		fragment, childParams := child.SQL(index)
		fragments = append(fragments, fragment)
		for k, v := range childParams {
			params[k] = v
		}
		index += len(childParams)
	}
	if len(fragments) == 1 {
		return fragments[0], params
	}
	return "(" + strings.Join(fragments, " "+c.op+" ") + ")", params
}

// IsNull creates a WHERE condition for NULL checks.
// Example: IsNull("price_in_cents") generates "price_in_cents IS NULL"
func IsNull(field string) Condition {
	return &isNullCondition{field: field}
}

type isNullCondition struct {
	field string
}

func (c *isNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	return fmt.Sprintf("%s IS NULL", c.field), map[string]interface{}{}
}

// IsNotNull creates a WHERE condition for NOT NULL checks.
// Example: IsNotNull("price_in_cents") generates "price_in_cents IS NOT NULL"
func IsNotNull(field string) Condition {
	return &isNotNullCondition{field: field}
}

type isNotNullCondition struct {
	field string
}

func (c *isNotNullCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	return fmt.Sprintf("%s IS NOT NULL", c.field), map[string]interface{}{}
}
