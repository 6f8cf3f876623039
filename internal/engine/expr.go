package engine

import (
	"github.com/Knetic/govaluate"

	"staffdeck/internal/model"
)

// RowExpr is a compiled boolean expression over a row's fields, e.g.
// `age >= 30 && country == 'France'`. Field names match column ids.
type RowExpr struct {
	expr *govaluate.EvaluableExpression
}

func CompileRowExpr(src string) (*RowExpr, error) {
	ex, err := govaluate.NewEvaluableExpression(src)
	if err != nil {
		return nil, err
	}
	return &RowExpr{expr: ex}, nil
}

// Match evaluates the expression for one row. Evaluation errors (unknown
// field, type mismatch) exclude the row rather than failing the pipeline.
func (e *RowExpr) Match(u model.DerivedUser) bool {
	params := map[string]any{
		"id":        u.ID,
		"firstName": u.FirstName,
		"lastName":  u.LastName,
		"gender":    string(u.Gender),
		"birthDate": model.FormatBirthDate(u.BirthDate),
		"age":       float64(u.Age),
		"jobTitle":  u.JobTitle,
		"phone":     u.Phone,
		"email":     u.Email,
		"address":   u.Address,
		"city":      u.City,
		"country":   u.Country,
	}
	result, err := e.expr.Evaluate(params)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}
