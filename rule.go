package echo

import "github.com/go-playground/validator/v10"

// ruleValidate is the shared validator instance behind Rule. Tag parses
// are cached, so every property built from the same rule reuses one
// compiled form
var ruleValidate = validator.New()

// Rule builds a Validator from a validator/v10 tag expression evaluated
// against each incoming value, for example Rule[int]("gte=0,lte=100") or
// Rule[string]("oneof=low medium high"). The previous value is never
// consulted. The tag is evaluated once against the zero value up front,
// so a rule naming an undefined validation panics here rather than at the
// first write
func Rule[T any](tag string) Validator[T] {
	var zero T
	_ = ruleValidate.Var(zero, tag)

	return func(next, _ T) bool {
		return ruleValidate.Var(next, tag) == nil
	}
}
