// Package validator checks form input with small declarative rules.
//
// A Rule pairs a check with the ValidationError it reports. Apply runs the
// rules in order and returns every failure as ValidationErrors, which keeps
// that order so a form can focus the first offending field:
//
//	err := validator.Apply(
//	    validator.RequiredString("name", name).WithMessage("Nome é obrigatório."),
//	    validator.OptionalPattern("qty", qty, strictQty),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    first, _ := verrs.First()
//	}
package validator
