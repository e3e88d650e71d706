package validator

// Validator checks struct values against their validation tags.
type Validator interface {
	Validate(data any) error
}
