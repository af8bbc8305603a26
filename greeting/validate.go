package greeting

// Validate checks that all required fields are present. Checks run in order
// email, first name, last name and stop at the first empty field.
func Validate(e Event) (Event, error) {
	switch {
	case e.Email == "":
		return Event{}, validationError(ErrEmptyEmail)
	case e.FirstName == "":
		return Event{}, validationError(ErrEmptyFirstName)
	case e.LastName == "":
		return Event{}, validationError(ErrEmptyLastName)
	}
	return e, nil
}

// validationError copies a sentinel so callers cannot modify the shared one.
func validationError(sentinel *Error) *Error {
	e := *sentinel
	return &e
}
