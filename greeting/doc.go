// Package greeting defines the hello event, the greeting it produces, and the
// single error type every stage of the pipeline reports failures with.
//
// # Events
//
// An [Event] arrives as camelCase JSON:
//
//	{"email": "a@b.com", "firstName": "A", "lastName": "B"}
//
// [Validate] checks the fields in a fixed order (email, first name, last name)
// and reports only the first violation.
//
// # Errors
//
// Failures are always an [*Error]. Validation failures carry a [Reason] and
// can be matched with the sentinels:
//
//   - [ErrEmptyEmail]
//   - [ErrEmptyFirstName]
//   - [ErrEmptyLastName]
//
// Store failures carry a [Category] taken from the DynamoDB error code, or
// [CategoryUnknown] when the response could not be parsed. [Error.Type] gives
// the tag reported to the Lambda runtime.
package greeting
