package greeting

import "fmt"

// Kind discriminates the two families of pipeline failure.
type Kind int

const (
	// KindValidation is caused by caller input and is never retried.
	KindValidation Kind = iota + 1

	// KindStore wraps a failed write to the record store.
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindStore:
		return "store"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Reason identifies which required field was missing.
type Reason string

const (
	EmptyEmail     Reason = "EmptyEmail"
	EmptyFirstName Reason = "EmptyFirstName"
	EmptyLastName  Reason = "EmptyLastName"
)

// Category is the store's own name for a failure, usually the DynamoDB
// error code.
type Category string

const (
	// CategoryUnknown is used when the store returned an unparsed response or
	// the request never reached it.
	CategoryUnknown Category = "Unknown"

	CategoryThroughputExceeded  Category = "ProvisionedThroughputExceededException"
	CategoryConditionalCheck    Category = "ConditionalCheckFailedException"
	CategoryResourceNotFound    Category = "ResourceNotFoundException"
	CategoryRequestLimit        Category = "RequestLimitExceeded"
	CategoryItemCollectionLimit Category = "ItemCollectionSizeLimitExceededException"
	CategoryTransactionConflict Category = "TransactionConflictException"
	CategoryInternalServer      Category = "InternalServerError"
	CategoryThrottling          Category = "ThrottlingException"
)

// Retryable reports whether a later attempt at the same write could succeed.
// The handler does not retry; this is surfaced in logs only.
func (c Category) Retryable() bool {
	switch c {
	case CategoryThroughputExceeded, CategoryRequestLimit, CategoryTransactionConflict,
		CategoryInternalServer, CategoryThrottling:
		return true
	}
	return false
}

// Lambda error type tags.
const (
	TypeValidation = "ValidationError"
	TypeDatabase   = "DatabaseError"
)

// Error is the only error type returned by the pipeline.
type Error struct {
	Kind Kind

	// Reason is set for KindValidation.
	Reason Reason

	// Category is set for KindStore.
	Category Category

	Message string
}

var (
	// ErrEmptyEmail is returned when the event has no email.
	ErrEmptyEmail = &Error{Kind: KindValidation, Reason: EmptyEmail, Message: "email is empty"}

	// ErrEmptyFirstName is returned when the event has no first name.
	ErrEmptyFirstName = &Error{Kind: KindValidation, Reason: EmptyFirstName, Message: "first name is empty"}

	// ErrEmptyLastName is returned when the event has no last name.
	ErrEmptyLastName = &Error{Kind: KindValidation, Reason: EmptyLastName, Message: "last name is empty"}
)

// NewStoreError builds a store failure. An empty category becomes
// CategoryUnknown.
func NewStoreError(category Category, message string) *Error {
	if category == "" {
		category = CategoryUnknown
	}
	return &Error{Kind: KindStore, Category: category, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// Type returns the tag the Lambda runtime reports as errorType.
func (e *Error) Type() string {
	if e.Kind == KindStore {
		return TypeDatabase
	}
	return TypeValidation
}

// Is matches errors of the same kind. Empty Reason or Category on the target
// act as wildcards, so errors.Is(err, &Error{Kind: KindStore}) matches any
// store failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	if t.Reason != "" && t.Reason != e.Reason {
		return false
	}
	if t.Category != "" && t.Category != e.Category {
		return false
	}
	return true
}
