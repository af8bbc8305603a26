package store

import (
	"errors"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"

	"github.com/jacentio/hello/greeting"
)

// Classify returns the category of a PutItem failure. Modelled DynamoDB
// exceptions map to their error code; unmodelled codes, unparsable error
// bodies and errors that never produced a response are CategoryUnknown.
func Classify(err error) greeting.Category {
	if err == nil {
		return ""
	}

	var generic *smithy.GenericAPIError
	if errors.As(err, &generic) {
		return greeting.CategoryUnknown
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() != "" {
		return greeting.Category(apiErr.ErrorCode())
	}

	return greeting.CategoryUnknown
}

// statusCode extracts the HTTP status of a failed request, or 0 if the
// request never got a response.
func statusCode(err error) int {
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		return respErr.HTTPStatusCode()
	}
	return 0
}

// describe produces the caller-visible message for a store failure.
func describe(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		return apiErr.ErrorCode() + ": " + apiErr.ErrorMessage()
	}
	return err.Error()
}
