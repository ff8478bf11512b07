package errors

import "net/http"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes
const (
	CodeOK             ErrorCode = "OK"
	CodeUnknown        ErrorCode = "COMMON_000"
	CodeInternal       ErrorCode = "COMMON_001"
	CodeInvalidParam   ErrorCode = "COMMON_002"
	CodeNotFound       ErrorCode = "COMMON_003"
	CodeConflict       ErrorCode = "COMMON_004"
	CodeTimeout        ErrorCode = "COMMON_005"
	CodeSerialization  ErrorCode = "COMMON_006"
	CodeDatabaseError  ErrorCode = "COMMON_007"
	CodeCacheError     ErrorCode = "COMMON_008"
	CodeNotImplemented ErrorCode = "COMMON_009"
)

// Taxonomy module error codes
const (
	// CodeTaxonomyDuplicateIdentifier signals two reference rows sharing one
	// identifier; the table refuses to load in that state.
	CodeTaxonomyDuplicateIdentifier ErrorCode = "TAX_001"

	// CodeTaxonomyDuplicateFullname signals two reference rows sharing one
	// full name.
	CodeTaxonomyDuplicateFullname ErrorCode = "TAX_002"

	// CodeTaxonomyEmptyTable signals an attempt to build a resolver over an
	// empty reference table.
	CodeTaxonomyEmptyTable ErrorCode = "TAX_003"

	// CodeTaxonomyLoadFailed signals that the reference table could not be
	// read from its backing store.
	CodeTaxonomyLoadFailed ErrorCode = "TAX_004"
)

// Resolution module error codes
const (
	// CodeResolveEmptyCall signals a resolution call with zero inputs.
	CodeResolveEmptyCall ErrorCode = "RES_001"

	// CodeResolvePairMismatch signals paired genus/species columns of
	// different lengths.
	CodeResolvePairMismatch ErrorCode = "RES_002"
)

// Interpretation module error codes
const (
	CodeSIREmptyCall ErrorCode = "SIR_001"
)

// httpStatusByCode maps error codes to HTTP status codes for the API layer.
var httpStatusByCode = map[ErrorCode]int{
	CodeOK:             http.StatusOK,
	CodeInternal:       http.StatusInternalServerError,
	CodeInvalidParam:   http.StatusBadRequest,
	CodeNotFound:       http.StatusNotFound,
	CodeConflict:       http.StatusConflict,
	CodeTimeout:        http.StatusGatewayTimeout,
	CodeSerialization:  http.StatusBadRequest,
	CodeDatabaseError:  http.StatusInternalServerError,
	CodeCacheError:     http.StatusInternalServerError,
	CodeNotImplemented: http.StatusNotImplemented,

	CodeTaxonomyDuplicateIdentifier: http.StatusInternalServerError,
	CodeTaxonomyDuplicateFullname:   http.StatusInternalServerError,
	CodeTaxonomyEmptyTable:          http.StatusInternalServerError,
	CodeTaxonomyLoadFailed:          http.StatusInternalServerError,

	CodeResolveEmptyCall:    http.StatusBadRequest,
	CodeResolvePairMismatch: http.StatusBadRequest,

	CodeSIREmptyCall: http.StatusBadRequest,
}

// HTTPStatus returns the HTTP status code associated with c.
// Unknown codes map to 500.
func (c ErrorCode) HTTPStatus() int {
	if s, ok := httpStatusByCode[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}
