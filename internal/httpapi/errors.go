package httpapi

import "net/http"

// apiError is a collaborator-level error carrying the HTTP status it
// should map to, mirroring the original service's typed Error enum
// (InvalidRequest/SymbolNotFound/TooManyValues/Internal) rather than
// recovering a status from an error string.
type apiError struct {
	status int
	msg    string
}

func (e *apiError) Error() string { return e.msg }

func errInvalidRequest(msg string) *apiError { return &apiError{status: http.StatusBadRequest, msg: msg} }
func errTooManyValues() *apiError {
	return &apiError{status: http.StatusBadRequest, msg: "too many values in batch"}
}
func errSymbolNotFound(symbol string) *apiError {
	return &apiError{status: http.StatusNotFound, msg: "symbol " + symbol + " not found or insufficient data"}
}
