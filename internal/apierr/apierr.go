package apierr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Kind is the closed error taxonomy decided once at the gateway boundary.
type Kind int

const (
	// KindUnknown marks a call that produced neither a recognizable error
	// nor a payload. Reducers must treat it as a terminal failure, not crash.
	KindUnknown Kind = iota
	// KindValidation marks server-reported unprocessable fields.
	KindValidation
	// KindTransport marks a network or HTTP-level failure.
	KindTransport
)

// Op tags an error with its originating operation.
type Op string

const (
	OpRegisterUser Op = "registerUser"
	OpLoginUser    Op = "logUser"
	OpFetchUser    Op = "getUser"
	OpEditProfile  Op = "editProfileUser"

	OpFetchArticles     Op = "fetchArticles"
	OpFetchArticle      Op = "fetchArticle"
	OpCreateArticle     Op = "createArticle"
	OpEditArticle       Op = "editArticle"
	OpDeleteArticle     Op = "deleteArticle"
	OpFavoriteArticle   Op = "favoriteArticle"
	OpUnfavoriteArticle Op = "unfavoriteArticle"
)

// Error is the uniform operation error surfaced to state controllers.
// Fields is populated only for validation errors; Status only when an HTTP
// status was actually received.
type Error struct {
	Op      Op
	Kind    Kind
	Message string
	Fields  []string
	Status  int
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: unknown failure", e.Op)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Validation builds the normalized unprocessable-entity error. Keys are
// sorted before joining so the message is deterministic regardless of map
// iteration order.
func Validation(op Op, status int, fields []string) *Error {
	keys := make([]string, len(fields))
	copy(keys, fields)
	sort.Strings(keys)
	return &Error{
		Op:      op,
		Kind:    KindValidation,
		Message: strings.Join(keys, " and ") + " is already in use.",
		Fields:  keys,
		Status:  status,
	}
}

// Transport wraps a network or HTTP failure description.
func Transport(op Op, status int, message string) *Error {
	return &Error{Op: op, Kind: KindTransport, Message: message, Status: status}
}

// Unknown marks the silent-failure defect class.
func Unknown(op Op) *Error {
	return &Error{Op: op, Kind: KindUnknown}
}

// From extracts the typed view of an error returned by a gateway call.
// Anything that is not already an *Error collapses to the unknown kind.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: KindUnknown, Message: err.Error()}
}

// Unauthorized reports whether the error is a 401-class transport failure,
// the signal that a restored session token is stale.
func (e *Error) Unauthorized() bool {
	return e != nil && e.Kind == KindTransport && e.Status == 401
}
