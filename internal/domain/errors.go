package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies operation failures for transport mapping
type ErrorCode string

// Error codes surfaced by room operations
const (
	ErrCodeInvalidParameter ErrorCode = "invalid_parameter"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodePermissionDenied ErrorCode = "permission_denied"
)

// Error is a caller fault that the API reports verbatim
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	RoomID  string    `json:"room_id,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// ErrInvalidGender rejects gender preferences outside Male/Female/Any
func ErrInvalidGender() *Error {
	return &Error{
		Code:    ErrCodeInvalidParameter,
		Message: `gender_pref must be "Male", "Female", or "Any"`,
	}
}

// ErrRoomNotFound reports an unknown room ID, echoing it as supplied
func ErrRoomNotFound(roomID string) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("room with ID %s not found", roomID),
		RoomID:  roomID,
	}
}

// ErrWrongManagementKey reports a key that does not match the listing.
// The message never hints how close the supplied key was
func ErrWrongManagementKey(roomID string) *Error {
	return &Error{
		Code:    ErrCodePermissionDenied,
		Message: fmt.Sprintf("the management key is incorrect for room %s", roomID),
		RoomID:  roomID,
	}
}

// AsError unwraps err into a *Error when it is one
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
