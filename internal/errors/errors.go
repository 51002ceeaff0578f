package errors

import (
	"encoding/json"
)

// EntryNotFoundErr signals that lookup succeeded but returned no entries
type EntryNotFoundErr struct {
	message string
}

func (e *EntryNotFoundErr) Error() string {
	return e.message
}

// MarshalJSON renders error as response body
func (e *EntryNotFoundErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Message string `json:"message"`
	}{Message: e.message})
}

// NewEntryNotFoundErr builds new EntryNotFoundErr
func NewEntryNotFoundErr(msg string) *EntryNotFoundErr {
	return &EntryNotFoundErr{message: msg}
}
