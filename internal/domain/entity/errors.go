package entity

import "errors"

var (
	// ErrCapacityExceeded is returned when a tab is created at the session cap.
	ErrCapacityExceeded = errors.New("tab capacity exceeded")
	// ErrIndexOutOfRange is returned for tab operations on an invalid index.
	ErrIndexOutOfRange = errors.New("tab index out of range")
	// ErrLastTabProtected is returned when closing the only remaining tab.
	ErrLastTabProtected = errors.New("cannot close the last tab")
	// ErrDuplicateBookmark is returned when bookmarking an already bookmarked URL.
	ErrDuplicateBookmark = errors.New("url is already bookmarked")
	// ErrBookmarkNotFound is returned when a bookmark id is unknown.
	ErrBookmarkNotFound = errors.New("bookmark not found")
	// ErrConfigUnavailable marks a search or homepage provider failure.
	ErrConfigUnavailable = errors.New("search configuration unavailable")
	// ErrMalformedRecord marks a persisted tab record that could not be decoded.
	ErrMalformedRecord = errors.New("malformed persisted record")
)
