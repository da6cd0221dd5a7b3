package service

import "errors"

var (
	ErrUnknownImage   = errors.New("unknown image id")
	ErrUnknownMessage = errors.New("unknown message id")
	ErrDuplicatePair  = errors.New("image and message are already bundled")
	ErrInvalidTag     = errors.New("value is not part of the tag vocabulary")
)
