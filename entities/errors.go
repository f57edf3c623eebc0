package entities

import "errors"

var (
	ErrCropNotFound  = errors.New("crop not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrDomainBlocked = errors.New("domain not allowed")
	ErrUpstream      = errors.New("upstream failure")
)
