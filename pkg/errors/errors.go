package errors

import (
	"errors"
	"fmt"
)

// ResourceNotFoundError is returned when a stored key, collection or game does not exist.
type ResourceNotFoundError struct {
	Resource string
	ID       string
}

func (e *ResourceNotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func NewResourceNotFoundError(resource, id string) *ResourceNotFoundError {
	return &ResourceNotFoundError{Resource: resource, ID: id}
}

func NewKeyNotFoundError(key string) *ResourceNotFoundError {
	return NewResourceNotFoundError("key", key)
}

func NewCollectionNotFoundError(name string) *ResourceNotFoundError {
	return NewResourceNotFoundError("collection", name)
}

func NewGameNotFoundError(appID int) *ResourceNotFoundError {
	return NewResourceNotFoundError("game", fmt.Sprintf("%d", appID))
}

func IsResourceNotFoundError(err error) bool {
	var e *ResourceNotFoundError
	return errors.As(err, &e)
}

// NetworkFailureError means an upstream call did not complete successfully.
type NetworkFailureError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *NetworkFailureError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s failed: %v", e.Operation, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s failed with status %d", e.Operation, e.StatusCode)
	default:
		return fmt.Sprintf("%s failed", e.Operation)
	}
}

func (e *NetworkFailureError) Unwrap() error { return e.Err }

func NewNetworkFailureError(operation string, err error) *NetworkFailureError {
	return &NetworkFailureError{Operation: operation, Err: err}
}

func NewNetworkStatusError(operation string, statusCode int) *NetworkFailureError {
	return &NetworkFailureError{Operation: operation, StatusCode: statusCode}
}

func IsNetworkFailureError(err error) bool {
	var e *NetworkFailureError
	return errors.As(err, &e)
}

// MalformedResponseError means an upstream response did not have the expected shape.
type MalformedResponseError struct {
	Operation string
	Err       error
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed %s response: %v", e.Operation, e.Err)
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

func NewMalformedResponseError(operation string, err error) *MalformedResponseError {
	return &MalformedResponseError{Operation: operation, Err: err}
}

func IsMalformedResponseError(err error) bool {
	var e *MalformedResponseError
	return errors.As(err, &e)
}

// OutOfRangeError is returned for an invalid collection entry index.
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

func NewOutOfRangeError(index, length int) *OutOfRangeError {
	return &OutOfRangeError{Index: index, Len: length}
}

func IsOutOfRangeError(err error) bool {
	var e *OutOfRangeError
	return errors.As(err, &e)
}

// CacheCorruptError is returned when a stored value cannot be decoded.
// Callers treat it as a cache miss.
type CacheCorruptError struct {
	Key string
	Err error
}

func (e *CacheCorruptError) Error() string {
	return fmt.Sprintf("cached value %q is corrupt: %v", e.Key, e.Err)
}

func (e *CacheCorruptError) Unwrap() error { return e.Err }

func NewCacheCorruptError(key string, err error) *CacheCorruptError {
	return &CacheCorruptError{Key: key, Err: err}
}

func IsCacheCorruptError(err error) bool {
	var e *CacheCorruptError
	return errors.As(err, &e)
}

type InvalidArgumentError struct {
	Msg string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.Msg)
}

func NewInvalidArgumentError(format string, args ...any) *InvalidArgumentError {
	return &InvalidArgumentError{Msg: fmt.Sprintf(format, args...)}
}

func IsInvalidArgumentError(err error) bool {
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

type UnauthorizedError struct {
	Reason string
}

func (e *UnauthorizedError) Error() string {
	if e.Reason == "" {
		return "unauthorized"
	}
	return fmt.Sprintf("unauthorized: %s", e.Reason)
}

func NewUnauthorizedError(reason string) *UnauthorizedError {
	return &UnauthorizedError{Reason: reason}
}

func IsUnauthorizedError(err error) bool {
	var e *UnauthorizedError
	return errors.As(err, &e)
}

// CredentialsMissingError is returned when no API key / Steam id pair is configured.
type CredentialsMissingError struct{}

func (e *CredentialsMissingError) Error() string {
	return "API key or Steam ID not configured"
}

func NewCredentialsMissingError() *CredentialsMissingError {
	return &CredentialsMissingError{}
}

func IsCredentialsMissingError(err error) bool {
	var e *CredentialsMissingError
	return errors.As(err, &e)
}
