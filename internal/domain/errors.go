package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotAllowed          = errors.New("identity not on the admin allow-list")
	ErrUnknownCollection   = errors.New("unknown content collection")
	ErrStoreNotConfigured  = errors.New("content store is not configured")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
	ErrNoUpdatableFields   = errors.New("no updatable fields in request")
	ErrIdentityUnverified  = errors.New("identity email not verified by provider")
	ErrIDTokenInvalid      = errors.New("identity token is invalid or expired")
)
