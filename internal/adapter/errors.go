package adapter

import "errors"

var (
	ErrNotFound            = errors.New("document not found")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrInvalidPath         = errors.New("invalid document path")
	ErrUnknownAdapterKind  = errors.New("unknown adapter kind")
)
