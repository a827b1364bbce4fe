package errors

import "errors"

var (
	ErrVideoNotFound            = errors.New("video record not found")
	ErrCreatorNotFound          = errors.New("creator not found")
	ErrInvalidVideoInput        = errors.New("invalid video input")
	ErrInvalidCreatorInput      = errors.New("invalid creator input")
	ErrInvalidVideoURL          = errors.New("invalid video url")
	ErrUnsupportedPlatform      = errors.New("unsupported video platform")
	ErrDuplicateVideo           = errors.New("video already submitted")
	ErrAlreadyPaid              = errors.New("video already marked as paid")
	ErrAlreadyRejected          = errors.New("video already rejected")
	ErrRejectionReasonRequired  = errors.New("rejection reason is required")
	ErrUnknownRank              = errors.New("unknown rank")
	ErrInvalidListFilter        = errors.New("invalid list filter")
	ErrIdempotencyKeyConflict   = errors.New("idempotency key conflict")
	ErrContentLookupUnavailable = errors.New("content lookup unavailable")
)
