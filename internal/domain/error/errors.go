package error

import (
	"github.com/riftbook/rift-social/internal/pkg/errors"
)

// Domain error codes
const (
	// Upstream errors
	CodeUpstreamUnavailable errors.Code = "UPSTREAM_UNAVAILABLE"
	CodeUpstreamNotFound    errors.Code = "UPSTREAM_NOT_FOUND"
	CodeUpstreamRestricted  errors.Code = "UPSTREAM_RESTRICTED"
	CodeUpstreamRateLimited errors.Code = "UPSTREAM_RATE_LIMITED"

	// Cache errors
	CodeRefreshThrottled errors.Code = "REFRESH_THROTTLED"

	// Friend request errors
	CodeSelfRequest        errors.Code = "SELF_REQUEST"
	CodeDuplicatePending   errors.Code = "DUPLICATE_PENDING"
	CodeAlreadyFriends     errors.Code = "ALREADY_FRIENDS"
	CodeRequestNotFound    errors.Code = "REQUEST_NOT_FOUND"
	CodeAlreadyResolved    errors.Code = "ALREADY_RESOLVED"
	CodeFriendshipNotFound errors.Code = "FRIENDSHIP_NOT_FOUND"

	// Chat errors
	CodeSelfMessage     errors.Code = "SELF_MESSAGE"
	CodeContentRequired errors.Code = "CONTENT_REQUIRED"

	// Validation errors
	CodeUserIDRequired    errors.Code = "USER_ID_REQUIRED"
	CodeRegionRequired    errors.Code = "REGION_REQUIRED"
	CodeRiotNameRequired  errors.Code = "RIOT_NAME_REQUIRED"
	CodeMatchIDRequired   errors.Code = "MATCH_ID_REQUIRED"
	CodeSubjectIDRequired errors.Code = "SUBJECT_ID_REQUIRED"
	CodePageInvalid       errors.Code = "PAGE_INVALID"

	// Auth errors
	CodeUnauthenticated errors.Code = "UNAUTHENTICATED"
	CodeTokenInvalid    errors.Code = "TOKEN_INVALID"
)

// Upstream errors
var (
	ErrUpstreamUnavailable = errors.New(errors.KindUnavailable, CodeUpstreamUnavailable, "upstream data provider is unavailable")

	ErrUpstreamNotFound = errors.New(errors.KindNotFound, CodeUpstreamNotFound, "resource not found upstream")

	ErrRestricted = errors.New(errors.KindForbidden, CodeUpstreamRestricted, "upstream denied access to this resource")

	ErrUpstreamRateLimited = errors.New(errors.KindUnavailable, CodeUpstreamRateLimited, "upstream rate limit exceeded")
)

// Cache errors
var (
	ErrRefreshThrottled = errors.New(errors.KindThrottled, CodeRefreshThrottled, "refresh requested too soon, try again shortly")
)

// Friend request errors
var (
	ErrSelfRequest = errors.New(errors.KindValidation, CodeSelfRequest, "cannot send a friend request to yourself")

	ErrDuplicatePending = errors.New(errors.KindConflict, CodeDuplicatePending, "a pending friend request already exists for this user")

	ErrAlreadyFriends = errors.New(errors.KindConflict, CodeAlreadyFriends, "you are already friends with this user")

	ErrRequestNotFound = errors.New(errors.KindNotFound, CodeRequestNotFound, "friend request not found")

	ErrAlreadyResolved = errors.New(errors.KindConflict, CodeAlreadyResolved, "friend request has already been resolved")

	ErrFriendshipNotFound = errors.New(errors.KindNotFound, CodeFriendshipNotFound, "friendship not found")
)

// Chat errors
var (
	ErrSelfMessage = errors.New(errors.KindValidation, CodeSelfMessage, "cannot send a message to yourself")

	ErrContentRequired = errors.New(errors.KindValidation, CodeContentRequired, "message content is required")
)

// Validation errors
var (
	ErrUserIDRequired = errors.New(errors.KindValidation, CodeUserIDRequired, "user ID is required")

	ErrRegionRequired = errors.New(errors.KindValidation, CodeRegionRequired, "region is required")

	ErrRiotNameRequired = errors.New(errors.KindValidation, CodeRiotNameRequired, "game name and tag line are required")

	ErrMatchIDRequired = errors.New(errors.KindValidation, CodeMatchIDRequired, "match ID is required")

	ErrSubjectIDRequired = errors.New(errors.KindValidation, CodeSubjectIDRequired, "subject ID is required")

	ErrPageInvalid = errors.New(errors.KindValidation, CodePageInvalid, "page must be >= 0 and size must be > 0")
)

// Auth errors
var (
	ErrUnauthenticated = errors.New(errors.KindUnauthorized, CodeUnauthenticated, "authentication required")

	ErrTokenInvalid = errors.New(errors.KindUnauthorized, CodeTokenInvalid, "token is invalid")
)

// Helper functions

func RequestNotFound(requesterID, recipientID string) *errors.Error {
	return ErrRequestNotFound.WithMessagef("friend request from %s to %s not found", requesterID, recipientID)
}

func FriendshipNotFound(userID, otherID string) *errors.Error {
	return ErrFriendshipNotFound.WithMessagef("no friendship between %s and %s", userID, otherID)
}
