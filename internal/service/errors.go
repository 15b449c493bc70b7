package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Forbidden           = 403
	NotFound            = 404
	UnprocessableEntity = 422
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("Invalid request parameters.")
	ErrFillAllFields       = errors.New("Fill in all fields.")
	ErrEmailRegistered     = errors.New("This email is already registered.")
	ErrPasswordTooShort    = errors.New("Password should be at least 6 characters.")
	ErrPasswordMismatch    = errors.New("Passwords do not match.")
	ErrInvalidCredentials  = errors.New("Invalid Credentials.")
	ErrInvalidPassword     = errors.New("Invalid Password.")
	ErrUserNotFound        = errors.New("User not found.")
	ErrNoImageChosen       = errors.New("Please choose an image.")
	ErrAvatarTooBig        = errors.New("Profile picture is too big. Should be less than 500kb.")
	ErrEmailExists         = errors.New("Email already exists.")
	ErrCurrentPassword     = errors.New("Invalid current password.")
	ErrNewPasswordMismatch = errors.New("New passwords do not match.")
	ErrAvatarChangeFailed  = errors.New("Avatar couldn't be changed.")
	ErrPostFieldsMissing   = errors.New("Fill in all fields and choose a thumbnail.")
	ErrThumbnailTooBig     = errors.New("Thumbnail too big. File should be less than 2mb.")
	ErrInvalidCategory     = errors.New("Invalid category.")
	ErrPostCreateFailed    = errors.New("Post couldn't be created.")
	ErrPostNotFound        = errors.New("Post not found.")
	ErrPostUpdateFailed    = errors.New("Couldn't update post.")
	ErrPostUnavailable     = errors.New("Post Unavailable.")
	ErrPostDeleteFailed    = errors.New("Post couldn't be deleted.")
	UnExpectedError        = errors.New("Something went wrong. Please try again.")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrFillAllFields:       UnprocessableEntity,
	ErrEmailRegistered:     UnprocessableEntity,
	ErrPasswordTooShort:    UnprocessableEntity,
	ErrPasswordMismatch:    UnprocessableEntity,
	ErrInvalidCredentials:  NotFound,
	ErrInvalidPassword:     UnprocessableEntity,
	ErrUserNotFound:        NotFound,
	ErrNoImageChosen:       UnprocessableEntity,
	ErrAvatarTooBig:        UnprocessableEntity,
	ErrEmailExists:         UnprocessableEntity,
	ErrCurrentPassword:     UnprocessableEntity,
	ErrNewPasswordMismatch: UnprocessableEntity,
	ErrAvatarChangeFailed:  UnprocessableEntity,
	ErrPostFieldsMissing:   UnprocessableEntity,
	ErrThumbnailTooBig:     UnprocessableEntity,
	ErrInvalidCategory:     UnprocessableEntity,
	ErrPostCreateFailed:    UnprocessableEntity,
	ErrPostNotFound:        NotFound,
	ErrPostUpdateFailed:    BadRequest,
	ErrPostUnavailable:     BadRequest,
	ErrPostDeleteFailed:    Forbidden,
	UnExpectedError:        InternalServerError,
}
