package grid

import "errors"

var (
	// ErrMissingCharacter is returned when a frame character role is unset.
	ErrMissingCharacter = errors.New("missing frame character")

	// ErrInvalidCharacter is returned when a frame character is not exactly
	// one display column wide.
	ErrInvalidCharacter = errors.New("invalid frame character")

	// ErrUnknownCharacterRole is returned for an override naming no role.
	ErrUnknownCharacterRole = errors.New("unknown frame character role")

	// ErrNegativePadding is returned when Config.Padding is below zero.
	ErrNegativePadding = errors.New("padding must be non-negative")

	// ErrRendererWidth is returned when a renderer changes the printed width
	// of the text it was given.
	ErrRendererWidth = errors.New("renderer changed printed width")
)
