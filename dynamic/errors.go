package dynamic

import (
	"errors"
	"fmt"
	"strings"

	"colorflow/space"
)

// Sentinel errors. Every error returned by this package wraps one of them,
// match with errors.Is.
var (
	// ErrInvalidColor is returned for malformed payloads or unknown tags.
	ErrInvalidColor = errors.New("dynamic: invalid color")
	// ErrNonlinearSpaceInSceneState rejects scene-referred colors in a
	// nonlinear space.
	ErrNonlinearSpaceInSceneState = errors.New("dynamic: nonlinear color space in scene state")
	// ErrNonlinearConversionInSceneState rejects conversions of
	// scene-referred colors from or to a nonlinear space.
	ErrNonlinearConversionInSceneState = errors.New("dynamic: conversion through a nonlinear space in scene state")
	// ErrStateChangeInNonlinearSpace rejects state changes and tonemapping
	// outside of linear spaces.
	ErrStateChangeInNonlinearSpace = errors.New("dynamic: state change in a nonlinear color space")
	// ErrTonemapInDisplayState rejects tonemapping an already
	// display-referred color.
	ErrTonemapInDisplayState = errors.New("dynamic: tonemap in display state")
	// ErrNonlinearConversionInPremultipliedAlphaState rejects conversions
	// of premultiplied colors from or to a nonlinear space.
	ErrNonlinearConversionInPremultipliedAlphaState = errors.New("dynamic: conversion through a nonlinear space with premultiplied alpha")

	ErrMismatchedSpace      = errors.New("dynamic: mismatched color space")
	ErrMismatchedState      = errors.New("dynamic: mismatched state")
	ErrMismatchedAlphaState = errors.New("dynamic: mismatched alpha state")
)

// ConversionError reports a rejected conversion, state change or tonemap
// along with the tags involved. Target fields are zero when the operation
// had no target of that kind.
type ConversionError struct {
	Err         error
	Space       space.ID
	State       State
	TargetSpace space.ID
	TargetState State
}

func (e *ConversionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v: %s in %s state", e.Err, e.Space, e.State)
	if e.TargetSpace.Valid() && e.TargetSpace != e.Space {
		fmt.Fprintf(&b, " to %s", e.TargetSpace)
	}
	if e.TargetState != e.State {
		fmt.Fprintf(&b, " to %s state", e.TargetState)
	}
	return b.String()
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// DowncastError reports a tag of a dynamic color that does not match the
// requested typed encoding.
type DowncastError struct {
	Err      error
	Actual   string
	Expected string
}

func (e *DowncastError) Error() string {
	return fmt.Sprintf("%v: actual %s, expected %s", e.Err, e.Actual, e.Expected)
}

func (e *DowncastError) Unwrap() error {
	return e.Err
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidColor, fmt.Sprintf(format, args...))
}
