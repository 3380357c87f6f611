package pprofsource

import "errors"

var (
	// ErrSampleTypeNotFound is returned when Options.SampleType names a
	// sample type the profile does not carry.
	ErrSampleTypeNotFound = errors.New("sample type not found in profile")

	// ErrNoSampleValues is returned for profiles with neither a count nor a
	// time sample type.
	ErrNoSampleValues = errors.New("profile has no count or time sample type")
)
