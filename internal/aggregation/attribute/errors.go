package attribute

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedCombination is matched by every UnsupportedCombinationError.
	ErrUnsupportedCombination = errors.New("attribute not defined for representation")

	// ErrUnknownAttribute is returned by ParseAttribute for unknown names.
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrUnknownRepresentation is returned by ParseRepresentation for unknown names.
	ErrUnknownRepresentation = errors.New("unknown representation")
)

// UnsupportedCombinationError reports a lookup for an attribute that has no
// extractor bound for the requested representation. It signals a caller bug,
// so it is never worth retrying.
type UnsupportedCombinationError struct {
	Attribute      Attribute
	Representation Representation
}

func (e *UnsupportedCombinationError) Error() string {
	return fmt.Sprintf("attribute %q (%s) is not defined for %s", e.Attribute.Label(), e.Attribute.Key(), e.Representation)
}

// Is lets errors.Is match ErrUnsupportedCombination.
func (e *UnsupportedCombinationError) Is(target error) bool {
	return target == ErrUnsupportedCombination
}
