package containers

import "fmt"

// IndexOutOfRange - Custom error to inform that a caller supplied index is outside the permitted range
type IndexOutOfRange struct {
	Index int
	Size  int
	msg   string
}

// NewIndexOutOfRange - Returns an IndexOutOfRange error for index given the logical size it was checked against
func NewIndexOutOfRange(index, size int) IndexOutOfRange {
	return IndexOutOfRange{
		Index: index,
		Size:  size,
		msg:   fmt.Sprintf("index %d out of range for size %d", index, size),
	}
}

// Error - Used to notify that an index was out of range
func (E IndexOutOfRange) Error() string {
	if E.msg == "" {
		return "index out of range"
	}
	return E.msg
}

// Is - Makes errors.Is(err, IndexOutOfRange{}) true for any IndexOutOfRange regardless of index and message
func (E IndexOutOfRange) Is(target error) bool {
	_, ok := target.(IndexOutOfRange)
	return ok
}

// InvalidArgument - Custom error to inform that a constructor or operation was given an unusable argument
type InvalidArgument struct {
	msg string
}

// NewInvalidArgument - Returns an InvalidArgument error with a formatted message
func NewInvalidArgument(format string, a ...any) InvalidArgument {
	return InvalidArgument{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that an argument was invalid
func (E InvalidArgument) Error() string {
	if E.msg == "" {
		return "invalid argument"
	}
	return E.msg
}

// Is - Makes errors.Is(err, InvalidArgument{}) true for any InvalidArgument regardless of message
func (E InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}

// NotFound - Custom error to inform that a looked up element does not exist
type NotFound struct {
	msg string
}

// NewNotFound - Returns a NotFound error with a formatted message
func NewNotFound(format string, a ...any) NotFound {
	return NotFound{msg: fmt.Sprintf(format, a...)}
}

// Error - Used to notify that no element was found
func (E NotFound) Error() string {
	if E.msg == "" {
		return "not found"
	}
	return E.msg
}

// Is - Makes errors.Is(err, NotFound{}) true for any NotFound regardless of message
func (E NotFound) Is(target error) bool {
	_, ok := target.(NotFound)
	return ok
}
