package packed

import "fmt"

type InvalidHandleError struct {
	Handle Handle
}

func (e InvalidHandleError) Error() string {
	return fmt.Sprintf("handle %d does not address a live element", e.Handle)
}

type InvalidIndexError struct {
	Index, Size int
}

func (e InvalidIndexError) Error() string {
	return fmt.Sprintf("index %d out of range for %d elements", e.Index, e.Size)
}

type ExhaustedError struct{}

func (e ExhaustedError) Error() string {
	return "no handles left to issue"
}
