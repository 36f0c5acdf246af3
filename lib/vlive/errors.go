package vlive

import "fmt"

// ErrSignInFailed is returned when the platform rejected the credentials.
// Unlike transport failures, this is surfaced even under silent: the
// redirect-detection path predates the silent flag and was never wired to
// it. Kept as observed.
var ErrSignInFailed = fmt.Errorf("sign-in failed")

// NetworkError wraps a transport failure or a response whose status was
// outside the call's acceptable set. It is never retried automatically.
type NetworkError struct {
	URL    string
	Status int
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %s", e.URL, e.Err)
	}
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.Status)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a response body could not be decoded, or when
// a payload did not have the shape an operation requires (for example
// asking for the video seq of a post that has no official video).
type ParseError struct {
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// TypeMismatchError is returned when a LIVE-only or VOD-only model is
// constructed on the wrong kind of video. This is a caller-contract
// violation and is never suppressed by silent.
type TypeMismatchError struct {
	VideoSeq string
	Want     string
	Got      string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf(
		"video %s is of type %q, not %q",
		e.VideoSeq, e.Got, e.Want,
	)
}
