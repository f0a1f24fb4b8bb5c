package otp

import "errors"

var (
	// ErrMac indicates the HMAC step could not run, which for the closed
	// algorithm set only happens with a corrupted algo value.
	ErrMac = errors.New("mac computation failed")

	// ErrClockBeforeEpoch indicates the wall clock reported a time before
	// the UNIX epoch, which would produce an undefined counter.
	ErrClockBeforeEpoch = errors.New("current time is before the unix epoch")

	// ErrZeroStep indicates a record with a zero step, for which no time
	// window can be computed.
	ErrZeroStep = errors.New("step must be a positive number of seconds")
)
