package rthk

import (
	"errors"
	"fmt"
)

// ErrManifestNotFound is reported when an episode page embeds no master.m3u8 URL.
var ErrManifestNotFound = errors.New("manifest url not found")

// DateFormatError reports an episode date that is not day/month/year.
type DateFormatError struct {
	Raw string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("malformed date %q: want day/month/year", e.Raw)
}

// ExtractError ties a fatal failure to the identifier being resolved.
type ExtractError struct {
	ID  string
	Err error
}

func (e *ExtractError) Error() string {
	return fmt.Sprintf("%s: %v", e.ID, e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}
