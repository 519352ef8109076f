// FILE: lixenwraith/ini/error.go
package ini

import "errors"

// Status is the outcome of the most recent I/O operation on a File.
type Status int

const (
	// Success means the last operation completed normally
	Success Status = iota
	// FailedToOpen means the source or sink could not be opened
	FailedToOpen
	// FailedToOutput means a write to the sink failed partway
	FailedToOutput
	// FailedToInput means a read from the source failed partway
	FailedToInput
	// PathNotFound means the construction path does not exist on disk
	PathNotFound
)

// Sentinel errors, one per failing Status, plus ErrParse for typed reads.
var (
	ErrFailedToOpen   = errors.New("ini: failed to open")
	ErrFailedToOutput = errors.New("ini: failed to output")
	ErrFailedToInput  = errors.New("ini: failed to input")
	ErrPathNotFound   = errors.New("ini: path not found")
	ErrParse          = errors.New("ini: malformed value")
)

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case FailedToOpen:
		return "Failed_To_Open"
	case FailedToOutput:
		return "Failed_To_Output"
	case FailedToInput:
		return "Failed_To_Input"
	case PathNotFound:
		return "Path_Not_Found"
	default:
		return "Unknown"
	}
}

// Err returns the sentinel error for the status, nil for Success.
func (s Status) Err() error {
	switch s {
	case FailedToOpen:
		return ErrFailedToOpen
	case FailedToOutput:
		return ErrFailedToOutput
	case FailedToInput:
		return ErrFailedToInput
	case PathNotFound:
		return ErrPathNotFound
	default:
		return nil
	}
}

// StatusOf maps an error returned by this package back to its Status.
// A nil error is Success. Errors that carry no I/O sentinel (ErrParse or
// foreign errors) report FailedToInput.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrPathNotFound):
		return PathNotFound
	case errors.Is(err, ErrFailedToOpen):
		return FailedToOpen
	case errors.Is(err, ErrFailedToOutput):
		return FailedToOutput
	default:
		return FailedToInput
	}
}
