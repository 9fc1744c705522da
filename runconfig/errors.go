package runconfig

import "errors"

var (
	// ErrUnknownFormat indicates a config file extension other than .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("runconfig: unknown config format")
	// ErrInvalid indicates a decoded configuration with meaningless values.
	ErrInvalid = errors.New("runconfig: invalid configuration")
)
