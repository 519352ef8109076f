//go:build !windows

package ini

// lineEnding is the host line terminator used by the decoder and encoder.
const lineEnding = "\n"
