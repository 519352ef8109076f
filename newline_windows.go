//go:build windows

package ini

const lineEnding = "\r\n"
