//go:build windows

package writer

// eol is the platform's native line-ending sequence
const eol = "\r\n"
