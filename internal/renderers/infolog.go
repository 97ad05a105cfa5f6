package renderers

import "strings"

// readInfoLog fetches a driver diagnostic of the given queried length.
// Lengths of one or less hold at most the terminator and yield "".
func readInfoLog(length int32, fetch func(bufSize int32, written *int32, buf *uint8)) string {
	if length <= 1 {
		return ""
	}
	buf := make([]uint8, length)
	var written int32
	fetch(length, &written, &buf[0])
	if written < 0 || written > length {
		written = length
	}
	return strings.TrimRight(string(buf[:written]), "\x00\n")
}

// cSource returns source with the NUL terminator the GL entry points expect.
func cSource(source string) string {
	if strings.HasSuffix(source, "\x00") {
		return source
	}
	return source + "\x00"
}
