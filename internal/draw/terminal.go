// Package draw writes the board configuration to terminals and other writers.
package draw

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize caps a single write to the underlying writer. SSH channels
// deliver smaller writes with less head-of-line delay.
const maxChunkSize = 4096

// ChunkWriter accumulates text and writes it to the underlying writer in
// chunks on Flush.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
}

// NewChunkWriter creates a ChunkWriter that writes to w.
func NewChunkWriter(w io.Writer) *ChunkWriter {
	return &ChunkWriter{
		bufw: bufio.NewWriterSize(w, 8192),
	}
}

// Write implements io.Writer.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteInt appends the decimal form of n.
func (cw *ChunkWriter) WriteInt(n int) {
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(n), 10))
}

// WritePadded appends s followed by spaces up to width columns.
func (cw *ChunkWriter) WritePadded(s string, width int) {
	cw.buf.WriteString(s)
	if pad := width - len(s); pad > 0 {
		cw.buf.WriteString(strings.Repeat(" ", pad))
	}
}

// Len returns the number of buffered bytes not yet flushed.
func (cw *ChunkWriter) Len() int {
	return cw.buf.Len()
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks of at
// most maxChunkSize bytes, then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		if err := cw.bufw.Flush(); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ReportWidth picks a report width from sizeFunc, clamped to
// [minReportWidth, maxReportWidth]. Errors yield the minimum.
func ReportWidth(sizeFunc TermSizeFunc) int {
	if sizeFunc == nil {
		return minReportWidth
	}
	width, _, err := sizeFunc()
	if err != nil || width < minReportWidth {
		return minReportWidth
	}
	if width > maxReportWidth {
		return maxReportWidth
	}
	return width
}
