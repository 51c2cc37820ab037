package util

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"log"
)

// SafeReadLine blocks until a whole line can be read or
// r returns an error.
// ***warning: expects lines to be \n separated***
func SafeReadLine(r *bufio.Reader) (line []byte, err error) {
	line, err = r.ReadBytes('\n')
	// strip the \n and a \r left by CRLF files
	line = bytes.TrimRight(line, "\r\n")
	return
}

// Count counts the lines in r and rewinds it so the lines
// can be streamed afterwards.
func Count(r io.ReadSeeker) (int64, error) {
	var n int64
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, err
	}

	_, err := r.Seek(0, io.SeekStart)
	return n, err
}

// Exhaust all the lines in r, reading at most n of them.
// Empty lines are skipped. The channel is closed early once
// ctx is done.
func Exhaust(ctx context.Context, n int64, r io.Reader) <-chan []byte {
	// make the output channel
	var lines = make(chan []byte)
	// wrap r in a bufio reader
	src := bufio.NewReader(r)
	go func() {
		defer close(lines)
		for i := int64(0); i < n; i++ {
			line, err := SafeReadLine(src)
			if len(line) != 0 {
				select {
				case <-ctx.Done():
					return
				case lines <- line:
				}
			}
			if err != nil {
				if err != io.EOF {
					log.Printf("error reading lines: %v", err)
				}
				return
			}
		}
	}()

	return lines
}

// Lines streams every non empty line of r without counting first.
// Each line is a fresh copy, the scanner buffer is reused.
// The channel is closed early once ctx is done.
func Lines(ctx context.Context, r io.Reader) <-chan []byte {
	var lines = make(chan []byte)
	src := bufio.NewScanner(r)
	go func() {
		defer close(lines)
		for src.Scan() {
			line := bytes.TrimRight(src.Bytes(), "\r")
			if len(line) == 0 {
				continue
			}
			select {
			case <-ctx.Done():
				return
			case lines <- append([]byte(nil), line...):
			}
		}
		if err := src.Err(); err != nil {
			log.Printf("error reading lines: %v", err)
		}
	}()

	return lines
}
