// Package main exposes braillify's transcoder across a C ABI boundary so a
// host application in another language can call it without a Go runtime
// of its own embedded — the same shape the original Rust crate's `extern
// "C"` entry points provided. Build with `go build -buildmode=c-shared`.
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"sync"
	"unsafe"

	"github.com/hangulbraille/braillify"
)

// lastError records the most recent encoding failure, matching the
// original crate's get_last_error ABI: callers that receive a nil/zero
// result from an encode call fetch the message separately rather than
// through an out-parameter.
var (
	lastErrMu  sync.Mutex
	lastErrMsg string
)

func setLastError(err error) {
	lastErrMu.Lock()
	defer lastErrMu.Unlock()
	if err != nil {
		lastErrMsg = err.Error()
	} else {
		lastErrMsg = ""
	}
}

// BraillifyGetLastError returns the error message from the most recent
// encode call, or an empty string if that call succeeded. The message is
// kept in one process-wide slot shared by all threads, so a call on one
// thread overwrites the message left by a call on another.
//
//export BraillifyGetLastError
func BraillifyGetLastError() *C.char {
	lastErrMu.Lock()
	msg := lastErrMsg
	lastErrMu.Unlock()
	return C.CString(msg)
}

// BraillifyEncode transcodes a NUL-terminated UTF-8 string into its raw
// dot-cell bytes, returned in a newly allocated buffer whose length is
// written to outLen. The caller owns the returned pointer and must free it
// with BraillifyFreeBytes. A nil return means either failure (outLen is
// left unchanged; call BraillifyGetLastError for the reason) or an empty
// result (outLen is set to 0 and the last error is empty).
//
//export BraillifyEncode
func BraillifyEncode(input *C.char, outLen *C.int) *C.uchar {
	text := C.GoString(input)
	out, err := braillify.Encode(text)
	setLastError(err)
	if err != nil {
		return nil
	}
	*outLen = C.int(len(out))
	if len(out) == 0 {
		return nil
	}
	buf := C.CBytes(out)
	return (*C.uchar)(buf)
}

// BraillifyEncodeToUnicode transcodes a NUL-terminated UTF-8 string into
// its Unicode Braille Patterns transcription, also NUL-terminated. The
// caller owns the returned pointer and must free it with
// BraillifyFreeString. A nil return indicates the input was not valid
// UTF-8 or contained a character the transcoder does not recognize; call
// BraillifyGetLastError for the reason.
//
//export BraillifyEncodeToUnicode
func BraillifyEncodeToUnicode(input *C.char) *C.char {
	text := C.GoString(input)
	out, err := braillify.EncodeToUnicode(text)
	setLastError(err)
	if err != nil {
		return nil
	}
	return C.CString(out)
}

// BraillifyEncodeToBrailleFont is the braille-font-rendering counterpart
// to BraillifyEncodeToUnicode, a distinct ABI entry point per the
// original crate even though the two currently share an implementation.
//
//export BraillifyEncodeToBrailleFont
func BraillifyEncodeToBrailleFont(input *C.char) *C.char {
	text := C.GoString(input)
	out, err := braillify.EncodeToBrailleFont(text)
	setLastError(err)
	if err != nil {
		return nil
	}
	return C.CString(out)
}

// BraillifyFreeString releases a string previously returned by
// BraillifyEncodeToUnicode, BraillifyEncodeToBrailleFont, or
// BraillifyGetLastError.
//
//export BraillifyFreeString
func BraillifyFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// BraillifyFreeBytes releases a buffer previously returned by
// BraillifyEncode.
//
//export BraillifyFreeBytes
func BraillifyFreeBytes(b *C.uchar) {
	if b != nil {
		C.free(unsafe.Pointer(b))
	}
}

func main() {}
