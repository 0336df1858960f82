package serial

import "io"

// Device is a device that can be attached to the Controller. A transfer
// swaps one byte each way.
type Device interface {
	Exchange(out byte) (in byte)
}

// nullDevice is an implementation of Device that behaves as if nothing is
// plugged in: every transfer reads back 0xFF.
type nullDevice struct{}

// Exchange discards out and returns 0xFF.
func (n nullDevice) Exchange(byte) byte { return 0xFF }

// Writer is a Device that copies every byte it is sent to W. Test ROMs
// use this to report their results over the link port.
type Writer struct {
	W   io.Writer
	Err error // first error returned by W
}

// Exchange writes out to W and reads back 0xFF, as with no device attached.
func (w *Writer) Exchange(out byte) byte {
	if w.Err == nil {
		_, w.Err = w.W.Write([]byte{out})
	}
	return 0xFF
}
