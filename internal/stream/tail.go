package stream

import (
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
)

// TailReader turns a regular file into a stream that waits for appended
// data instead of reporting EOF, in the manner of tail -f. The wait is a
// blocking select on the file's write notifications, so the replay loop
// stays single threaded.
type TailReader struct {
	f *os.File
	w *fsnotify.Watcher
}

// NewTailReader starts watching f's path. The caller keeps ownership of f.
func NewTailReader(f *os.File) (*TailReader, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(f.Name()); err != nil {
		w.Close()
		return nil, err
	}
	return &TailReader{f: f, w: w}, nil
}

// Read implements io.Reader. At end of file it blocks until the file grows
// again; the file being removed or renamed ends the stream cleanly.
func (t *TailReader) Read(p []byte) (int, error) {
	for {
		n, err := t.f.Read(p)
		if n > 0 || err != io.EOF {
			return n, err
		}
		if err := t.waitWrite(); err != nil {
			return 0, err
		}
	}
}

func (t *TailReader) waitWrite() error {
	for {
		select {
		case ev, ok := <-t.w.Events:
			if !ok {
				return io.EOF
			}
			if ev.Has(fsnotify.Write) {
				return nil
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				return io.EOF
			}
		case err, ok := <-t.w.Errors:
			if !ok {
				return io.EOF
			}
			return err
		}
	}
}

// Close stops the watcher. Subsequent Reads drain the file and then end
// with io.EOF.
func (t *TailReader) Close() error {
	return t.w.Close()
}
