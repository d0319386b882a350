package buffer

import "errors"

var (
	// ErrBufferLimit rejects adds beyond MaxBuffers; the store is unchanged.
	ErrBufferLimit = errors.New("buffer limit reached")
	// ErrLastBuffer rejects closing the sole remaining buffer.
	ErrLastBuffer = errors.New("cannot close the last buffer")
)

// Store is the bounded, ordered collection of open buffers. While it is
// non-empty, the current index always addresses a valid entry.
type Store struct {
	bufs    []*Buffer
	current int
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Count() int {
	return len(s.bufs)
}

// Current returns the buffer under the cursor, or nil for an empty store.
func (s *Store) Current() *Buffer {
	if len(s.bufs) == 0 {
		return nil
	}
	return s.bufs[s.current]
}

func (s *Store) CurrentIndex() int {
	return s.current
}

// At returns the buffer at index i, or nil when out of range.
func (s *Store) At(i int) *Buffer {
	if i < 0 || i >= len(s.bufs) {
		return nil
	}
	return s.bufs[i]
}

// Add appends a buffer and makes it current. Fails with ErrBufferLimit when
// the store is full, leaving the store untouched.
func (s *Store) Add(b *Buffer) error {
	if len(s.bufs) >= MaxBuffers {
		return ErrBufferLimit
	}
	s.bufs = append(s.bufs, b)
	s.current = len(s.bufs) - 1
	return nil
}

// Close removes the current buffer, frees its lines, and compacts the store.
// The cursor moves to the previous entry (or stays at zero), which also
// lands on the new last entry when the removed buffer was last. Closing the
// sole buffer fails with ErrLastBuffer.
func (s *Store) Close() error {
	if len(s.bufs) <= 1 {
		return ErrLastBuffer
	}

	s.bufs[s.current].free()
	s.bufs = append(s.bufs[:s.current], s.bufs[s.current+1:]...)
	if s.current > 0 {
		s.current--
	}
	return nil
}

// Next moves the cursor forward cyclically.
func (s *Store) Next() {
	if len(s.bufs) > 1 {
		s.current = (s.current + 1) % len(s.bufs)
	}
}

// Prev moves the cursor backward cyclically.
func (s *Store) Prev() {
	if len(s.bufs) > 1 {
		s.current--
		if s.current < 0 {
			s.current = len(s.bufs) - 1
		}
	}
}

// Select jumps the cursor to index i when valid.
func (s *Store) Select(i int) {
	if i >= 0 && i < len(s.bufs) {
		s.current = i
	}
}

// Reload replaces the current buffer's lines in place. Position, label and
// language are preserved; only the content and clamped scroll change.
func (s *Store) Reload(raw []string) Truncation {
	b := s.Current()
	if b == nil {
		return Truncation{}
	}
	return b.SetLines(raw)
}
