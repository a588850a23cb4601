package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/evenflow/minrange"
)

var (
	// ErrTruncated indicates the stream ended inside a data set.
	ErrTruncated = errors.New("instance: unexpected end of input")
	// ErrBadToken indicates a token that is not a decimal integer.
	ErrBadToken = errors.New("instance: malformed integer")
	// ErrNegativeCount indicates a negative pipe count.
	ErrNegativeCount = errors.New("instance: negative pipe count")
)

// maxPrealloc bounds the pipe slice capacity reserved from a header count.
const maxPrealloc = 1 << 16

// Reader yields data sets one at a time.
type Reader struct {
	sc    *bufio.Scanner
	index int  // 1-based index of the last data set started
	done  bool // sentinel or end of stream seen
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Reader{sc: sc}
}

// Index returns the 1-based index of the most recently read data set.
func (r *Reader) Index() int {
	return r.index
}

// Next returns the next validated data set, or io.EOF after the "0 0"
// sentinel or at a clean end of stream.
func (r *Reader) Next() (minrange.Instance, error) {
	if r.done {
		return minrange.Instance{}, io.EOF
	}

	r.index++
	n, ok, err := r.scanInt()
	if err != nil {
		return minrange.Instance{}, r.wrap(err)
	}
	if !ok {
		r.done = true
		r.index--
		return minrange.Instance{}, io.EOF
	}

	m, err := r.mustInt()
	if err != nil {
		return minrange.Instance{}, r.wrap(err)
	}
	if n == 0 && m == 0 {
		r.done = true
		r.index--
		return minrange.Instance{}, io.EOF
	}
	if m < 0 {
		return minrange.Instance{}, r.wrap(fmt.Errorf("%w: %d", ErrNegativeCount, m))
	}

	// Reject impossible counts before reading any pipe.
	head := minrange.Instance{Junctions: n}
	if err = minrange.Validate(head); err != nil {
		return minrange.Instance{}, r.wrap(err)
	}
	if limit := minrange.MaxEdges(n); m > limit {
		return minrange.Instance{}, r.wrap(fmt.Errorf("%w: %d > %d", minrange.ErrTooManyEdges, m, limit))
	}

	// A header alone does not prove the pipes exist; cap the preallocation
	// and let append grow with what is actually read.
	inst := minrange.Instance{Junctions: n, Edges: make([]minrange.Edge, 0, min(m, maxPrealloc))}
	for i := 0; i < m; i++ {
		var triple [3]int
		for k := range triple {
			if triple[k], err = r.mustInt(); err != nil {
				return minrange.Instance{}, r.wrap(fmt.Errorf("pipe %d: %w", i, err))
			}
		}
		inst.Edges = append(inst.Edges, minrange.Edge{From: triple[0], To: triple[1], Weight: triple[2]})
	}

	if err = minrange.Validate(inst); err != nil {
		return minrange.Instance{}, r.wrap(err)
	}

	return inst, nil
}

// ReadAll reads every data set up to the sentinel.
func ReadAll(src io.Reader) ([]minrange.Instance, error) {
	r := NewReader(src)
	var out []minrange.Instance
	for {
		inst, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, inst)
	}
}

// scanInt scans one integer; ok is false at a clean end of stream.
func (r *Reader) scanInt() (v int, ok bool, err error) {
	if !r.sc.Scan() {
		if err = r.sc.Err(); err != nil {
			return 0, false, err
		}
		return 0, false, nil
	}
	tok := r.sc.Text()
	if v, err = strconv.Atoi(tok); err != nil {
		return 0, false, fmt.Errorf("%w: %q", ErrBadToken, tok)
	}

	return v, true, nil
}

// mustInt scans one integer and treats end of stream as ErrTruncated.
func (r *Reader) mustInt() (int, error) {
	v, ok, err := r.scanInt()
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrTruncated
	}

	return v, nil
}

func (r *Reader) wrap(err error) error {
	r.done = true

	return fmt.Errorf("data set %d: %w", r.index, err)
}
