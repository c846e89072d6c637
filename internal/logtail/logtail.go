package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Tail returns at most maxLines complete lines from the end of the file and
// the byte offset just past the last newline. Pass the offset to NewFollower
// so an unterminated final line is delivered once it is finished.
func Tail(path string, maxLines int) (lines []string, offset int64, err error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := newRing(maxLines)
	reader := bufio.NewReaderSize(file, 64*1024)
	for {
		chunk, readErr := reader.ReadString('\n')
		// an unterminated chunk is left for the follower
		if strings.HasSuffix(chunk, "\n") {
			ring.push(trimNewline(chunk))
			offset += int64(len(chunk))
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, 0, fmt.Errorf("read log: %w", readErr)
		}
	}
	return ring.lines(), offset, nil
}

// ring keeps the newest size lines; size <= 0 keeps everything.
type ring struct {
	size  int
	buf   []string
	idx   int
	count int
}

func newRing(size int) *ring {
	r := &ring{size: size}
	if size > 0 {
		r.buf = make([]string, size)
	}
	return r
}

func (r *ring) push(line string) {
	if r.size <= 0 {
		r.buf = append(r.buf, line)
		r.count++
		return
	}
	r.buf[r.idx] = line
	r.idx = (r.idx + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

func (r *ring) lines() []string {
	if r.count == 0 {
		return nil
	}
	out := make([]string, r.count)
	if r.size > 0 && r.count == r.size {
		for i := 0; i < r.count; i++ {
			out[i] = r.buf[(r.idx+i)%r.size]
		}
		return out
	}
	copy(out, r.buf[:r.count])
	return out
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
