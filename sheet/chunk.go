// Package sheet lays sequential QR codes into .docx tables: a half-open
// integer range is split into bounded chunks, and each chunk becomes one
// fixed-column table of QR images followed by a range label.
package sheet

import "fmt"

// Chunk is a contiguous run of integers rendered as one table. Both
// bounds are inclusive.
type Chunk struct {
	First int
	Last  int
}

// Count returns the number of integers in the chunk.
func (c Chunk) Count() int {
	return c.Last - c.First + 1
}

// Label returns the range text placed beside the chunk's table, e.g.
// "1000-1099".
func (c Chunk) Label() string {
	return fmt.Sprintf("%d-%d", c.First, c.Last)
}

// Chunks partitions the half-open range [start, end) into consecutive
// chunks of at most size integers each. Boundaries fall at start + k*size;
// the final chunk is clipped to end. Returns nil for an empty range or a
// non-positive size.
func Chunks(start, end, size int) []Chunk {
	if end <= start || size <= 0 {
		return nil
	}
	chunks := make([]Chunk, 0, (end-start+size-1)/size)
	for cur := start; cur < end; cur += size {
		last := cur + size - 1
		if last >= end {
			last = end - 1
		}
		chunks = append(chunks, Chunk{First: cur, Last: last})
	}
	return chunks
}
