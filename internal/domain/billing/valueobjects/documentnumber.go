package valueobjects

import (
	"fmt"
	"strconv"
	"strings"
)

// DocumentNumber is the typed (year, sequence) pair behind the human-readable
// "{year}-{seq:04d}" form. Keeping the parts as integers makes ordering
// correct across year boundaries, where lexicographic comparison of the
// rendered strings is not ("2025-0001" vs "2024-9999").
type DocumentNumber struct {
	year     int
	sequence int
}

func NewDocumentNumber(year, sequence int) (DocumentNumber, error) {
	if year < 2000 || year > 9999 {
		return DocumentNumber{}, fmt.Errorf("document number year %d out of range", year)
	}
	if sequence < 1 {
		return DocumentNumber{}, fmt.Errorf("document number sequence must be >= 1, got %d", sequence)
	}
	return DocumentNumber{year: year, sequence: sequence}, nil
}

// ParseDocumentNumber parses a rendered "{year}-{seq}" number. Used only when
// backfilling counters from legacy rows; malformed numbers are reported, not
// guessed at.
func ParseDocumentNumber(s string) (DocumentNumber, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return DocumentNumber{}, fmt.Errorf("malformed document number %q", s)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return DocumentNumber{}, fmt.Errorf("malformed document number %q", s)
	}
	seq, err := strconv.Atoi(parts[1])
	if err != nil {
		return DocumentNumber{}, fmt.Errorf("malformed document number %q", s)
	}
	return NewDocumentNumber(year, seq)
}

func (n DocumentNumber) Year() int {
	return n.year
}

func (n DocumentNumber) Sequence() int {
	return n.sequence
}

func (n DocumentNumber) IsZero() bool {
	return n.year == 0 && n.sequence == 0
}

// Less orders numbers by (year, sequence) as integers.
func (n DocumentNumber) Less(other DocumentNumber) bool {
	if n.year != other.year {
		return n.year < other.year
	}
	return n.sequence < other.sequence
}

// Next returns the number following n within the same year.
func (n DocumentNumber) Next() DocumentNumber {
	return DocumentNumber{year: n.year, sequence: n.sequence + 1}
}

func (n DocumentNumber) String() string {
	return fmt.Sprintf("%d-%04d", n.year, n.sequence)
}
