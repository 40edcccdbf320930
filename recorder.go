package wallet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/wallet/date"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// ErrMalformedLine is returned when a persisted line cannot be decoded into a Record.
var ErrMalformedLine = errors.New("malformed record line")

// maxLineSize is the longest line DecodeRecords accepts, newline included.
const maxLineSize = 1 << 20

// fieldSep separates fields on a line. It is never escaped: a category or a
// comment containing it cannot be read back.
const fieldSep = ","

// Recorder reads and writes records to a flat text file, one record per line.
type Recorder struct {
	path string
}

// NewRecorder returns a Recorder backed by the file at path.
func NewRecorder(path string) *Recorder {
	return &Recorder{path: path}
}

// Path returns the path of the backing file.
func (r *Recorder) Path() string { return r.path }

// Write replaces the content of the file with records, in the given order.
func (r *Recorder) Write(records []Record) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("error opening record file %q for writing: %w", r.path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := EncodeRecords(w, records); err != nil {
		return fmt.Errorf("could not encode records to %q: %w", r.path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("could not write records to %q: %w", r.path, err)
	}
	log.Debugf("wrote %d records to %q", len(records), r.path)
	return f.Close()
}

// Read returns all the records in the file, in file order.
//
// A single malformed line fails the whole read.
func (r *Recorder) Read() ([]Record, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("could not open record file %q: %w", r.path, err)
	}
	defer f.Close()

	records, err := DecodeRecords(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode record file %q: %w", r.path, err)
	}
	log.Debugf("read %d records from %q", len(records), r.path)
	return records, nil
}

// EnsureFile creates an empty file at path if it does not exist yet.
// It reports whether the file was created.
func EnsureFile(path string) (created bool, err error) {
	_, err = os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}
	f, err := os.Create(path)
	if err != nil {
		return false, err
	}
	return true, f.Close()
}

// EncodeRecord writes a single record as one line: date,category,amount,comment.
func EncodeRecord(w io.Writer, r Record) error {
	line := strings.Join([]string{
		r.Date.String(),
		r.Category,
		FormatAmount(r.Amount),
		r.Comment,
	}, fieldSep)
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// EncodeRecords writes records, one per line, in the given order.
func EncodeRecords(w io.Writer, records []Record) error {
	for _, r := range records {
		if err := EncodeRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRecords reads records from r, one per line. Surrounding whitespace
// is trimmed. Every line, blank ones included, must be a valid record, and
// no line may be longer than 1 MiB.
func DecodeRecords(r io.Reader) ([]Record, error) {
	records := make([]Record, 0)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		rec, err := ParseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input after line %d: %w", lineno, err)
	}
	return records, nil
}

// ParseRecord decodes a single line. It must have exactly four comma separated fields.
func ParseRecord(line string) (Record, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) != 4 {
		return Record{}, fmt.Errorf("%w: got %d fields want 4 in %q", ErrMalformedLine, len(fields), line)
	}
	day, err := date.Parse(fields[0])
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}
	amount, err := ParseAmount(fields[2])
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}
	return NewRecord(day, fields[1], amount, fields[3]), nil
}

// ParseAmount parses a decimal amount such as "12.50" or "-3".
func ParseAmount(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d.InexactFloat64(), nil
}

// FormatAmount returns the shortest decimal text that parses back to amount.
func FormatAmount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		// not representable as a decimal, and rejected by ParseAmount.
		return strconv.FormatFloat(amount, 'g', -1, 64)
	}
	return decimal.NewFromFloat(amount).String()
}
