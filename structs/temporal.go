package structs

import (
	"io"

	"github.com/graphwire/packstream/packstream"
)

// writeInts writes a run of integer fields, the shape every temporal
// record shares.
func writeInts(w io.Writer, vs ...int64) (int, error) {
	total := 0
	for _, v := range vs {
		n, err := packstream.EncodeInt(w, v)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// readInts fills each target with a decoded integer field.
func readInts(r io.Reader, targets ...*int64) error {
	for _, t := range targets {
		v, err := packstream.DecodeInt(r)
		if err != nil {
			return err
		}
		*t = v
	}
	return nil
}

// Date is a calendar date as days since the Unix epoch.
type Date struct {
	Days int64
}

func (*Date) TagByte() byte  { return TagDate }
func (*Date) NumFields() int { return 1 }

func (d *Date) WriteBody(w io.Writer) (int, error) { return writeInts(w, d.Days) }
func (d *Date) ReadBody(r io.Reader) error         { return readInts(r, &d.Days) }

// Time is a time of day with a timezone offset: nanoseconds since
// midnight in the given offset.
type Time struct {
	Nanoseconds     int64
	TZOffsetSeconds int64
}

func (*Time) TagByte() byte  { return TagTime }
func (*Time) NumFields() int { return 2 }

func (t *Time) WriteBody(w io.Writer) (int, error) {
	return writeInts(w, t.Nanoseconds, t.TZOffsetSeconds)
}

func (t *Time) ReadBody(r io.Reader) error {
	return readInts(r, &t.Nanoseconds, &t.TZOffsetSeconds)
}

// UTCNanoseconds returns the time of day normalized to UTC.
func (t *Time) UTCNanoseconds() int64 {
	return t.Nanoseconds - t.TZOffsetSeconds*1_000_000_000
}

// LocalTime is a time of day without timezone information.
type LocalTime struct {
	Nanoseconds int64
}

func (*LocalTime) TagByte() byte  { return TagLocalTime }
func (*LocalTime) NumFields() int { return 1 }

func (t *LocalTime) WriteBody(w io.Writer) (int, error) { return writeInts(w, t.Nanoseconds) }
func (t *LocalTime) ReadBody(r io.Reader) error         { return readInts(r, &t.Nanoseconds) }

// DateTime is an instant with a fixed timezone offset in minutes.
type DateTime struct {
	Seconds         int64
	Nanoseconds     int64
	TZOffsetMinutes int64
}

func (*DateTime) TagByte() byte  { return TagDateTime }
func (*DateTime) NumFields() int { return 3 }

func (t *DateTime) WriteBody(w io.Writer) (int, error) {
	return writeInts(w, t.Seconds, t.Nanoseconds, t.TZOffsetMinutes)
}

func (t *DateTime) ReadBody(r io.Reader) error {
	return readInts(r, &t.Seconds, &t.Nanoseconds, &t.TZOffsetMinutes)
}

// UTCNanoseconds returns the instant normalized to UTC.
func (t *DateTime) UTCNanoseconds() int64 {
	return t.Seconds*1_000_000_000 + t.Nanoseconds - t.TZOffsetMinutes*60*1_000_000_000
}

// DateTimeZoneID is an instant qualified by a timezone identifier.
type DateTimeZoneID struct {
	Seconds     int64
	Nanoseconds int64
	TZID        int64
}

func (*DateTimeZoneID) TagByte() byte  { return TagDateTimeZoneID }
func (*DateTimeZoneID) NumFields() int { return 3 }

func (t *DateTimeZoneID) WriteBody(w io.Writer) (int, error) {
	return writeInts(w, t.Seconds, t.Nanoseconds, t.TZID)
}

func (t *DateTimeZoneID) ReadBody(r io.Reader) error {
	return readInts(r, &t.Seconds, &t.Nanoseconds, &t.TZID)
}

// LocalDateTime is an instant without timezone information.
type LocalDateTime struct {
	Seconds     int64
	Nanoseconds int64
}

func (*LocalDateTime) TagByte() byte  { return TagLocalDateTime }
func (*LocalDateTime) NumFields() int { return 2 }

func (t *LocalDateTime) WriteBody(w io.Writer) (int, error) {
	return writeInts(w, t.Seconds, t.Nanoseconds)
}

func (t *LocalDateTime) ReadBody(r io.Reader) error {
	return readInts(r, &t.Seconds, &t.Nanoseconds)
}

// Duration is a calendar-aware span of time. Months and days are kept
// apart from seconds because their length varies by calendar context.
type Duration struct {
	Months      int64
	Days        int64
	Seconds     int64
	Nanoseconds int64
}

func (*Duration) TagByte() byte  { return TagDuration }
func (*Duration) NumFields() int { return 4 }

func (d *Duration) WriteBody(w io.Writer) (int, error) {
	return writeInts(w, d.Months, d.Days, d.Seconds, d.Nanoseconds)
}

func (d *Duration) ReadBody(r io.Reader) error {
	return readInts(r, &d.Months, &d.Days, &d.Seconds, &d.Nanoseconds)
}
