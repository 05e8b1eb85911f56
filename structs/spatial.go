package structs

import (
	"io"

	"github.com/graphwire/packstream/packstream"
)

// Point2D is a point in a 2-dimensional coordinate reference system
// identified by its SRID.
type Point2D struct {
	SRID int64
	X    float64
	Y    float64
}

func (*Point2D) TagByte() byte  { return TagPoint2D }
func (*Point2D) NumFields() int { return 3 }

func (p *Point2D) WriteBody(w io.Writer) (int, error) {
	total, err := packstream.EncodeInt(w, p.SRID)
	if err != nil {
		return total, err
	}
	for _, c := range []float64{p.X, p.Y} {
		n, err := packstream.EncodeFloat(w, c)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (p *Point2D) ReadBody(r io.Reader) error {
	srid, err := packstream.DecodeInt(r)
	if err != nil {
		return err
	}
	for _, c := range []*float64{&p.X, &p.Y} {
		v, err := packstream.DecodeFloat(r)
		if err != nil {
			return err
		}
		*c = v
	}
	p.SRID = srid
	return nil
}

// Point3D is a point in a 3-dimensional coordinate reference system.
type Point3D struct {
	SRID int64
	X    float64
	Y    float64
	Z    float64
}

func (*Point3D) TagByte() byte  { return TagPoint3D }
func (*Point3D) NumFields() int { return 4 }

func (p *Point3D) WriteBody(w io.Writer) (int, error) {
	total, err := packstream.EncodeInt(w, p.SRID)
	if err != nil {
		return total, err
	}
	for _, c := range []float64{p.X, p.Y, p.Z} {
		n, err := packstream.EncodeFloat(w, c)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (p *Point3D) ReadBody(r io.Reader) error {
	srid, err := packstream.DecodeInt(r)
	if err != nil {
		return err
	}
	for _, c := range []*float64{&p.X, &p.Y, &p.Z} {
		v, err := packstream.DecodeFloat(r)
		if err != nil {
			return err
		}
		*c = v
	}
	p.SRID = srid
	return nil
}
