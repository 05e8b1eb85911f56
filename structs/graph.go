package structs

import (
	"io"

	"github.com/graphwire/packstream/packstream"
)

// Node is a graph node: identity, labels and properties.
type Node struct {
	ID         int64
	Labels     []string
	Properties Dictionary
}

// NewNode returns a node with the given identity and no labels or
// properties.
func NewNode(id int64) *Node {
	return &Node{ID: id, Properties: Dictionary{}}
}

func (*Node) TagByte() byte  { return TagNode }
func (*Node) NumFields() int { return 3 }

func (n *Node) WriteBody(w io.Writer) (int, error) {
	total, err := packstream.EncodeInt(w, n.ID)
	if err != nil {
		return total, err
	}
	ln, err := packstream.EncodeSlice(w, n.Labels, packstream.EncodeString)
	total += ln
	if err != nil {
		return total, err
	}
	pn, err := packstream.EncodeMap(w, n.Properties, encodeValue)
	return total + pn, err
}

func (n *Node) ReadBody(r io.Reader) error {
	id, err := packstream.DecodeInt(r)
	if err != nil {
		return err
	}
	labels, err := packstream.DecodeSlice(r, packstream.DecodeString)
	if err != nil {
		return err
	}
	props, err := packstream.DecodeMap(r, decodeValue)
	if err != nil {
		return err
	}
	n.ID, n.Labels, n.Properties = id, labels, props
	return nil
}

// Relationship is a directed, typed edge between two nodes.
type Relationship struct {
	ID          int64
	StartNodeID int64
	EndNodeID   int64
	Type        string
	Properties  Dictionary
}

// NewRelationship returns an edge of the given type from start to end.
func NewRelationship(id int64, relType string, start, end int64) *Relationship {
	return &Relationship{
		ID:          id,
		StartNodeID: start,
		EndNodeID:   end,
		Type:        relType,
		Properties:  Dictionary{},
	}
}

func (*Relationship) TagByte() byte  { return TagRelationship }
func (*Relationship) NumFields() int { return 5 }

func (rel *Relationship) WriteBody(w io.Writer) (int, error) {
	total := 0
	for _, id := range []int64{rel.ID, rel.StartNodeID, rel.EndNodeID} {
		n, err := packstream.EncodeInt(w, id)
		total += n
		if err != nil {
			return total, err
		}
	}
	tn, err := packstream.EncodeString(w, rel.Type)
	total += tn
	if err != nil {
		return total, err
	}
	pn, err := packstream.EncodeMap(w, rel.Properties, encodeValue)
	return total + pn, err
}

func (rel *Relationship) ReadBody(r io.Reader) error {
	ids := make([]int64, 3)
	for i := range ids {
		id, err := packstream.DecodeInt(r)
		if err != nil {
			return err
		}
		ids[i] = id
	}
	relType, err := packstream.DecodeString(r)
	if err != nil {
		return err
	}
	props, err := packstream.DecodeMap(r, decodeValue)
	if err != nil {
		return err
	}
	rel.ID, rel.StartNodeID, rel.EndNodeID = ids[0], ids[1], ids[2]
	rel.Type, rel.Properties = relType, props
	return nil
}

// UnboundRelationship is a relationship stripped of its endpoints, as it
// appears inside a Path.
type UnboundRelationship struct {
	ID         int64
	Type       string
	Properties Dictionary
}

func (*UnboundRelationship) TagByte() byte  { return TagUnboundRelationship }
func (*UnboundRelationship) NumFields() int { return 3 }

func (rel *UnboundRelationship) WriteBody(w io.Writer) (int, error) {
	total, err := packstream.EncodeInt(w, rel.ID)
	if err != nil {
		return total, err
	}
	tn, err := packstream.EncodeString(w, rel.Type)
	total += tn
	if err != nil {
		return total, err
	}
	pn, err := packstream.EncodeMap(w, rel.Properties, encodeValue)
	return total + pn, err
}

func (rel *UnboundRelationship) ReadBody(r io.Reader) error {
	id, err := packstream.DecodeInt(r)
	if err != nil {
		return err
	}
	relType, err := packstream.DecodeString(r)
	if err != nil {
		return err
	}
	props, err := packstream.DecodeMap(r, decodeValue)
	if err != nil {
		return err
	}
	rel.ID, rel.Type, rel.Properties = id, relType, props
	return nil
}

// Path is an alternating sequence of nodes and relationships. Indices
// describe the traversal order over the nodes and relationships lists.
type Path struct {
	Nodes         []Node
	Relationships []Relationship
	Indices       []int64
}

func (*Path) TagByte() byte  { return TagPath }
func (*Path) NumFields() int { return 3 }

func (p *Path) WriteBody(w io.Writer) (int, error) {
	total, err := packstream.EncodeSlice(w, p.Nodes, func(w io.Writer, n Node) (int, error) {
		return packstream.EncodeStruct(w, &n)
	})
	if err != nil {
		return total, err
	}
	rn, err := packstream.EncodeSlice(w, p.Relationships, func(w io.Writer, rel Relationship) (int, error) {
		return packstream.EncodeStruct(w, &rel)
	})
	total += rn
	if err != nil {
		return total, err
	}
	in, err := packstream.EncodeSlice(w, p.Indices, packstream.EncodeInt)
	return total + in, err
}

func (p *Path) ReadBody(r io.Reader) error {
	nodes, err := packstream.DecodeSlice(r, func(r io.Reader) (Node, error) {
		var n Node
		err := packstream.DecodeStruct(r, &n)
		return n, err
	})
	if err != nil {
		return err
	}
	rels, err := packstream.DecodeSlice(r, func(r io.Reader) (Relationship, error) {
		var rel Relationship
		err := packstream.DecodeStruct(r, &rel)
		return rel, err
	})
	if err != nil {
		return err
	}
	indices, err := packstream.DecodeSlice(r, packstream.DecodeInt)
	if err != nil {
		return err
	}
	p.Nodes, p.Relationships, p.Indices = nodes, rels, indices
	return nil
}
