package fgb

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Hand-kept FlatBuffers table accessors for the FlatGeobuf header schema
// (header.fbs, spec version 3). Field slots follow the schema declaration
// order: vtable offset for field i is 4 + 2*i.

type flatHeader struct {
	tab flatbuffers.Table
}

func rootHeader(buf []byte) *flatHeader {
	n := flatbuffers.GetUOffsetT(buf)
	h := &flatHeader{}
	h.tab.Bytes = buf
	h.tab.Pos = n
	return h
}

func (h *flatHeader) Name() string {
	if o := flatbuffers.UOffsetT(h.tab.Offset(4)); o != 0 {
		return h.tab.String(o + h.tab.Pos)
	}
	return ""
}

func (h *flatHeader) EnvelopeLength() int {
	if o := flatbuffers.UOffsetT(h.tab.Offset(6)); o != 0 {
		return h.tab.VectorLen(o)
	}
	return 0
}

func (h *flatHeader) Envelope(j int) float64 {
	if o := flatbuffers.UOffsetT(h.tab.Offset(6)); o != 0 {
		a := h.tab.Vector(o)
		return h.tab.GetFloat64(a + flatbuffers.UOffsetT(j)*8)
	}
	return 0
}

func (h *flatHeader) GeometryType() byte {
	if o := flatbuffers.UOffsetT(h.tab.Offset(8)); o != 0 {
		return h.tab.GetByte(o + h.tab.Pos)
	}
	return 0
}

func (h *flatHeader) HasZ() bool {
	if o := flatbuffers.UOffsetT(h.tab.Offset(10)); o != 0 {
		return h.tab.GetBool(o + h.tab.Pos)
	}
	return false
}

func (h *flatHeader) HasM() bool {
	if o := flatbuffers.UOffsetT(h.tab.Offset(12)); o != 0 {
		return h.tab.GetBool(o + h.tab.Pos)
	}
	return false
}

func (h *flatHeader) HasT() bool {
	if o := flatbuffers.UOffsetT(h.tab.Offset(14)); o != 0 {
		return h.tab.GetBool(o + h.tab.Pos)
	}
	return false
}

func (h *flatHeader) HasTM() bool {
	if o := flatbuffers.UOffsetT(h.tab.Offset(16)); o != 0 {
		return h.tab.GetBool(o + h.tab.Pos)
	}
	return false
}

func (h *flatHeader) ColumnsLength() int {
	if o := flatbuffers.UOffsetT(h.tab.Offset(18)); o != 0 {
		return h.tab.VectorLen(o)
	}
	return 0
}

func (h *flatHeader) Columns(obj *flatColumn, j int) bool {
	if o := flatbuffers.UOffsetT(h.tab.Offset(18)); o != 0 {
		x := h.tab.Vector(o)
		x += flatbuffers.UOffsetT(j) * 4
		x = h.tab.Indirect(x)
		obj.tab.Bytes = h.tab.Bytes
		obj.tab.Pos = x
		return true
	}
	return false
}

func (h *flatHeader) FeaturesCount() uint64 {
	if o := flatbuffers.UOffsetT(h.tab.Offset(20)); o != 0 {
		return h.tab.GetUint64(o + h.tab.Pos)
	}
	return 0
}

func (h *flatHeader) IndexNodeSize() uint16 {
	if o := flatbuffers.UOffsetT(h.tab.Offset(22)); o != 0 {
		return h.tab.GetUint16(o + h.tab.Pos)
	}
	// Schema default: 16-way packed R-tree.
	return 16
}

func (h *flatHeader) Crs(obj *flatCrs) *flatCrs {
	if o := flatbuffers.UOffsetT(h.tab.Offset(24)); o != 0 {
		x := h.tab.Indirect(o + h.tab.Pos)
		if obj == nil {
			obj = new(flatCrs)
		}
		obj.tab.Bytes = h.tab.Bytes
		obj.tab.Pos = x
		return obj
	}
	return nil
}

func (h *flatHeader) Title() string {
	if o := flatbuffers.UOffsetT(h.tab.Offset(26)); o != 0 {
		return h.tab.String(o + h.tab.Pos)
	}
	return ""
}

func (h *flatHeader) Description() string {
	if o := flatbuffers.UOffsetT(h.tab.Offset(28)); o != 0 {
		return h.tab.String(o + h.tab.Pos)
	}
	return ""
}

func (h *flatHeader) Metadata() string {
	if o := flatbuffers.UOffsetT(h.tab.Offset(30)); o != 0 {
		return h.tab.String(o + h.tab.Pos)
	}
	return ""
}

type flatColumn struct {
	tab flatbuffers.Table
}

func (c *flatColumn) Name() string {
	if o := flatbuffers.UOffsetT(c.tab.Offset(4)); o != 0 {
		return c.tab.String(o + c.tab.Pos)
	}
	return ""
}

func (c *flatColumn) Type() byte {
	if o := flatbuffers.UOffsetT(c.tab.Offset(6)); o != 0 {
		return c.tab.GetByte(o + c.tab.Pos)
	}
	return 0
}

func (c *flatColumn) Title() string {
	if o := flatbuffers.UOffsetT(c.tab.Offset(8)); o != 0 {
		return c.tab.String(o + c.tab.Pos)
	}
	return ""
}

func (c *flatColumn) Description() string {
	if o := flatbuffers.UOffsetT(c.tab.Offset(10)); o != 0 {
		return c.tab.String(o + c.tab.Pos)
	}
	return ""
}

func (c *flatColumn) Width() int32 {
	if o := flatbuffers.UOffsetT(c.tab.Offset(12)); o != 0 {
		return c.tab.GetInt32(o + c.tab.Pos)
	}
	return -1
}

func (c *flatColumn) Precision() int32 {
	if o := flatbuffers.UOffsetT(c.tab.Offset(14)); o != 0 {
		return c.tab.GetInt32(o + c.tab.Pos)
	}
	return -1
}

func (c *flatColumn) Scale() int32 {
	if o := flatbuffers.UOffsetT(c.tab.Offset(16)); o != 0 {
		return c.tab.GetInt32(o + c.tab.Pos)
	}
	return -1
}

func (c *flatColumn) Nullable() bool {
	if o := flatbuffers.UOffsetT(c.tab.Offset(18)); o != 0 {
		return c.tab.GetBool(o + c.tab.Pos)
	}
	// Schema default: columns are nullable unless declared otherwise.
	return true
}

func (c *flatColumn) Unique() bool {
	if o := flatbuffers.UOffsetT(c.tab.Offset(20)); o != 0 {
		return c.tab.GetBool(o + c.tab.Pos)
	}
	return false
}

func (c *flatColumn) PrimaryKey() bool {
	if o := flatbuffers.UOffsetT(c.tab.Offset(22)); o != 0 {
		return c.tab.GetBool(o + c.tab.Pos)
	}
	return false
}

type flatCrs struct {
	tab flatbuffers.Table
}

func (c *flatCrs) Org() string {
	if o := flatbuffers.UOffsetT(c.tab.Offset(4)); o != 0 {
		return c.tab.String(o + c.tab.Pos)
	}
	return ""
}

func (c *flatCrs) Code() int32 {
	if o := flatbuffers.UOffsetT(c.tab.Offset(6)); o != 0 {
		return c.tab.GetInt32(o + c.tab.Pos)
	}
	return 0
}

func (c *flatCrs) Name() string {
	if o := flatbuffers.UOffsetT(c.tab.Offset(8)); o != 0 {
		return c.tab.String(o + c.tab.Pos)
	}
	return ""
}

func (c *flatCrs) Description() string {
	if o := flatbuffers.UOffsetT(c.tab.Offset(10)); o != 0 {
		return c.tab.String(o + c.tab.Pos)
	}
	return ""
}

func (c *flatCrs) Wkt() string {
	if o := flatbuffers.UOffsetT(c.tab.Offset(12)); o != 0 {
		return c.tab.String(o + c.tab.Pos)
	}
	return ""
}

func (c *flatCrs) CodeString() string {
	if o := flatbuffers.UOffsetT(c.tab.Offset(14)); o != 0 {
		return c.tab.String(o + c.tab.Pos)
	}
	return ""
}
