package lower

import (
	"fmt"

	lltypes "github.com/llir/llvm/ir/types"

	"ember/internal/types"
)

// LowerRecord lowers a record (struct/class) type.
//
// The slot is published with an opaque named struct BEFORE any field type is
// lowered. A field that refers back to the record (directly or through a
// pointer, array or vector) then finds the slot populated instead of
// recursing forever; the struct body is filled in afterwards. Panics when id
// is not a canonical record.
func (l *Lowering) LowerRecord(id types.TypeID) *Lowered {
	tt := l.Types.MustLookup(id)
	if tt.Kind != types.KindRecord {
		panic(fmt.Sprintf("lower: LowerRecord on %s type#%d", tt.Kind, id))
	}
	l.checkCanonical(id)
	info, _ := l.Types.RecordInfo(id)

	st := &lltypes.StructType{TypeName: info.Name, Opaque: true}
	lw := l.store(KindAggregate, id, st)

	fields := make([]lltypes.Type, 0, len(info.Fields))
	for _, f := range info.Fields {
		fields = append(fields, l.MemType(f.Type))
	}
	st.Fields = fields
	st.Opaque = false
	return lw
}
