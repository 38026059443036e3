package coding

import (
	"github.com/tengyifei/llcpptransformer/errors"
)

// Validate checks the cross-dialect invariants of a descriptor tree: Alt
// reciprocity on aggregates, field Alt wiring, arm-count equality and
// ordinal bijectivity on unions, and data-offset legality. It follows
// element, pointee, and Alt edges from root and visits each descriptor
// once.
//
// Validation is a load-time concern; the transformer assumes tables that
// would pass it.
func Validate(root *Type) error {
	v := validator{seen: make(map[*Type]bool)}
	return v.check(root, nil)
}

type validator struct {
	seen map[*Type]bool
}

func (v *validator) check(t *Type, path []string) error {
	if t == nil || v.seen[t] {
		return nil
	}
	v.seen[t] = true
	if t.Name != "" {
		path = append(path, t.Name)
	}

	switch t.Kind {
	case KindStruct:
		return v.checkStruct(t, path)
	case KindUnion:
		return v.checkUnion(t, path)
	case KindStructPointer, KindUnionPointer:
		if t.Element == nil {
			return errors.InvalidTable(path, "%s has no pointee", t.Kind)
		}
		return v.check(t.Element, path)
	case KindArray, KindVector:
		if t.Alt == nil {
			return errors.InvalidTable(path, "%s has no alt descriptor", t.Kind)
		}
		if t.Alt.Alt != t {
			return errors.InvalidTable(path, "%s alt is not reciprocal", t.Kind)
		}
		if err := v.check(t.Element, path); err != nil {
			return err
		}
		return v.check(t.Alt, path)
	case KindExtensibleUnion:
		for i := range t.Arms {
			if t.Arms[i].Ordinal == 0 {
				return errors.InvalidTable(path, "arm %d has ordinal 0", i+1)
			}
			if err := v.check(t.Arms[i].Type, path); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

func (v *validator) checkStruct(t *Type, path []string) error {
	alt := t.Alt
	if alt == nil {
		return errors.InvalidTable(path, "struct has no alt descriptor")
	}
	if alt.Alt != t {
		return errors.InvalidTable(path, "struct alt is not reciprocal")
	}
	if alt.Kind != KindStruct {
		return errors.InvalidTable(path, "struct alt has kind %s", alt.Kind)
	}
	if len(alt.Fields) != len(t.Fields) {
		return errors.InvalidTable(path, "field counts differ: %d vs %d", len(t.Fields), len(alt.Fields))
	}
	for i := range t.Fields {
		f := &t.Fields[i]
		if (f.Type == nil) != (alt.Fields[i].Type == nil) {
			return errors.InvalidTable(path, "field %d is plain data in one dialect only", i)
		}
		if f.Type == nil {
			continue
		}
		if f.Alt != &alt.Fields[i] {
			return errors.InvalidTable(path, "field %d alt does not point into the alt struct", i)
		}
		if err := v.check(f.Type, path); err != nil {
			return err
		}
	}
	return v.check(alt, path)
}

func (v *validator) checkUnion(t *Type, path []string) error {
	alt := t.Alt
	if alt == nil {
		return errors.InvalidTable(path, "union has no alt descriptor")
	}
	if alt.Alt != t {
		return errors.InvalidTable(path, "union alt is not reciprocal")
	}
	if alt.Kind != KindUnion {
		return errors.InvalidTable(path, "union alt has kind %s", alt.Kind)
	}
	if len(alt.Arms) != len(t.Arms) {
		return errors.InvalidTable(path, "arm counts differ: %d vs %d", len(t.Arms), len(alt.Arms))
	}
	if t.DataOffset != 4 && t.DataOffset != 8 {
		return errors.InvalidTable(path, "data offset %d is neither 4 nor 8", t.DataOffset)
	}

	ordinals := make(map[uint32]int, len(t.Arms))
	for i := range t.Arms {
		ord := t.Arms[i].Ordinal
		if ord == 0 {
			return errors.InvalidTable(path, "arm %d has ordinal 0", i+1)
		}
		if prev, dup := ordinals[ord]; dup {
			return errors.InvalidTable(path, "arms %d and %d share ordinal 0x%08x", prev+1, i+1, ord)
		}
		ordinals[ord] = i
		if alt.Arms[i].Ordinal != ord {
			return errors.InvalidTable(path, "arm %d ordinal mismatch: 0x%08x vs 0x%08x", i+1, ord, alt.Arms[i].Ordinal)
		}
		if (t.Arms[i].Type == nil) != (alt.Arms[i].Type == nil) {
			return errors.InvalidTable(path, "arm %d is plain data in one dialect only", i+1)
		}
		if err := v.check(t.Arms[i].Type, path); err != nil {
			return err
		}
	}
	return v.check(alt, path)
}
