package knull

// Omit returns a copy of n without null mapping entries and null sequence
// elements, at every depth.
func Omit(n Node) Node {
	switch n.kind {
	case KindSequence:
		items := make([]Node, 0, len(n.seq))
		for _, item := range n.seq {
			if item.IsNull() {
				continue
			}
			items = append(items, Omit(item))
		}
		return Sequence(items...)
	case KindMapping:
		m := make(map[string]Node, len(n.mapping))
		for k, v := range n.mapping {
			if v.IsNull() {
				continue
			}
			m[k] = Omit(v)
		}
		return Mapping(m)
	}
	return n
}

// OmitNullables strips nulls from v, see FromAny for how v is read. The
// result shares no containers with v, scalars are returned as they are.
func OmitNullables(v any) any {
	return Omit(FromAny(v)).Any()
}
