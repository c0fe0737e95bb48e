package edgelist

// Pairs decodes an edge-list buffer back into (start, end) pairs in order.
// Returns ErrMalformedEdgeList when len(buf) is odd.
func Pairs(buf []int) ([][2]int, error) {
	if len(buf)%2 != 0 {
		return nil, ErrMalformedEdgeList
	}
	out := make([][2]int, 0, len(buf)/2)
	for i := 0; i < len(buf); i += 2 {
		out = append(out, [2]int{buf[i], buf[i+1]})
	}
	return out, nil
}

// resolveVertex reads both accessors of a vertex descriptor. via names the
// edge accessor the vertex came from, or is empty for the vertex list. The
// textual id is not used beyond confirming it is available.
func resolveVertex(v Vertex, role string, index int, via string) (int, error) {
	field := func(name string) string {
		if via == "" {
			return name
		}
		return via + "." + name
	}
	if isNil(v) {
		nilField := via
		if via == "" {
			nilField = "element"
		}
		return 0, &LookupError{Role: role, Index: index, Field: nilField, Err: ErrNilDescriptor}
	}
	id, err := v.VertexID()
	if err != nil {
		return 0, &LookupError{Role: role, Index: index, Field: field("VertexID"), Err: err}
	}
	if _, err = v.ExternalID(); err != nil {
		return 0, &LookupError{Role: role, Index: index, Field: field("ExternalID"), Err: err}
	}
	return id, nil
}

// encode fills a buffer of length 2·len(edges). The edge index i and the
// write index w advance independently.
func encode(edges []Edge) ([]int, error) {
	buf := make([]int, 2*len(edges))
	w := 0
	for i, e := range edges {
		if isNil(e) {
			return nil, &LookupError{Role: "edge", Index: i, Field: "element", Err: ErrNilDescriptor}
		}

		start, err := e.StartVertex()
		if err != nil {
			return nil, &LookupError{Role: "edge", Index: i, Field: "StartVertex", Err: err}
		}
		startID, err := resolveVertex(start, "edge", i, "StartVertex")
		if err != nil {
			return nil, err
		}

		end, err := e.EndVertex()
		if err != nil {
			return nil, &LookupError{Role: "edge", Index: i, Field: "EndVertex", Err: err}
		}
		endID, err := resolveVertex(end, "edge", i, "EndVertex")
		if err != nil {
			return nil, err
		}

		buf[w] = startID
		buf[w+1] = endID
		w += 2
	}
	return buf, nil
}
