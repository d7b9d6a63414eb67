package grid

// Labels assigns a component number to every free cell; walls get -1.
// Two free cells share a label iff a chain of Neighbors moves joins them.
type Labels struct {
	label []int32
	count int
}

// Components labels the 8-connected regions of free cells using the same
// corner policy as Adaptor.Neighbors. Labels are numbered 0..Count()-1 in
// row-major order of each region's first cell.
//
// Time:   O(W·H·8).
// Memory: O(W·H).
func (g *Grid) Components() *Labels {
	total := g.Len()
	lb := &Labels{label: make([]int32, total)}
	for i := range lb.label {
		lb.label[i] = -1
	}

	a := NewAdaptor(g)
	queue := make([]NodeID, 0, 64)
	for i := 0; i < total; i++ {
		if g.cells[i] != Free || lb.label[i] >= 0 {
			continue
		}
		// BFS flood from the first unlabelled free cell.
		cur := int32(lb.count)
		lb.count++
		lb.label[i] = cur
		queue = append(queue[:0], NodeID(i))
		for qi := 0; qi < len(queue); qi++ {
			for _, nb := range a.Neighbors(queue[qi]) {
				if lb.label[nb.ID] < 0 {
					lb.label[nb.ID] = cur
					queue = append(queue, nb.ID)
				}
			}
		}
	}

	return lb
}

// Count returns the number of free-space components.
func (lb *Labels) Count() int { return lb.count }

// Label returns the component of id, or -1 for walls and invalid ids.
func (lb *Labels) Label(id NodeID) int {
	if id < 0 || int(id) >= len(lb.label) {
		return -1
	}

	return int(lb.label[id])
}

// Connected reports whether a and b are free cells of the same component.
func (lb *Labels) Connected(a, b NodeID) bool {
	la := lb.Label(a)

	return la >= 0 && la == lb.Label(b)
}
