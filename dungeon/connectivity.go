package dungeon

// IsConnected reports whether every open cell of the room (a cell with at
// least one side that is not a wall) can be reached from every other one by
// crossing Empty or Door sides. A room without open cells is connected.
//
// Time: O(W·H). Memory: O(W·H) for the seen flags and the queue.
func (r *Room) IsConnected() bool {
	open := 0
	start := -1
	for y := r.top; y < r.top+r.height; y++ {
		for x := r.left; x < r.left+r.width; x++ {
			if !r.snapshot(x, y).IsSolid() {
				if start < 0 {
					start = r.index(x, y)
				}
				open++
			}
		}
	}
	if open == 0 {
		return true
	}

	return len(r.reach(start)) == open
}

// reach collects the local indices of every cell reachable from start.
func (r *Room) reach(start int) []int {
	seen := make([]bool, r.width*r.height)
	seen[start] = true
	queue := []int{start}

	for qi := 0; qi < len(queue); qi++ {
		x, y := r.coordinate(queue[qi])
		st := r.grid.at(x, y)
		for _, d := range Directions {
			if st.sides[d] == Wall || !r.hasAdjacent(x, y, d) {
				continue
			}
			dx, dy := d.Offset()
			ni := r.index(x+dx, y+dy)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, ni)
			}
		}
	}
	return queue
}

// index maps absolute co-ordinates to a row-major index local to the room.
func (r *Room) index(x, y int) int {
	return (y-r.top)*r.width + x - r.left
}

// coordinate converts a local row-major index back to absolute co-ordinates.
func (r *Room) coordinate(idx int) (x, y int) {
	return r.left + idx%r.width, r.top + idx/r.width
}
