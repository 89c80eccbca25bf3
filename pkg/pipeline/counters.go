package pipeline

// Counters accumulates per-draw statistics: how many triangles were
// considered, how many pixels were shaded, and how many Draw calls
// contributed. Add implements the accumulation the original's
// pipeline_counters::operator+= provided, so host code driving multiple
// Draw calls per frame (one per mesh, say) can keep a running frame total.
type Counters struct {
	Triangles uint64
	Pixels    uint64
	Draws     uint64
}

// Add accumulates o into c.
func (c *Counters) Add(o Counters) {
	c.Triangles += o.Triangles
	c.Pixels += o.Pixels
	c.Draws += o.Draws
}
