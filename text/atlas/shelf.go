package atlas

// shelfPacker places glyph rectangles on horizontal shelves.
//
// Rectangles go left to right on the current shelf until the row is full,
// then a new shelf starts below the tallest item so far. Feeding glyphs
// sorted by decreasing height keeps the wasted space small.
type shelfPacker struct {
	width   int
	height  int
	gap     int // free pixels between neighbours and around the border
	shelves []shelf

	usedArea int
}

// shelf is a horizontal strip of the atlas.
type shelf struct {
	y      int // top of the strip
	height int // tallest item placed on it
	x      int // next free column
}

func newShelfPacker(width, height, gap int) *shelfPacker {
	return &shelfPacker{
		width:   width,
		height:  height,
		gap:     gap,
		shelves: make([]shelf, 0, 16),
	}
}

// allocate reserves a w x h rectangle and returns its top-left corner.
// ok is false when the rectangle does not fit.
func (p *shelfPacker) allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + p.gap
	paddedH := h + p.gap

	for i := range p.shelves {
		s := &p.shelves[i]
		if s.x+paddedW > p.width {
			continue
		}
		if h > s.height {
			// Only the last shelf can grow downwards.
			if i != len(p.shelves)-1 || s.y+paddedH > p.height {
				continue
			}
			s.height = h
		}
		x, y = s.x, s.y
		s.x += paddedW
		p.usedArea += w * h
		return x, y, true
	}

	newY := p.gap
	if n := len(p.shelves); n > 0 {
		last := p.shelves[n-1]
		newY = last.y + last.height + p.gap
	}
	if p.gap+paddedW > p.width || newY+paddedH > p.height {
		return -1, -1, false
	}
	p.shelves = append(p.shelves, shelf{y: newY, height: h, x: p.gap + paddedW})
	p.usedArea += w * h
	return p.gap, newY, true
}

// reset clears all allocations and resizes the packing area.
func (p *shelfPacker) reset(width, height int) {
	p.width, p.height = width, height
	p.shelves = p.shelves[:0]
	p.usedArea = 0
}

// utilization returns the share of the area covered by allocations.
func (p *shelfPacker) utilization() float64 {
	if p.width <= 0 || p.height <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(p.width*p.height)
}
