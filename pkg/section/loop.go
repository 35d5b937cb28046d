package section

import v3 "github.com/deadsy/sdfx/vec/v3"

// minLoopLen is three distinct points plus the closing repeat.
const minLoopLen = 4

// chain is an open polyline that grows at both ends. front holds the
// points before the seed in reverse order.
type chain struct {
	front []v3.Vec
	back  []v3.Vec
}

func (c *chain) len() int { return len(c.front) + len(c.back) }

func (c *chain) head() v3.Vec {
	if len(c.front) > 0 {
		return c.front[len(c.front)-1]
	}
	return c.back[0]
}

func (c *chain) tail() v3.Vec { return c.back[len(c.back)-1] }

func (c *chain) loop() Loop {
	l := make(Loop, 0, c.len()+1)
	for i := len(c.front) - 1; i >= 0; i-- {
		l = append(l, c.front[i])
	}
	return append(l, c.back...)
}

// AssembleLoops stitches unordered segments into closed loops.
//
// Segments are consumed greedily: a seed is taken and the pool is
// rescanned for any segment sharing an endpoint (within 1e-6) with the
// current head or tail until none does or the chain closes on itself.
// Open chains are closed by repeating their head. Loops with fewer than
// four points are dropped. The cost is quadratic in the segment count.
func AssembleLoops(segs []Segment) []Loop {
	pool := make([]Segment, len(segs))
	copy(pool, segs)

	var loops []Loop
	for len(pool) > 0 {
		seed := pool[0]
		pool = pool[1:]
		c := &chain{back: []v3.Vec{seed[0], seed[1]}}

		for c.len() <= 2 || !near(c.head(), c.tail()) {
			i, p, atHead, ok := findAdjacent(pool, c.head(), c.tail())
			if !ok {
				break
			}
			pool = append(pool[:i], pool[i+1:]...)
			if atHead {
				c.front = append(c.front, p)
			} else {
				c.back = append(c.back, p)
			}
		}

		l := c.loop()
		if !near(l[0], l[len(l)-1]) {
			l = append(l, l[0])
		}
		if len(l) < minLoopLen {
			continue
		}
		loops = append(loops, l)
	}
	return loops
}

// findAdjacent returns the first pooled segment touching head or tail,
// together with its far endpoint and which end it attaches to.
func findAdjacent(pool []Segment, head, tail v3.Vec) (int, v3.Vec, bool, bool) {
	for i, s := range pool {
		switch {
		case near(s[0], tail):
			return i, s[1], false, true
		case near(s[1], tail):
			return i, s[0], false, true
		case near(s[0], head):
			return i, s[1], true, true
		case near(s[1], head):
			return i, s[0], true, true
		}
	}
	return 0, v3.Vec{}, false, false
}
