package matching

// composite is a contracted odd-cardinality blossom: an ordered cyclic
// list of children (each a leaf vertex or a nested composite) together
// with, for every child, the vertex within that child used to link to
// its cyclic neighbours. This is the arena/slice representation spec
// §9's design notes call for in place of the original's intrusive
// doubly-linked sibling lists.
type composite[T Weight[T]] struct {
	children []nodeRef
	linkNext []int // linkNext[i]: vertex in children[i] linking to children[i+1]
	linkPrev []int // linkPrev[i]: vertex in children[i] linking to children[i-1]
	dual     T
}

// rootNode is a top-level blossom during one augmentation phase: either
// a bare vertex or a composite, labeled per the alternating-tree state
// machine (spec §4.B).
type rootNode[T Weight[T]] struct {
	top   nodeRef
	base  int // exposed/base vertex of this blossom
	match int // -1 if base is exposed, else base's matched partner (in another root)

	label label

	// Meaningful only while label == labelInner: the edge that
	// discovered this root during the extend-tree step.
	labelingVertex int // vertex in the OUTER ancestor root
	labeledVertex  int // vertex in THIS root

	// Meaningful only while label == labelOuter: the globally smallest
	// outer-outer resistance from this root to any other live outer
	// root, the other root achieving it, and the witnessing vertex
	// pair (self, other) — stored together so the pair is always
	// internally consistent even under resistance ties.
	minOuterRes   T
	minOuterOther int
	minOuterSelf  int
	minOuterPeer  int
}

// solver holds all state local to one ComputeMatching call. Nothing
// here survives past the call that produced it.
type solver[T Weight[T]] struct {
	g *Graph[T]
	n int

	dual            []T
	minOuterRes     []T   // meaningful for vertices whose root is not outer
	minOuterWitness []int // matching vertex id in some outer root, or -1

	roots    []*rootNode[T]
	live     []int // indices into roots currently top-level
	rootOf   []int // vertex id -> index into roots

	composites []*composite[T]
}

func newSolver[T Weight[T]](g *Graph[T]) *solver[T] {
	s := &solver[T]{
		g:               g,
		n:               g.n,
		dual:            make([]T, g.n),
		minOuterRes:     make([]T, g.n),
		minOuterWitness: make([]int, g.n),
		rootOf:          make([]int, g.n),
	}
	for v := 0; v < g.n; v++ {
		s.dual[v] = g.maxW
		r := &rootNode[T]{
			top:           leafRef(v),
			base:          v,
			match:         -1,
			minOuterOther: -1,
		}
		s.roots = append(s.roots, r)
		s.rootOf[v] = v
		s.live = append(s.live, v)
	}
	return s
}

// infinity returns a sentinel value strictly greater than any resistance
// or dual variable this call can ever produce: every weight is <= maxW
// and every dual variable/resistance stays within [0, 2*maxW], so 3*maxW
// is always safely out of range. When maxW is zero (an all-zero-weight
// graph) infinity is zero as well; every exposed vertex's dual is then
// zero, none labels outer, and runPhase returns false before any delta
// is chosen against it.
func (s *solver[T]) infinity() T {
	return s.g.maxW.Add(s.g.maxW).Add(s.g.maxW)
}

func (s *solver[T]) resistance(u, v int) T {
	return s.dual[u].Add(s.dual[v]).Sub(s.g.weights[u][v])
}

func (s *solver[T]) leaves(ref nodeRef) []int {
	if ref.isLeaf {
		return []int{ref.vertex}
	}
	c := s.composites[ref.comp]
	var out []int
	for _, ch := range c.children {
		out = append(out, s.leaves(ch)...)
	}
	return out
}

func (s *solver[T]) containsLeaf(ref nodeRef, v int) bool {
	if ref.isLeaf {
		return ref.vertex == v
	}
	c := s.composites[ref.comp]
	for _, ch := range c.children {
		if s.containsLeaf(ch, v) {
			return true
		}
	}
	return false
}

func (s *solver[T]) removeLive(ri int) {
	for i, x := range s.live {
		if x == ri {
			s.live[i] = s.live[len(s.live)-1]
			s.live = s.live[:len(s.live)-1]
			return
		}
	}
}

func (s *solver[T]) setRootOf(ref nodeRef, ri int) {
	for _, v := range s.leaves(ref) {
		s.rootOf[v] = ri
	}
}

// initializeLabeling assigns the starting label of every live root
// blossom at the top of an augmentation phase: FREE for a matched
// blossom, OUTER for an exposed blossom with nonzero dual, ZERO for an
// exposed blossom whose dual is already zero (spec §4.B).
func (s *solver[T]) initializeLabeling() {
	for _, ri := range s.live {
		r := s.roots[ri]
		r.labelingVertex, r.labeledVertex = -1, -1
		if r.match != -1 {
			r.label = labelFree
			continue
		}
		if s.dual[r.base].IsZero() {
			r.label = labelZero
		} else {
			r.label = labelOuter
		}
	}
	for v := 0; v < s.n; v++ {
		s.minOuterRes[v] = s.infinity()
		s.minOuterWitness[v] = -1
	}
}

// onNewOuterRoot recomputes the cross-blossom resistance witnesses
// touched by a root blossom that has just become OUTER: its relation to
// every other currently outer root, and its relation to every
// non-outer vertex. Recomputed from scratch each time rather than
// incrementally reusing a dissolved blossom's prior witnesses — see
// DESIGN.md for why.
func (s *solver[T]) onNewOuterRoot(ri int) {
	r := s.roots[ri]
	r.minOuterRes = s.infinity()
	r.minOuterOther = -1
	newLeaves := s.leaves(r.top)

	for _, oi := range s.live {
		if oi == ri || s.roots[oi].label != labelOuter {
			continue
		}
		other := s.roots[oi]
		for _, u := range newLeaves {
			for _, v := range s.leaves(other.top) {
				res := s.resistance(u, v)
				if res.Less(r.minOuterRes) {
					r.minOuterRes = res
					r.minOuterOther = oi
					r.minOuterSelf = u
					r.minOuterPeer = v
				}
				if res.Less(other.minOuterRes) {
					other.minOuterRes = res
					other.minOuterOther = ri
					other.minOuterSelf = v
					other.minOuterPeer = u
				}
			}
		}
	}

	for v := 0; v < s.n; v++ {
		if s.roots[s.rootOf[v]].label == labelOuter {
			continue
		}
		for _, ov := range newLeaves {
			res := s.resistance(v, ov)
			if res.Less(s.minOuterRes[v]) {
				s.minOuterRes[v] = res
				s.minOuterWitness[v] = ov
			}
		}
	}
}

func (s *solver[T]) initializeCrossEdges() {
	for _, ri := range s.live {
		if s.roots[ri].label == labelOuter {
			s.onNewOuterRoot(ri)
		}
	}
}

// runPhase runs one augmentation phase and returns true when it ends in
// an augmentation: either a new matched pair along an augmenting path,
// or, when an outer vertex's dual reaches zero, moving its tree's
// exposed vertex to that vertex. It returns false when no root labels
// outer, i.e. the matching is already maximum.
func (s *solver[T]) runPhase() bool {
	s.initializeLabeling()

	minOuterDual := s.infinity()
	outerVertex := -1
	for v := 0; v < s.n; v++ {
		if s.roots[s.rootOf[v]].label == labelOuter && s.dual[v].Less(minOuterDual) {
			minOuterDual = s.dual[v]
			outerVertex = v
		}
	}
	if outerVertex < 0 {
		return false
	}

	s.initializeCrossEdges()

	for {
		minOuterDual = s.infinity()
		for v := 0; v < s.n; v++ {
			if s.roots[s.rootOf[v]].label == labelOuter && s.dual[v].Less(minOuterDual) {
				minOuterDual = s.dual[v]
			}
		}

		minIORes, iorVertex := s.infinity(), -1
		for v := 0; v < s.n; v++ {
			lbl := s.roots[s.rootOf[v]].label
			if (lbl == labelFree || lbl == labelZero) && s.minOuterRes[v].Less(minIORes) {
				minIORes = s.minOuterRes[v]
				iorVertex = v
			}
		}

		minOORes, oorRoot := s.infinity(), -1
		for _, ri := range s.live {
			r := s.roots[ri]
			if r.label == labelOuter && r.minOuterOther != -1 && r.minOuterRes.Less(minOORes) {
				minOORes = r.minOuterRes
				oorRoot = ri
			}
		}
		minOORes = minOORes.Rsh(1)

		minInnerDual, innerRoot := s.infinity(), -1
		for _, ri := range s.live {
			r := s.roots[ri]
			if r.label == labelInner && !r.top.isLeaf {
				d := s.composites[r.top.comp].dual
				if d.Less(minInnerDual) {
					minInnerDual = d
					innerRoot = ri
				}
			}
		}
		minInnerDual = minInnerDual.Rsh(1)

		delta := minOuterDual
		which := 1
		if minIORes.Less(delta) {
			delta, which = minIORes, 2
		}
		if minOORes.Less(delta) {
			delta, which = minOORes, 3
		}
		if minInnerDual.Less(delta) {
			delta, which = minInnerDual, 4
		}

		s.applyDelta(delta)

		switch which {
		case 1:
			// An outer vertex's dual has reached zero: retire it as
			// the new exposed vertex of its tree (it becomes ZERO on
			// the next phase's labeling, available for direct
			// zero-resistance augmentation later).
			zeroVertex := -1
			for v := 0; v < s.n; v++ {
				if s.roots[s.rootOf[v]].label == labelOuter && s.dual[v].IsZero() {
					zeroVertex = v
					break
				}
			}
			s.augmentToSource(zeroVertex, -1)
			return true
		case 2:
			if s.roots[s.rootOf[iorVertex]].label == labelFree {
				s.extendTree(iorVertex)
				continue
			}
			// The resistance between a ZERO vertex and an OUTER
			// vertex is zero: augment directly between them.
			witness := s.minOuterWitness[iorVertex]
			s.augmentToSource(witness, iorVertex)
			s.augmentToSource(iorVertex, witness)
			return true
		case 3:
			if s.handleOuterOuterZero(oorRoot) {
				return true
			}
			continue
		case 4:
			s.expand(innerRoot)
			continue
		}
	}
}

func (s *solver[T]) applyDelta(delta T) {
	twice := delta.Add(delta)
	for v := 0; v < s.n; v++ {
		r := s.roots[s.rootOf[v]]
		switch r.label {
		case labelOuter:
			s.dual[v] = s.dual[v].Sub(delta)
		case labelInner:
			s.dual[v] = s.dual[v].Add(delta)
		default:
			s.minOuterRes[v] = s.minOuterRes[v].Sub(delta)
		}
	}
	for _, ri := range s.live {
		r := s.roots[ri]
		switch r.label {
		case labelOuter:
			r.minOuterRes = r.minOuterRes.Sub(twice)
			if !r.top.isLeaf {
				s.composites[r.top.comp].dual = s.composites[r.top.comp].dual.Add(twice)
			}
		case labelInner:
			if !r.top.isLeaf {
				s.composites[r.top.comp].dual = s.composites[r.top.comp].dual.Sub(twice)
			}
		}
	}
}

// extendTree grows the alternating tree through a zero-resistance
// inner-outer edge: v (a FREE, i.e. matched, vertex) becomes inner and
// its matched partner's root becomes outer.
func (s *solver[T]) extendTree(v int) {
	r := s.roots[s.rootOf[v]]
	r.label = labelInner
	r.labelingVertex = s.minOuterWitness[v]
	r.labeledVertex = v
	matchRi := s.rootOf[r.match]
	mr := s.roots[matchRi]
	mr.label = labelOuter
	s.onNewOuterRoot(matchRi)
}

// handleOuterOuterZero resolves a zero-resistance outer-outer edge:
// either augmenting the matching (the two sides' alternating trees
// belong to different exposed roots) or contracting a new blossom (they
// meet at a common ancestor).
func (s *solver[T]) handleOuterOuterZero(ri int) bool {
	r := s.roots[ri]
	v0, v1 := r.minOuterSelf, r.minOuterPeer

	lca, pos0, pos1, hops0, hops1, found := s.findLCA(v0, v1)
	if !found {
		s.augmentToSource(v0, v1)
		s.augmentToSource(v1, v0)
		return true
	}
	s.contract(hops0, pos0, hops1, pos1, lca)
	return false
}

type hop struct {
	root int
	vIn  int
	vOut int
}

func (s *solver[T]) climb(v int) []hop {
	var hops []hop
	cur := s.rootOf[v]
	vIn := v
	for {
		r := s.roots[cur]
		if r.match == -1 {
			hops = append(hops, hop{root: cur, vIn: vIn, vOut: -1})
			return hops
		}
		vOut := r.base
		hops = append(hops, hop{root: cur, vIn: vIn, vOut: vOut})
		matchRi := s.rootOf[r.match]
		mr := s.roots[matchRi]
		hops = append(hops, hop{root: matchRi, vIn: r.match, vOut: mr.labeledVertex})
		next := s.rootOf[mr.labelingVertex]
		vIn = mr.labelingVertex
		cur = next
	}
}

// findLCA climbs from v0 and from v1 up their alternating trees (each
// strictly toward its tree's unique exposed root) and reports the
// nearest outer blossom common to both climbs, if any.
func (s *solver[T]) findLCA(v0, v1 int) (lcaRoot, pos0, pos1 int, hops0, hops1 []hop, found bool) {
	hops0 = s.climb(v0)
	hops1 = s.climb(v1)

	pos := map[int]int{}
	for i := 0; i < len(hops0); i += 2 {
		pos[hops0[i].root] = i
	}
	for i := 0; i < len(hops1); i += 2 {
		if p, ok := pos[hops1[i].root]; ok {
			return hops1[i].root, p, i, hops0, hops1, true
		}
	}
	return 0, 0, 0, hops0, hops1, false
}

// contract builds a new composite root out of the odd cycle running
// from the lowest common ancestor down one side to v0, across the
// zero-resistance edge to v1, and back up the other side to the same
// ancestor (spec §4.B's blossom formation).
func (s *solver[T]) contract(hops0 []hop, pos0 int, hops1 []hop, pos1 int, lca int) {
	m := 1 + pos0 + pos1
	children := make([]nodeRef, m)
	linkNext := make([]int, m)
	linkPrev := make([]int, m)

	children[0] = s.roots[lca].top
	linkNext[0] = hops0[pos0].vIn
	linkPrev[0] = hops1[pos1].vIn

	for i := 1; i <= pos0; i++ {
		h := hops0[pos0-i]
		children[i] = s.roots[h.root].top
		linkPrev[i] = h.vOut
		linkNext[i] = h.vIn
	}
	for k := 0; k < pos1; k++ {
		i := pos0 + 1 + k
		h := hops1[k]
		children[i] = s.roots[h.root].top
		linkNext[i] = h.vOut
		linkPrev[i] = h.vIn
	}

	c := &composite[T]{children: children, linkNext: linkNext, linkPrev: linkPrev}
	s.composites = append(s.composites, c)
	compIdx := len(s.composites) - 1

	// Remove the consumed roots (including lca) from the live set.
	consumed := map[int]bool{lca: true}
	for i := 0; i <= pos0; i++ {
		consumed[hops0[i].root] = true
	}
	for i := 0; i <= pos1 && i < len(hops1); i++ {
		consumed[hops1[i].root] = true
	}
	for ri := range consumed {
		s.removeLive(ri)
	}

	newRoot := &rootNode[T]{
		top:   compRef(compIdx),
		base:  s.roots[lca].base,
		match: s.roots[lca].match,
		label: labelOuter,
	}
	s.roots = append(s.roots, newRoot)
	newRi := len(s.roots) - 1
	s.live = append(s.live, newRi)
	s.setRootOf(newRoot.top, newRi)
	s.onNewOuterRoot(newRi)
}

// expand dissolves the top-level composite blossom of an inner root
// whose dual has reached zero, promoting each of its children to a
// fresh root blossom (spec §4.B's blossom dissolution).
func (s *solver[T]) expand(ri int) {
	r := s.roots[ri]
	c := s.composites[r.top.comp]
	n := len(c.children)

	rci := s.findChildIndex(c, r.base)
	cci := s.findChildIndex(c, r.labeledVertex)

	d := (cci - rci + n) % n
	connectForward := d%2 == 0

	s.removeLive(ri)

	linksToNext := false
	isFree := false
	for i := 0; i < n; i++ {
		ci := (rci + i) % n
		isRootChild := i == 0
		isConnectChild := ci == cci

		if isConnectChild && !connectForward {
			isFree = false
		}

		var lbl label
		switch {
		case isFree:
			lbl = labelFree
		case (linksToNext != connectForward) || isRootChild:
			lbl = labelInner
		default:
			lbl = labelOuter
		}

		next := (ci + 1) % n
		prev := (ci - 1 + n) % n

		var base, match, labelingV, labeledV int = -1, -1, -1, -1
		if isRootChild {
			base, match = r.base, r.match
		} else if linksToNext {
			base, match = c.linkNext[ci], c.linkPrev[next]
		} else {
			base, match = c.linkPrev[ci], c.linkNext[prev]
		}

		if isConnectChild {
			labelingV, labeledV = r.labelingVertex, r.labeledVertex
		} else if lbl == labelInner {
			if connectForward {
				labelingV, labeledV = c.linkPrev[next], c.linkNext[ci]
			} else {
				labelingV, labeledV = c.linkNext[prev], c.linkPrev[ci]
			}
		}

		nr := &rootNode[T]{
			top:            c.children[ci],
			base:           base,
			match:          match,
			label:          lbl,
			labelingVertex: labelingV,
			labeledVertex:  labeledV,
		}
		s.roots = append(s.roots, nr)
		nri := len(s.roots) - 1
		s.live = append(s.live, nri)
		s.setRootOf(nr.top, nri)
		if lbl == labelOuter {
			s.onNewOuterRoot(nri)
		}

		if connectForward {
			if isConnectChild {
				isFree = true
			}
		} else if isRootChild {
			isFree = true
		}
		linksToNext = !linksToNext
	}
}

func (s *solver[T]) findChildIndex(c *composite[T], v int) int {
	for i, ch := range c.children {
		if s.containsLeaf(ch, v) {
			return i
		}
	}
	return -1
}

// augmentToSource flips base/match assignments along the alternating
// tree from vertex up to its tree's exposed root, matching vertex to
// newMatch (spec §4.B's augmentation step).
func (s *solver[T]) augmentToSource(vertex, newMatch int) {
	for {
		r := s.roots[s.rootOf[vertex]]
		if r.match == -1 {
			r.base = vertex
			r.match = newMatch
			return
		}
		r.base = vertex
		oldMatch := r.match
		r.match = newMatch
		originalMatch := s.roots[s.rootOf[oldMatch]]
		nextVertex := originalMatch.labelingVertex
		nextMatch := originalMatch.labeledVertex
		originalMatch.base = originalMatch.labeledVertex
		originalMatch.match = originalMatch.labelingVertex
		vertex = nextVertex
		newMatch = nextMatch
	}
}

// matchingOrder returns the leaves of ref in "matching order" starting
// at start: after the first element (excluded by the caller when start
// is a genuinely exposed base), consecutive pairs are the blossom's
// internal matched pairs relative to that entry point.
func (s *solver[T]) matchingOrder(ref nodeRef, start int) []int {
	if ref.isLeaf {
		return []int{ref.vertex}
	}
	c := s.composites[ref.comp]
	n := len(c.children)
	i0 := s.findChildIndex(c, start)
	order := make([]int, 0, n*2)
	for k := 0; k < n; k++ {
		ci := (i0 + k) % n
		childStart := start
		if k != 0 {
			childStart = c.linkPrev[ci]
		}
		order = append(order, s.matchingOrder(c.children[ci], childStart)...)
	}
	return order
}

// readMatching reads off the final pairing for every vertex from the
// live root forest once no further augmenting phase exists.
func (s *solver[T]) readMatching() []int {
	out := make([]int, s.n)
	for i := range out {
		out[i] = -1
	}
	for _, ri := range s.live {
		r := s.roots[ri]
		order := s.matchingOrder(r.top, r.base)
		for i := 1; i+1 < len(order); i += 2 {
			a, b := order[i], order[i+1]
			out[a] = b
			out[b] = a
		}
		if r.match != -1 {
			out[r.base] = r.match
		}
	}
	return out
}
