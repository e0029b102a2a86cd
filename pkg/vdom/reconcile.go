package vdom

// Reconciler keeps the last rendered tree of a live DOM and turns each new
// render into patches. Hydration IDs stay stable across renders: matching
// elements keep theirs and new elements continue the numbering.
type Reconciler struct {
	gen  *HIDGenerator
	tree *VNode
	hids map[string]*VNode
}

// NewReconciler creates an empty reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{gen: NewHIDGenerator()}
}

// Mount takes the first render. IDs are assigned from h1 in document order,
// the same numbering the server renderer uses, so the result can be matched
// against server-rendered markup.
func (r *Reconciler) Mount(node *VNode) *VNode {
	r.gen.Reset()
	tree := Resolve(node)
	AssignHIDs(tree, r.gen)
	r.set(tree)
	return tree
}

// Update diffs node against the current tree and makes it current.
// Replacement subtrees in the returned patches carry their IDs.
func (r *Reconciler) Update(node *VNode) []Patch {
	next := Resolve(node)
	if r.tree == nil {
		AssignHIDs(next, r.gen)
		r.set(next)
		return nil
	}
	CopyHIDs(r.tree, next)
	AssignHIDs(next, r.gen)
	patches := Diff(r.tree, next)
	r.set(next)
	return patches
}

// Tree returns the current tree.
func (r *Reconciler) Tree() *VNode {
	return r.tree
}

// Handler returns the current handler for event on the element with hid.
// Listeners look it up on every event so they never hold a stale closure.
func (r *Reconciler) Handler(hid, event string) func() {
	n := r.hids[hid]
	if n == nil {
		return nil
	}
	return n.Handler(event)
}

func (r *Reconciler) set(tree *VNode) {
	r.tree = tree
	r.hids = CollectHIDs(tree)
}
