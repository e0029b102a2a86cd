package vdom

import (
	"fmt"
	"sync"
)

// HIDGenerator hands out hydration IDs ("h1", "h2", ...).
type HIDGenerator struct {
	mu      sync.Mutex
	counter uint32
}

// NewHIDGenerator creates a new HIDGenerator.
func NewHIDGenerator() *HIDGenerator {
	return &HIDGenerator{}
}

// Next returns the next hydration ID.
func (g *HIDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("h%d", g.counter)
}

// Reset restarts numbering at h1.
func (g *HIDGenerator) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter = 0
}

// Current returns the last issued number.
func (g *HIDGenerator) Current() uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.counter
}

// AssignHIDs gives every element without a HID the next ID, in document
// order. The tree should be resolved first; component nodes are skipped.
func AssignHIDs(node *VNode, gen *HIDGenerator) {
	if node == nil {
		return
	}
	if node.Kind == KindElement && node.HID == "" {
		node.HID = gen.Next()
	}
	for _, child := range node.Children {
		AssignHIDs(child, gen)
	}
}

// CollectHIDs indexes the nodes of a tree by HID.
func CollectHIDs(node *VNode) map[string]*VNode {
	result := make(map[string]*VNode)
	collectHIDs(node, result)
	return result
}

func collectHIDs(node *VNode, result map[string]*VNode) {
	if node == nil {
		return
	}
	if node.HID != "" {
		result[node.HID] = node
	}
	for _, child := range node.Children {
		collectHIDs(child, result)
	}
}

// FindByHID finds a node by its HID.
func FindByHID(node *VNode, hid string) *VNode {
	if node == nil {
		return nil
	}
	if node.HID == hid {
		return node
	}
	for _, child := range node.Children {
		if found := FindByHID(child, hid); found != nil {
			return found
		}
	}
	return nil
}

// CopyHIDs carries HIDs from the previous render onto matching elements of
// the next one. Copying stops below the first element whose tag, key or
// child count differs; those subtrees are replaced by Diff and get fresh IDs
// from AssignHIDs. Reports whether the whole tree matched.
func CopyHIDs(src, dst *VNode) bool {
	if src == nil || dst == nil {
		return src == nil && dst == nil
	}
	if src.Kind != dst.Kind {
		return false
	}
	if src.Kind == KindElement {
		if src.Tag != dst.Tag || src.Key != dst.Key {
			return false
		}
		dst.HID = src.HID
	}
	if len(src.Children) != len(dst.Children) {
		return false
	}
	ok := true
	for i := range src.Children {
		if !CopyHIDs(src.Children[i], dst.Children[i]) {
			ok = false
		}
	}
	return ok
}
