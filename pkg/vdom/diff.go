package vdom

import (
	"fmt"
	"strconv"
)

// Diff compares two resolved trees with hydration IDs and returns the
// patches that turn prev's DOM into next's. Patches address elements of
// prev by HID. Both roots must be elements.
func Diff(prev, next *VNode) []Patch {
	if prev == nil || next == nil {
		return nil
	}
	var patches []Patch
	diffElement(prev, next, &patches)
	return patches
}

func diffElement(prev, next *VNode, patches *[]Patch) {
	if prev.Kind != KindElement || next.Kind != KindElement ||
		prev.Tag != next.Tag || prev.Key != next.Key {
		*patches = append(*patches, Patch{Op: PatchReplaceNode, HID: prev.HID, Node: next})
		return
	}
	diffProps(prev, next, patches)
	diffChildren(prev, next, patches)
}

func diffProps(prev, next *VNode, patches *[]Patch) {
	for key, nv := range next.Props {
		if IsEventKey(key) {
			continue
		}
		nextVal, nextOK := AttrValue(nv)
		prevVal, prevOK := AttrValue(prev.Props[key])
		switch {
		case !nextOK && prevOK:
			*patches = append(*patches, Patch{Op: PatchRemoveAttr, HID: prev.HID, Key: key})
		case nextOK && (!prevOK || prevVal != nextVal):
			*patches = append(*patches, Patch{Op: PatchSetAttr, HID: prev.HID, Key: key, Value: nextVal})
		}
	}
	for key, pv := range prev.Props {
		if IsEventKey(key) {
			continue
		}
		if _, ok := next.Props[key]; ok {
			continue
		}
		if _, ok := AttrValue(pv); ok {
			*patches = append(*patches, Patch{Op: PatchRemoveAttr, HID: prev.HID, Key: key})
		}
	}
}

func diffChildren(prev, next *VNode, patches *[]Patch) {
	if !childrenCompatible(prev.Children, next.Children) {
		*patches = append(*patches, Patch{Op: PatchReplaceNode, HID: prev.HID, Node: next})
		return
	}

	for i, pc := range prev.Children {
		nc := next.Children[i]
		switch pc.Kind {
		case KindText:
			if pc.Text != nc.Text {
				// childrenCompatible guarantees this is the only child.
				*patches = append(*patches, Patch{Op: PatchSetText, HID: prev.HID, Value: nc.Text})
			}
		case KindElement:
			diffElement(pc, nc, patches)
		}
	}
}

// childrenCompatible reports whether two child lists can be patched in place.
// Changed text is only patchable when it is the element's sole child, and
// raw HTML must be identical.
func childrenCompatible(prev, next []*VNode) bool {
	if len(prev) != len(next) {
		return false
	}
	for i := range prev {
		p, n := prev[i], next[i]
		if p.Kind != n.Kind {
			return false
		}
		switch p.Kind {
		case KindText:
			if p.Text != n.Text && len(prev) != 1 {
				return false
			}
		case KindRaw:
			if p.Text != n.Text {
				return false
			}
		case KindElement:
			if p.Tag != n.Tag || p.Key != n.Key {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// AttrValue converts a prop value to its attribute string. The second result
// is false when the attribute should be absent (nil or false).
func AttrValue(v any) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case bool:
		return "", val
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case fmt.Stringer:
		return val.String(), true
	default:
		return fmt.Sprint(val), true
	}
}
