package vdom

import "fmt"

// Text creates a text node.
func Text(s string) *VNode {
	return &VNode{Kind: KindText, Text: s}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
func Raw(html string) *VNode {
	return &VNode{Kind: KindRaw, Text: html}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...*VNode) *VNode {
	node := &VNode{Kind: KindFragment}
	for _, c := range children {
		if c != nil {
			node.Children = append(node.Children, c)
		}
	}
	return node
}

// If returns node when cond holds, nil otherwise.
func If(cond bool, node *VNode) *VNode {
	if cond {
		return node
	}
	return nil
}

// Resolve renders component nodes and flattens fragments inside elements,
// returning a tree made only of elements, text and raw nodes (a top-level
// fragment is kept). The input tree is not modified.
func Resolve(node *VNode) *VNode {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case KindComponent:
		if node.Comp == nil {
			return nil
		}
		return Resolve(node.Comp.Render())
	case KindText, KindRaw:
		out := *node
		return &out
	}

	out := *node
	out.Children = resolveChildren(node.Children)
	return &out
}

func resolveChildren(children []*VNode) []*VNode {
	var out []*VNode
	for _, child := range children {
		r := Resolve(child)
		if r == nil {
			continue
		}
		if r.Kind == KindFragment {
			out = append(out, r.Children...)
			continue
		}
		out = append(out, r)
	}
	return out
}
