package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vango-dev/chatapp/pkg/vdom"
)

// Config configures the HTML renderer.
type Config struct {
	// SkipHIDs omits data-hid attributes. Pages that are never hydrated
	// (error pages, static exports) can set it.
	SkipHIDs bool
}

// Renderer renders VNode trees to HTML. A Renderer numbers hydration IDs
// from h1 on every call and is not safe for concurrent use.
type Renderer struct {
	config Config
	hids   *vdom.HIDGenerator
}

// NewRenderer creates a Renderer.
func NewRenderer(config Config) *Renderer {
	return &Renderer{
		config: config,
		hids:   vdom.NewHIDGenerator(),
	}
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to w.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	tree := vdom.Resolve(node)
	r.hids.Reset()
	if !r.config.SkipHIDs {
		vdom.AssignHIDs(tree, r.hids)
	}
	return r.renderNode(w, tree)
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	case vdom.KindFragment:
		for _, child := range node.Children {
			if err := r.renderNode(w, child); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("render: unexpected node kind %s", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode) error {
	if _, err := io.WriteString(w, "<"+node.Tag); err != nil {
		return err
	}
	if err := writeAttributes(w, node); err != nil {
		return err
	}
	if node.HID != "" {
		if _, err := fmt.Fprintf(w, ` data-hid="%s"`, node.HID); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if vdom.IsVoid(node.Tag) {
		return nil
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}

// writeAttributes writes attributes in sorted order followed by the
// data-on-<event> markers for bound handlers.
func writeAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if strings.HasPrefix(key, "_") || vdom.IsEventKey(key) {
			continue
		}
		value := node.Props[key]
		s, ok := vdom.AttrValue(value)
		if !ok {
			continue
		}
		if _, isBool := value.(bool); isBool {
			if _, err := fmt.Fprintf(w, " %s", key); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, key, escapeAttr(s)); err != nil {
			return err
		}
	}

	for _, event := range node.Events() {
		if _, err := fmt.Fprintf(w, ` data-on-%s="true"`, strings.ToLower(event)); err != nil {
			return err
		}
	}

	return nil
}
