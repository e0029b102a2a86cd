package vdom

// voidElements never have children or closing tags.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// IsVoid reports whether tag is a void element.
func IsVoid(tag string) bool {
	return voidElements[tag]
}

// El creates an element. Arguments may be Attr, []Attr, EventHandler,
// *VNode, []*VNode, Component, string (a text child) or nil.
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(Props),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
		case Attr:
			if v.Key == "key" {
				if s, ok := v.Value.(string); ok {
					node.Key = s
				}
				continue
			}
			if v.Key != "" {
				node.Props[v.Key] = v.Value
			}
		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					node.Props[a.Key] = a.Value
				}
			}
		case EventHandler:
			node.Props[v.Event] = v.Handler
		case *VNode:
			if v != nil && !voidElements[tag] {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			if voidElements[tag] {
				continue
			}
			for _, child := range v {
				if child != nil {
					node.Children = append(node.Children, child)
				}
			}
		case Component:
			if !voidElements[tag] {
				node.Children = append(node.Children, &VNode{Kind: KindComponent, Comp: v})
			}
		case string:
			if !voidElements[tag] {
				node.Children = append(node.Children, Text(v))
			}
		}
	}

	return node
}

func Html(args ...any) *VNode   { return El("html", args...) }
func Head(args ...any) *VNode   { return El("head", args...) }
func Body(args ...any) *VNode   { return El("body", args...) }
func Title(args ...any) *VNode  { return El("title", args...) }
func Meta(args ...any) *VNode   { return El("meta", args...) }
func Link(args ...any) *VNode   { return El("link", args...) }
func Script(args ...any) *VNode { return El("script", args...) }

func Main(args ...any) *VNode    { return El("main", args...) }
func Section(args ...any) *VNode { return El("section", args...) }
func Div(args ...any) *VNode     { return El("div", args...) }
func Span(args ...any) *VNode    { return El("span", args...) }
func P(args ...any) *VNode       { return El("p", args...) }
func H1(args ...any) *VNode      { return El("h1", args...) }
func H2(args ...any) *VNode      { return El("h2", args...) }
func Ul(args ...any) *VNode      { return El("ul", args...) }
func Li(args ...any) *VNode      { return El("li", args...) }
func A(args ...any) *VNode       { return El("a", args...) }
func Br(args ...any) *VNode      { return El("br", args...) }

func Form(args ...any) *VNode   { return El("form", args...) }
func Button(args ...any) *VNode { return El("button", args...) }
func Input(args ...any) *VNode  { return El("input", args...) }
func Label(args ...any) *VNode  { return El("label", args...) }
