package vdom

import "strings"

// Prop creates an arbitrary attribute.
func Prop(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

func ID(id string) Attr      { return Attr{Key: "id", Value: id} }
func Type(t string) Attr     { return Attr{Key: "type", Value: t} }
func Name(n string) Attr     { return Attr{Key: "name", Value: n} }
func Href(url string) Attr   { return Attr{Key: "href", Value: url} }
func Src(url string) Attr    { return Attr{Key: "src", Value: url} }
func Rel(rel string) Attr    { return Attr{Key: "rel", Value: rel} }
func Value(v string) Attr    { return Attr{Key: "value", Value: v} }
func Key(k string) Attr      { return Attr{Key: "key", Value: k} }
func Disabled(b bool) Attr   { return Attr{Key: "disabled", Value: b} }
func AriaBusy(b bool) Attr   { return Attr{Key: "aria-busy", Value: boolString(b)} }
func Data(k, v string) Attr  { return Attr{Key: "data-" + k, Value: v} }
func Charset(c string) Attr  { return Attr{Key: "charset", Value: c} }
func Content(c string) Attr  { return Attr{Key: "content", Value: c} }
func Lang(l string) Attr     { return Attr{Key: "lang", Value: l} }
func Defer() Attr            { return Attr{Key: "defer", Value: true} }
func MetaName(n string) Attr { return Attr{Key: "name", Value: n} }

// Class joins the non-empty class names.
func Class(classes ...string) Attr {
	var parts []string
	for _, c := range classes {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return Attr{Key: "class", Value: strings.Join(parts, " ")}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
