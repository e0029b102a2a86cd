// Package vdom is the virtual DOM shared by the server renderer and the
// browser client.
//
// A page is a tree of VNode values built with the element, attribute and
// event constructors:
//
//	Main(ID("app"),
//	    Button(Type("button"), OnClick(send), Text("Send")),
//	    P(ID("status"), Text(status)),
//	)
//
// Every element gets a hydration ID ("h1", "h2", ...) in document order.
// The server writes it as data-hid, the client recomputes the same numbering
// over the same tree and uses it to find the DOM node for each VNode.
//
// Diff compares two resolved trees and returns the patches that turn the
// DOM of the first into the DOM of the second.
package vdom
