// Package app is the chatapp user interface: one button that asks the
// server for a greeting and a line of text showing either the greeting or
// a counter that runs until the greeting arrives.
package app

import (
	"context"
	"fmt"

	"github.com/vango-dev/chatapp/pkg/reactive"
	"github.com/vango-dev/chatapp/pkg/serverfn"
	"github.com/vango-dev/chatapp/pkg/vdom"
)

// ButtonLabel is the text of the greeting button.
const ButtonLabel = "Hello worlddddd."

// Caller invokes a server function. *serverfn.Client implements it.
type Caller interface {
	Call(ctx context.Context, name string, args, out any) error
}

// Greeter is the root component.
type Greeter struct {
	rt     *reactive.Runtime
	count  *reactive.Signal[int]
	text   *reactive.Signal[string]
	greet  *reactive.Action[struct{}, string]
	effect *reactive.Effect
}

// New builds the component on rt and runs its first effect pass, so Text
// is "WUT0" on return. caller may be nil when the component is only
// rendered, as on the server; a click then fails with a ServerError.
func New(rt *reactive.Runtime, caller Caller) *Greeter {
	if caller == nil {
		caller = noCaller{}
	}
	g := &Greeter{
		rt:    rt,
		count: reactive.NewSignal(rt, 0),
		text:  reactive.NewSignal(rt, ""),
	}
	g.greet = reactive.NewAction(context.Background(), rt, func(ctx context.Context, _ struct{}) (string, error) {
		var s string
		err := caller.Call(ctx, HelloWorld, nil, &s)
		return s, err
	})

	// While no greeting is held the effect reads and bumps the counter,
	// which queues it again for the next tick.
	g.effect = reactive.NewEffect(rt, func() {
		res := g.greet.Value().Get()
		switch {
		case res == nil:
			n := g.count.Get()
			g.count.Set(n + 1)
			g.text.Set(fmt.Sprintf("WUT%d", n))
		case res.Err != nil:
			g.text.Set(res.Err.Error())
		default:
			g.text.Set(res.Value)
		}
	})
	return g
}

// Greet dispatches the hello_world call. A greeting already shown is
// cleared and the counter resumes until the new call settles.
func (g *Greeter) Greet() {
	g.greet.Dispatch(struct{}{})
}

// Text is what the greeting line currently shows.
func (g *Greeter) Text() string {
	return g.text.Peek()
}

// Pending reports whether a greeting call is in flight.
func (g *Greeter) Pending() bool {
	return g.greet.Pending().Peek()
}

// Wait blocks until every dispatched call has posted its result.
func (g *Greeter) Wait() {
	g.greet.Wait()
}

// Dispose stops the counter effect.
func (g *Greeter) Dispose() {
	g.effect.Dispose()
}

// Render returns the current view.
func (g *Greeter) Render() *vdom.VNode {
	return vdom.Main(
		vdom.ID("app"),
		vdom.Button(
			vdom.Type("button"),
			vdom.AriaBusy(g.Pending()),
			vdom.OnClick(g.Greet),
			ButtonLabel,
		),
		vdom.P(vdom.ID("greeting"), g.text.Peek()),
	)
}

type noCaller struct{}

func (noCaller) Call(context.Context, string, any, any) error {
	return serverfn.ServerError("server functions are not reachable from here")
}
