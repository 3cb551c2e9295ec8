package controller

import "mini-fortress/internal/item"

type ResultKind int

const (
	// Success consumes the click and swings the hand.
	Success ResultKind = iota
	// Consume consumes the click without a swing.
	Consume
	// Pass lets the click through to the next handler.
	Pass
	// Fail rejects the click.
	Fail
)

func (k ResultKind) String() string {
	switch k {
	case Success:
		return "success"
	case Consume:
		return "consume"
	case Pass:
		return "pass"
	}
	return "fail"
}

// Result is the outcome of one simulated click.
type Result struct {
	Kind ResultKind
	// Stack is the stack the click leaves in hand, when it produced one.
	Stack *item.ItemStack
}

var (
	ResultSuccess = Result{Kind: Success}
	ResultConsume = Result{Kind: Consume}
	ResultPass    = Result{Kind: Pass}
	ResultFail    = Result{Kind: Fail}
)

func (r Result) Accepted() bool {
	return r.Kind == Success || r.Kind == Consume
}

func (r Result) ShouldSwingHand() bool {
	return r.Kind == Success
}

func (r Result) String() string {
	return r.Kind.String()
}
