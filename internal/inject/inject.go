// Package inject is the fire-and-forget boundary between gesture actions
// and the session's key-injection facility. Dispatched actions map to a
// small fixed set of key sequences; nothing here is user-configurable.
package inject

import "strconv"

// Linux input event codes (input-event-codes.h) used by the fixed
// sequences.
const (
	keyLeftCtrl  = 29
	keyW         = 17
	keyLeftShift = 42
	keyTab       = 15
	keyR         = 19
	keyBack      = 158
)

// Sequence is an immutable, named list of press/release tokens in the
// injector's code:state syntax.
type Sequence struct {
	name   string
	tokens []string
}

// Name returns the sequence's stable name.
func (s Sequence) Name() string {
	return s.name
}

// Tokens returns a copy of the press/release tokens.
func (s Sequence) Tokens() []string {
	return append([]string(nil), s.tokens...)
}

// String returns the sequence name.
func (s Sequence) String() string {
	return s.name
}

// chord renders key codes as press/release tokens: every code is pressed
// in order, then released in reverse order, so all but the last act as
// held modifiers around a tap of the last.
func chord(codes ...int) []string {
	tokens := make([]string, 0, 2*len(codes))
	for _, c := range codes {
		tokens = append(tokens, strconv.Itoa(c)+":1")
	}
	for i := len(codes) - 1; i >= 0; i-- {
		tokens = append(tokens, strconv.Itoa(codes[i])+":0")
	}
	return tokens
}

// The five sequences gesture actions can emit.
var (
	// CloseTab is Ctrl+W.
	CloseTab = Sequence{name: "close-tab", tokens: chord(keyLeftCtrl, keyW)}
	// PrevTab is Ctrl+Shift+Tab.
	PrevTab = Sequence{name: "prev-tab", tokens: chord(keyLeftCtrl, keyLeftShift, keyTab)}
	// NextTab is Ctrl+Tab.
	NextTab = Sequence{name: "next-tab", tokens: chord(keyLeftCtrl, keyTab)}
	// Refresh is Ctrl+R.
	Refresh = Sequence{name: "refresh", tokens: chord(keyLeftCtrl, keyR)}
	// Back is the dedicated browser-back key.
	Back = Sequence{name: "back", tokens: chord(keyBack)}
)

// Injector sends one synthetic key sequence into the session.
type Injector interface {
	Inject(seq Sequence)
}
