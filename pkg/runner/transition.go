package runner

import (
	"strconv"
	"strings"

	"github.com/aretw0/typestate"
	"github.com/aretw0/typestate/pkg/either"
)

// ParseNumber reports whether raw, trimmed of surrounding whitespace, is an
// unsigned 32-bit decimal integer. One leading '+' is accepted; a leading '-'
// never is, so negative numbers are text.
func ParseNumber(raw string) (uint32, bool) {
	s := strings.TrimPrefix(strings.TrimSpace(raw), "+")
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// Branch decides a one-shot transition from a fresh Initial.
// Text states keep the raw, untrimmed line.
func Branch(raw string) (either.Either, TransitionKind) {
	one := typestate.New()
	if n, ok := ParseNumber(raw); ok {
		return either.OfNumber(one.ToNumber(n)), KindToNumber
	}
	return either.OfText(one.ToText(raw)), KindToText
}

// Next computes the state that follows current after reading raw.
//
//	parsed, current Number(old) -> Number(old + n), wrapping at 2^32
//	parsed, current Text        -> Number(n), the text is discarded
//	not parsed                  -> Text(raw)
//
// Any current that is not a Number, nil included, takes the Text arms.
func Next(current either.Either, raw string) (either.Either, TransitionKind) {
	one := typestate.New()

	n, ok := ParseNumber(raw)
	if !ok {
		return either.OfText(one.ToText(raw)), KindToText
	}
	if old, isNumber := current.(either.Number); isNumber {
		return either.OfNumber(one.ToNumber(old.Value() + n)), KindAccumulate
	}
	return either.OfNumber(one.ToNumber(n)), KindReset
}

// Replay folds Next over lines starting at start and returns the final state.
func Replay(start either.Either, lines ...string) either.Either {
	state := start
	for _, line := range lines {
		state, _ = Next(state, line)
	}
	return state
}

// Edge documents one arc of the machine and the input that selects it.
type Edge struct {
	From      string
	To        either.Tag
	Kind      TransitionKind
	Condition string
}

// Edges lists every transition Branch and Next can take, Initial arcs first.
var Edges = []Edge{
	{From: FromInitial, To: either.TagNumber, Kind: KindToNumber, Condition: "parsed"},
	{From: FromInitial, To: either.TagText, Kind: KindToText, Condition: "not parsed"},
	{From: string(either.TagNumber), To: either.TagNumber, Kind: KindAccumulate, Condition: "parsed"},
	{From: string(either.TagNumber), To: either.TagText, Kind: KindToText, Condition: "not parsed"},
	{From: string(either.TagText), To: either.TagNumber, Kind: KindReset, Condition: "parsed"},
	{From: string(either.TagText), To: either.TagText, Kind: KindToText, Condition: "not parsed"},
}
