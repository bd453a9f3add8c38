/*
Package either is the runtime counterpart of the typestate machine.

Either is a closed union over the two terminal states. It is the common result
type of a branch whose arms produce different states, which the static types in
package typestate cannot express. The cost is that the state distinction moves
from the compiler to a type switch:

	switch s := state.(type) {
	case either.Number:
		fmt.Println(s.Value())
	case either.Text:
		fmt.Println(s)
	}

Only OfNumber and OfText create values, and the interface is sealed, so every
Either holds exactly one concrete state.
*/
package either
