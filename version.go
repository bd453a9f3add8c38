package typestate

// Version is the release of the typestate module. It is overridden at build time
// with -ldflags "-X github.com/aretw0/typestate.Version=...".
var Version = "0.1.0"
