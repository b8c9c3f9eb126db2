package common

// Handler is invoked when a stable-color change lands inside a registered
// spec's region.  The handler must eventually call done to re-arm itself;
// until then further matches against the same spec are suppressed for this
// handler.  A handler that leaks done silently suppresses its own future
// invocations - that is the contract, not a fault the registry recovers
// from.  Handler bodies should return promptly; slow work belongs in a
// goroutine that calls done when finished.
type Handler func(done func(), color Color, spec ColorSpec)
