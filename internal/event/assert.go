//go:build !eventdebug

package event

// debugAssertions makes invariant violations panic. Enable with the
// eventdebug build tag.
const debugAssertions = false
