//go:build eventdebug

package event

const debugAssertions = true
