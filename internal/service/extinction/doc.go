// Package extinction wires the metapop pipeline together:
// configuration → Builder → Validator → Propagator → Reporter.
package extinction
