// Package steamid models Steam's 64-bit account identifier as a packed
// bitfield and converts between the packed value and its textual renderings:
// the legacy Steam2 form, the bracketed Steam3 form, the short invite-code
// form, and the canonical unsigned decimal string.
//
// The zero value of SteamID is the empty identifier with all fields zero.
// A SteamID is plain mutable value state: mutating the same value from
// multiple goroutines must be serialized by the caller, while distinct
// values are fully independent.
package steamid
