package steamid

import (
	"fmt"
	"strconv"
)

// Uint64 returns the packed 64-bit value.
func (s SteamID) Uint64() uint64 {
	return uint64(s)
}

// String returns the canonical unsigned decimal form of the packed value.
// This is the serialization used for storage and exchange.
func (s SteamID) String() string {
	return strconv.FormatUint(uint64(s), 10)
}

// RenderSteam2 renders the legacy STEAM_X:Y:Z form. It is only defined for
// the Invalid and Individual account types; every other type falls back to
// the plain decimal packed value.
func (s SteamID) RenderSteam2() string {
	switch s.Type() {
	case TypeInvalid, TypeIndividual:
		account := s.AccountID()
		return fmt.Sprintf("STEAM_%d:%d:%d", s.Universe(), account&1, account>>1)
	default:
		return s.String()
	}
}

// RenderSteam3 renders the bracketed [C:U:A] form. Chat ids render as 'c'
// or 'L' depending on the clan and lobby instance flags, and only the
// AnonGameServer and Multiseat types carry an explicit instance suffix.
func (s SteamID) RenderSteam3() string {
	accountType := s.Type()

	typeChar := byte('i')
	if int(accountType) < len(typeChars) && typeChars[accountType] != 0 {
		typeChar = typeChars[accountType]
	}

	instance := s.Instance()
	if accountType == TypeChat {
		switch {
		case instance&InstanceFlagClan != 0:
			typeChar = 'c'
		case instance&InstanceFlagLobby != 0:
			typeChar = 'L'
		}
	}

	if accountType == TypeAnonGameServer || accountType == TypeMultiseat {
		return fmt.Sprintf("[%c:%d:%d:%d]", typeChar, s.Universe(), s.AccountID(), instance)
	}
	return fmt.Sprintf("[%c:%d:%d]", typeChar, s.Universe(), s.AccountID())
}

// MarshalText renders the canonical decimal form.
func (s SteamID) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses any of the accepted textual grammars.
func (s *SteamID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
