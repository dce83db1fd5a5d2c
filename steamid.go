package steamid

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// Universe is the top-level deployment partition a SteamID belongs to.
type Universe int

const (
	UniverseInvalid Universe = iota
	UniversePublic
	UniverseBeta
	UniverseInternal
	UniverseDev
)

func (u Universe) String() string {
	switch u {
	case UniverseInvalid:
		return "Invalid"
	case UniversePublic:
		return "Public"
	case UniverseBeta:
		return "Beta"
	case UniverseInternal:
		return "Internal"
	case UniverseDev:
		return "Dev"
	default:
		return "Unknown"
	}
}

// AccountType is the role of the entity a SteamID identifies.
type AccountType int

const (
	TypeInvalid AccountType = iota
	TypeIndividual
	TypeMultiseat
	TypeGameServer
	TypeAnonGameServer
	TypePending
	TypeContentServer
	TypeClan
	TypeChat
	TypeP2PSuperSeeder
	TypeAnonUser
)

func (t AccountType) String() string {
	switch t {
	case TypeInvalid:
		return "Invalid"
	case TypeIndividual:
		return "Individual"
	case TypeMultiseat:
		return "Multiseat"
	case TypeGameServer:
		return "GameServer"
	case TypeAnonGameServer:
		return "AnonGameServer"
	case TypePending:
		return "Pending"
	case TypeContentServer:
		return "ContentServer"
	case TypeClan:
		return "Clan"
	case TypeChat:
		return "Chat"
	case TypeP2PSuperSeeder:
		return "P2PSuperSeeder"
	case TypeAnonUser:
		return "AnonUser"
	default:
		return "Unknown"
	}
}

// Instance values for individual accounts.
const (
	InstanceAll     = 0
	InstanceDesktop = 1
	InstanceConsole = 2
	InstanceWeb     = 4
)

// Chat instance flags, packed into the high bits of the instance field of
// Chat-type identifiers.
const (
	InstanceFlagClan     = 0x80000
	InstanceFlagLobby    = 0x40000
	InstanceFlagMMSLobby = 0x20000
)

// Bit layout of the packed 64-bit value, low bit to high bit.
const (
	accountIDMask uint64 = 0xFFFFFFFF
	instanceMask  uint64 = 0xFFFFF
	typeMask      uint64 = 0xF
	universeMask  uint64 = 0xFF

	instanceShift = 32
	typeShift     = 52
	universeShift = 56
)

// ErrAccountIDOutOfRange indicates an account id at or above 4294967295.
var ErrAccountIDOutOfRange = errors.New("account id must be below 4294967295")

// ErrInstanceOutOfRange indicates an instance wider than the 20-bit field.
var ErrInstanceOutOfRange = errors.New("instance must fit in 20 bits")

// ErrTypeOutOfRange indicates an account type wider than the 4-bit field.
var ErrTypeOutOfRange = errors.New("account type must fit in 4 bits")

// ErrUniverseOutOfRange indicates a universe wider than the 8-bit field.
var ErrUniverseOutOfRange = errors.New("universe must fit in 8 bits")

// ErrInvalidFormat indicates input matching none of the accepted grammars.
var ErrInvalidFormat = errors.New("input matches no known steamid format")

// ErrNotNumeric indicates a raw value that is not a positive decimal integer.
var ErrNotNumeric = errors.New("value is not a positive decimal integer")

// ErrUnsupportedAccountType indicates an invite-code operation on a
// non-individual identifier.
var ErrUnsupportedAccountType = errors.New("invite codes are usable only for individual ids")

// ErrUnknownTypeChar indicates a Steam3 type character with no table entry.
var ErrUnknownTypeChar = errors.New("unknown account type character")

// ErrInvalidInviteCode indicates input that is not a valid invite code.
var ErrInvalidInviteCode = errors.New("input is not a valid invite code")

var (
	steam2Pattern  = regexp.MustCompile(`^STEAM_([0-4]):([01]):(0|[1-9][0-9]{0,9})$`)
	steam3Pattern  = regexp.MustCompile(`^\[([AGMPCgcLTIUai]):([0-4]):(0|[1-9][0-9]{0,9})(?::([0-9]+))?\]$`)
	numericPattern = regexp.MustCompile(`^[1-9][0-9]{0,19}$`)
)

// typeChars maps account type codes to their Steam3 characters. A zero byte
// means the type has no character of its own and renders as 'i'.
var typeChars = [...]byte{
	TypeInvalid:        'I',
	TypeIndividual:     'U',
	TypeMultiseat:      'M',
	TypeGameServer:     'G',
	TypeAnonGameServer: 'A',
	TypePending:        'P',
	TypeContentServer:  'C',
	TypeClan:           'g',
	TypeChat:           'T',
	TypeAnonUser:       'a',
}

// typeFromChar is the reverse lookup into typeChars. The second result is
// false when the character has no table entry.
func typeFromChar(c byte) (AccountType, bool) {
	for t, tc := range typeChars {
		if tc == c && tc != 0 {
			return AccountType(t), true
		}
	}
	return TypeInvalid, false
}

// SteamID is the packed 64-bit identifier.
type SteamID uint64

// FromUint64 adopts a packed 64-bit value without field validation.
func FromUint64(v uint64) SteamID {
	return SteamID(v)
}

// FromAccountID builds an individual identifier in the public universe with
// the desktop instance from a bare account number.
func FromAccountID(accountID uint32) (SteamID, error) {
	var s SteamID
	if err := s.SetAccountID(uint64(accountID)); err != nil {
		return 0, err
	}
	if err := s.SetInstance(InstanceDesktop); err != nil {
		return 0, err
	}
	if err := s.SetType(TypeIndividual); err != nil {
		return 0, err
	}
	if err := s.SetUniverse(UniversePublic); err != nil {
		return 0, err
	}
	return s, nil
}

// Parse builds a SteamID from textual input. The three grammars are tried in
// strict order: the legacy Steam2 form, the bracketed Steam3 form, then a
// plain positive decimal adopted directly as the packed value. The first
// grammar that matches wins; input matching none fails with ErrInvalidFormat.
func Parse(input string) (SteamID, error) {
	if m := steam2Pattern.FindStringSubmatch(input); m != nil {
		return parseSteam2(m)
	}
	if m := steam3Pattern.FindStringSubmatch(input); m != nil {
		return parseSteam3(m)
	}
	if numericPattern.MatchString(input) {
		v, err := strconv.ParseUint(input, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse %q: %w", input, ErrInvalidFormat)
		}
		return SteamID(v), nil
	}
	return 0, fmt.Errorf("parse %q: %w", input, ErrInvalidFormat)
}

func parseSteam2(m []string) (SteamID, error) {
	// The grammar guarantees single digits for universe and auth server.
	universe, _ := strconv.Atoi(m[1])
	authServer, _ := strconv.ParseUint(m[2], 10, 64)
	half, err := strconv.ParseUint(m[3], 10, 64)
	if err != nil || half >= accountIDMask {
		return 0, fmt.Errorf("steam2 account number %s: %w", m[3], ErrAccountIDOutOfRange)
	}

	if universe == int(UniverseInvalid) {
		// The Steam2 form historically omits the universe; zero means public.
		universe = int(UniversePublic)
	}

	var s SteamID
	if err := s.SetUniverse(Universe(universe)); err != nil {
		return 0, err
	}
	if err := s.SetInstance(InstanceDesktop); err != nil {
		return 0, err
	}
	if err := s.SetType(TypeIndividual); err != nil {
		return 0, err
	}
	if err := s.SetAccountID(half<<1 | authServer); err != nil {
		return 0, err
	}
	return s, nil
}

func parseSteam3(m []string) (SteamID, error) {
	typeChar := m[1][0]
	if typeChar == 'i' {
		typeChar = 'I'
	}
	universe, _ := strconv.Atoi(m[2])
	account, err := strconv.ParseUint(m[3], 10, 64)
	if err != nil || account >= accountIDMask {
		return 0, fmt.Errorf("steam3 account number %s: %w", m[3], ErrAccountIDOutOfRange)
	}

	var instance uint64
	switch {
	case typeChar == 'T' || typeChar == 'g':
		instance = InstanceAll
	case m[4] != "":
		instance, err = strconv.ParseUint(m[4], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("steam3 instance %s: %w", m[4], ErrInstanceOutOfRange)
		}
	case typeChar == 'U':
		instance = InstanceDesktop
	default:
		instance = InstanceAll
	}

	var s SteamID
	if err := s.SetUniverse(Universe(universe)); err != nil {
		return 0, err
	}
	if err := s.SetAccountID(account); err != nil {
		return 0, err
	}

	// Clan and lobby chat ids carry chat membership in the instance flags.
	// The type field is left untouched for them.
	if typeChar == 'c' || typeChar == 'L' {
		if err := s.SetInstance(InstanceFlagClan); err != nil {
			return 0, err
		}
		return s, nil
	}

	accountType, ok := typeFromChar(typeChar)
	if !ok {
		return 0, fmt.Errorf("steam3 type character %q: %w", typeChar, ErrUnknownTypeChar)
	}
	if err := s.SetType(accountType); err != nil {
		return 0, err
	}
	if err := s.SetInstance(instance); err != nil {
		return 0, err
	}
	return s, nil
}

// AccountID returns the 32-bit account number.
func (s SteamID) AccountID() uint32 {
	return uint32(uint64(s) & accountIDMask)
}

// Instance returns the 20-bit instance field.
func (s SteamID) Instance() uint32 {
	return uint32((uint64(s) >> instanceShift) & instanceMask)
}

// Type returns the account type field.
func (s SteamID) Type() AccountType {
	return AccountType((uint64(s) >> typeShift) & typeMask)
}

// Universe returns the universe field.
func (s SteamID) Universe() Universe {
	return Universe((uint64(s) >> universeShift) & universeMask)
}

// SetAccountID replaces the account number. Values at or above 4294967295
// are rejected with ErrAccountIDOutOfRange; other fields are untouched.
func (s *SteamID) SetAccountID(id uint64) error {
	if id >= accountIDMask {
		return fmt.Errorf("account id %d: %w", id, ErrAccountIDOutOfRange)
	}
	s.setField(0, accountIDMask, id)
	return nil
}

// SetInstance replaces the instance field. Values wider than 20 bits are
// rejected with ErrInstanceOutOfRange; other fields are untouched.
func (s *SteamID) SetInstance(instance uint64) error {
	if instance > instanceMask {
		return fmt.Errorf("instance %d: %w", instance, ErrInstanceOutOfRange)
	}
	s.setField(instanceShift, instanceMask, instance)
	return nil
}

// SetType replaces the account type field. Values outside the 4-bit width
// are rejected with ErrTypeOutOfRange; types beyond the known enumeration
// are accepted here and only fail IsValid.
func (s *SteamID) SetType(t AccountType) error {
	if t < 0 || uint64(t) > typeMask {
		return fmt.Errorf("account type %d: %w", t, ErrTypeOutOfRange)
	}
	s.setField(typeShift, typeMask, uint64(t))
	return nil
}

// SetUniverse replaces the universe field. Values outside the 8-bit width
// are rejected with ErrUniverseOutOfRange; universes beyond the known
// enumeration are accepted here and only fail IsValid.
func (s *SteamID) SetUniverse(u Universe) error {
	if u < 0 || uint64(u) > universeMask {
		return fmt.Errorf("universe %d: %w", u, ErrUniverseOutOfRange)
	}
	s.setField(universeShift, universeMask, uint64(u))
	return nil
}

// SetFromUint64 adopts a packed 64-bit value, replacing all fields.
func (s *SteamID) SetFromUint64(v uint64) {
	*s = SteamID(v)
}

// SetFromString adopts a packed value from its canonical decimal form.
// Input failing the plain-numeric check fails with ErrNotNumeric.
func (s *SteamID) SetFromString(input string) error {
	if !numericPattern.MatchString(input) {
		return fmt.Errorf("set from %q: %w", input, ErrNotNumeric)
	}
	v, err := strconv.ParseUint(input, 10, 64)
	if err != nil {
		return fmt.Errorf("set from %q: %w", input, ErrNotNumeric)
	}
	*s = SteamID(v)
	return nil
}

func (s *SteamID) setField(shift uint, mask, value uint64) {
	*s = SteamID(uint64(*s)&^(mask<<shift) | (value&mask)<<shift)
}

// IsValid reports whether the identifier is structurally well formed. The
// result is recomputed from the current field values on every call.
func (s SteamID) IsValid() bool {
	t := s.Type()
	if t <= TypeInvalid || t > TypeAnonUser {
		return false
	}
	u := s.Universe()
	if u <= UniverseInvalid || u > UniverseDev {
		return false
	}
	switch t {
	case TypeIndividual:
		if s.AccountID() == 0 || s.Instance() > InstanceWeb {
			return false
		}
	case TypeClan:
		if s.AccountID() == 0 || s.Instance() != InstanceAll {
			return false
		}
	case TypeGameServer:
		if s.AccountID() == 0 {
			return false
		}
	}
	return true
}

// IsValidIndividual reports whether the identifier is a well-formed
// individual account id.
func (s SteamID) IsValidIndividual() bool {
	return s.Type() == TypeIndividual && s.IsValid()
}

// IsIndividual reports whether the account type is Individual.
func (s SteamID) IsIndividual() bool {
	return s.Type() == TypeIndividual
}

// IsClan reports whether the account type is Clan.
func (s SteamID) IsClan() bool {
	return s.Type() == TypeClan
}

// IsGameServer reports whether the account type is GameServer or
// AnonGameServer.
func (s SteamID) IsGameServer() bool {
	return s.Type() == TypeGameServer || s.Type() == TypeAnonGameServer
}

// IsLobby reports whether the identifier is a chat lobby.
func (s SteamID) IsLobby() bool {
	return s.Type() == TypeChat && s.Instance()&(InstanceFlagLobby|InstanceFlagMMSLobby) != 0
}

// IsGroupChat reports whether the identifier is a clan chat room.
func (s SteamID) IsGroupChat() bool {
	return s.Type() == TypeChat && s.Instance()&InstanceFlagClan != 0
}
