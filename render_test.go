package steamid

import (
	"encoding/json"
	"testing"
)

// TestRenderSteam2KnownID verifies the reference identifier renders to its
// documented legacy and bracketed forms.
func TestRenderSteam2KnownID(t *testing.T) {
	s, err := Parse("76561197960287930")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := s.RenderSteam2(); got != "STEAM_1:0:11101" {
		t.Fatalf("RenderSteam2 = %q, want %q", got, "STEAM_1:0:11101")
	}
	if got := s.RenderSteam3(); got != "[U:1:22202]" {
		t.Fatalf("RenderSteam3 = %q, want %q", got, "[U:1:22202]")
	}
}

// TestRenderSteam2FallsBackToDecimal ensures non-individual types render the
// packed decimal value instead of the legacy form.
func TestRenderSteam2FallsBackToDecimal(t *testing.T) {
	clan, err := Parse("[g:1:4]")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := clan.RenderSteam2(); got != "103582791429521412" {
		t.Fatalf("RenderSteam2 = %q, want %q", got, "103582791429521412")
	}
}

// TestRenderSteam3RoundTrip ensures canonical bracketed strings survive a
// parse/render cycle unchanged. Chat, AnonGameServer, and Multiseat have
// special-cased rendering and are covered separately.
func TestRenderSteam3RoundTrip(t *testing.T) {
	tcs := []string{
		"[I:1:5]",
		"[U:1:22202]",
		"[M:2:44:3]",
		"[G:3:5]",
		"[A:1:123:7]",
		"[P:1:6]",
		"[C:4:7]",
		"[g:2:44]",
		"[T:1:8]",
		"[a:1:9]",
	}
	for _, input := range tcs {
		s, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", input, err)
		}
		if got := s.RenderSteam3(); got != input {
			t.Fatalf("RenderSteam3 = %q, want %q", got, input)
		}
	}
}

// TestRenderSteam3AliasNormalizes ensures the lowercase 'i' alias parses to
// the same identifier as 'I' and renders canonically.
func TestRenderSteam3AliasNormalizes(t *testing.T) {
	aliased, err := Parse("[i:1:5]")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	canonical, err := Parse("[I:1:5]")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if aliased != canonical {
		t.Fatalf("aliased value %d != canonical value %d", aliased.Uint64(), canonical.Uint64())
	}
	if got := aliased.RenderSteam3(); got != "[I:1:5]" {
		t.Fatalf("RenderSteam3 = %q, want %q", got, "[I:1:5]")
	}
}

func TestRenderSteam3ChatFlags(t *testing.T) {
	tcs := []struct {
		name     string
		instance uint64
		want     string
	}{
		{"clan flag", InstanceFlagClan, "[c:1:4]"},
		{"lobby flag", InstanceFlagLobby, "[L:1:4]"},
		{"no flags", InstanceAll, "[T:1:4]"},
		{"clan flag wins over lobby", InstanceFlagClan | InstanceFlagLobby, "[c:1:4]"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			var s SteamID
			if err := s.SetUniverse(UniversePublic); err != nil {
				t.Fatalf("SetUniverse returned error: %v", err)
			}
			if err := s.SetType(TypeChat); err != nil {
				t.Fatalf("SetType returned error: %v", err)
			}
			if err := s.SetAccountID(4); err != nil {
				t.Fatalf("SetAccountID returned error: %v", err)
			}
			if err := s.SetInstance(tc.instance); err != nil {
				t.Fatalf("SetInstance returned error: %v", err)
			}
			if got := s.RenderSteam3(); got != tc.want {
				t.Fatalf("RenderSteam3 = %q, want %q", got, tc.want)
			}
		})
	}
}

// TestRenderSteam3UnmappedType ensures types without a table character
// render with the 'i' default.
func TestRenderSteam3UnmappedType(t *testing.T) {
	tcs := []AccountType{TypeP2PSuperSeeder, 12, 15}
	for _, accountType := range tcs {
		var s SteamID
		if err := s.SetUniverse(UniversePublic); err != nil {
			t.Fatalf("SetUniverse returned error: %v", err)
		}
		if err := s.SetType(accountType); err != nil {
			t.Fatalf("SetType returned error: %v", err)
		}
		if err := s.SetAccountID(5); err != nil {
			t.Fatalf("SetAccountID returned error: %v", err)
		}
		if got := s.RenderSteam3(); got != "[i:1:5]" {
			t.Fatalf("RenderSteam3 for type %d = %q, want %q", accountType, got, "[i:1:5]")
		}
	}
}

func TestStringIsCanonicalDecimal(t *testing.T) {
	s := FromUint64(76561197960287930)
	if got := s.String(); got != "76561197960287930" {
		t.Fatalf("String = %q, want %q", got, "76561197960287930")
	}

	// The full 64-bit range must render without sign ambiguity.
	s = FromUint64(18446744073709551615)
	if got := s.String(); got != "18446744073709551615" {
		t.Fatalf("String = %q, want %q", got, "18446744073709551615")
	}
}

func TestTextMarshalRoundTrip(t *testing.T) {
	type payload struct {
		ID SteamID `json:"id"`
	}

	encoded, err := json.Marshal(payload{ID: FromUint64(76561197960287930)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(encoded) != `{"id":"76561197960287930"}` {
		t.Fatalf("encoded = %s, want %s", encoded, `{"id":"76561197960287930"}`)
	}

	var decoded payload
	if err := json.Unmarshal(encoded, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.ID.Uint64() != 76561197960287930 {
		t.Fatalf("decoded value = %d, want 76561197960287930", decoded.ID.Uint64())
	}
}

// TestTextUnmarshalAcceptsAnyGrammar ensures unmarshaling goes through the
// full parser, not just the decimal form.
func TestTextUnmarshalAcceptsAnyGrammar(t *testing.T) {
	var s SteamID
	if err := s.UnmarshalText([]byte("STEAM_1:0:11101")); err != nil {
		t.Fatalf("UnmarshalText returned error: %v", err)
	}
	if s.Uint64() != 76561197960287930 {
		t.Fatalf("unmarshaled value = %d, want 76561197960287930", s.Uint64())
	}

	if err := s.UnmarshalText([]byte("not-an-id")); err == nil {
		t.Fatal("expected error for malformed input")
	}
}
