package hosttest

import (
	"testing"

	"github.com/confio/mask/errors"
	"github.com/confio/mask/types"
)

func TestApi_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		human types.HumanAddr
	}{
		{"short", "bob"},
		{"longer", "some-contract-account"},
		{"exact width", types.HumanAddr(make32('a'))},
	}

	api := Api{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canonical, err := api.CanonicalAddress(tt.human)
			if err != nil {
				t.Fatalf("CanonicalAddress: %v", err)
			}
			if len(canonical) != CanonicalLength {
				t.Errorf("canonical length = %d, want %d", len(canonical), CanonicalLength)
			}

			back, err := api.HumanAddress(canonical)
			if err != nil {
				t.Fatalf("HumanAddress: %v", err)
			}
			if back != tt.human {
				t.Errorf("round trip = %q, want %q", back, tt.human)
			}
		})
	}
}

func TestApi_Failures(t *testing.T) {
	api := Api{}

	if _, err := api.CanonicalAddress(""); !errors.IsAddressConversion(err) {
		t.Errorf("empty human: got %v, want address_conversion", err)
	}

	long := types.HumanAddr(make32('a') + "x")
	if _, err := api.CanonicalAddress(long); !errors.IsAddressConversion(err) {
		t.Errorf("over-long human: got %v, want address_conversion", err)
	}

	if _, err := api.HumanAddress(types.CanonicalAddr("short")); !errors.IsAddressConversion(err) {
		t.Errorf("short canonical: got %v, want address_conversion", err)
	}
}

func TestApi_PreservesOrdering(t *testing.T) {
	api := Api{}

	a, _ := api.CanonicalAddress("alice")
	b, _ := api.CanonicalAddress("bob")
	if string(a) >= string(b) {
		t.Error("canonical forms do not preserve the human ordering")
	}
}

func TestNewInfo(t *testing.T) {
	info := NewInfo("creator", types.Coin{Denom: "earth", Amount: "1000"})

	human, err := Api{}.HumanAddress(info.Signer)
	if err != nil {
		t.Fatalf("HumanAddress: %v", err)
	}
	if human != "creator" {
		t.Errorf("signer = %q, want creator", human)
	}
	if len(info.SentFunds) != 1 || info.SentFunds[0].Denom != "earth" {
		t.Errorf("funds = %+v", info.SentFunds)
	}
}

func make32(c byte) string {
	b := make([]byte, CanonicalLength)
	for i := range b {
		b[i] = c
	}
	return string(b)
}
