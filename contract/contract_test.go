package contract_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/confio/mask/contract"
	"github.com/confio/mask/errors"
	"github.com/confio/mask/hosttest"
	"github.com/confio/mask/types"
)

func forwardMsg(raw string) contract.ExecuteMsg {
	return contract.ExecuteMsg{Forward: &contract.ForwardMsg{Msg: types.NewCosmosMsg([]byte(raw))}}
}

func transferMsg(owner string) contract.ExecuteMsg {
	return contract.ExecuteMsg{TransferOwnership: &contract.TransferMsg{Owner: types.HumanAddr(owner)}}
}

func queryOwnerOf(t *testing.T, deps contract.Deps) types.HumanAddr {
	t.Helper()
	data, err := contract.Query(deps, hosttest.NewEnv(), contract.QueryMsg{Owner: &contract.OwnerQuery{}})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	var resp contract.OwnerResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("unmarshal owner response: %v", err)
	}
	return resp.Owner
}

func TestInstantiate(t *testing.T) {
	deps := hosttest.NewDeps()

	res, err := contract.Instantiate(deps, hosttest.NewEnv(), hosttest.NewInfo("creator"), contract.InitMsg{})
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if len(res.Messages) != 0 {
		t.Errorf("got %d messages, want 0", len(res.Messages))
	}

	if owner := queryOwnerOf(t, deps); owner != "creator" {
		t.Errorf("owner = %q, want creator", owner)
	}
}

func TestQueryOwner_Uninitialized(t *testing.T) {
	deps := hosttest.NewDeps()

	_, err := contract.Query(deps, hosttest.NewEnv(), contract.QueryMsg{Owner: &contract.OwnerQuery{}})
	if err == nil {
		t.Fatal("expected error before initialization")
	}
	if !errors.IsNotFound(err) {
		t.Errorf("got %v, want not_found kind", err)
	}
}

func TestForward(t *testing.T) {
	raw := `{"bank":{"send":{"from_address":"creator","to_address":"friend","amount":[{"denom":"earth","amount":"1"}]}}}`

	tests := []struct {
		name   string
		signer string
		wantOK bool
	}{
		{"owner may forward", "creator", true},
		{"stranger may not", "someone-else", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := hosttest.NewDeps()
			env := hosttest.NewEnv()
			if _, err := contract.Instantiate(deps, env, hosttest.NewInfo("creator"), contract.InitMsg{}); err != nil {
				t.Fatalf("Instantiate: %v", err)
			}

			res, err := contract.Execute(deps, env, hosttest.NewInfo(tt.signer), forwardMsg(raw))
			if !tt.wantOK {
				if !errors.IsUnauthorized(err) {
					t.Fatalf("got %v, want unauthorized kind", err)
				}
				// No state change either
				if owner := queryOwnerOf(t, deps); owner != "creator" {
					t.Errorf("owner = %q, want creator", owner)
				}
				return
			}

			if err != nil {
				t.Fatalf("Execute: %v", err)
			}
			if len(res.Messages) != 1 {
				t.Fatalf("got %d messages, want 1", len(res.Messages))
			}
			if !bytes.Equal(res.Messages[0].Raw(), []byte(raw)) {
				t.Errorf("message = %s, want it unchanged", res.Messages[0].Raw())
			}
			if len(res.Log) != 0 || res.Data != nil {
				t.Error("forward must not attach log or data")
			}
		})
	}
}

func TestTransferOwnership(t *testing.T) {
	deps := hosttest.NewDeps()
	env := hosttest.NewEnv()
	if _, err := contract.Instantiate(deps, env, hosttest.NewInfo("creator"), contract.InitMsg{}); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}

	res, err := contract.Execute(deps, env, hosttest.NewInfo("creator"), transferMsg("bob"))
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(res.Messages) != 0 {
		t.Errorf("got %d messages, want 0", len(res.Messages))
	}

	if owner := queryOwnerOf(t, deps); owner != "bob" {
		t.Errorf("owner = %q, want bob", owner)
	}
}

func TestTransferOwnership_Unauthorized(t *testing.T) {
	deps := hosttest.NewDeps()
	env := hosttest.NewEnv()
	if _, err := contract.Instantiate(deps, env, hosttest.NewInfo("creator"), contract.InitMsg{}); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}

	_, err := contract.Execute(deps, env, hosttest.NewInfo("mallory"), transferMsg("mallory"))
	if !errors.IsUnauthorized(err) {
		t.Fatalf("got %v, want unauthorized kind", err)
	}

	if owner := queryOwnerOf(t, deps); owner != "creator" {
		t.Errorf("owner = %q, want creator after vetoed transfer", owner)
	}
}

func TestTransferOwnership_BadAddress(t *testing.T) {
	deps := hosttest.NewDeps()
	env := hosttest.NewEnv()
	if _, err := contract.Instantiate(deps, env, hosttest.NewInfo("creator"), contract.InitMsg{}); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}

	// Over-long target fails canonicalization inside the update; the
	// record must stay untouched.
	long := string(bytes.Repeat([]byte("x"), hosttest.CanonicalLength+1))
	_, err := contract.Execute(deps, env, hosttest.NewInfo("creator"), transferMsg(long))
	if !errors.IsAddressConversion(err) {
		t.Fatalf("got %v, want address_conversion kind", err)
	}

	if owner := queryOwnerOf(t, deps); owner != "creator" {
		t.Errorf("owner = %q, want creator after aborted transfer", owner)
	}
}

func TestTransferOwnership_Chained(t *testing.T) {
	deps := hosttest.NewDeps()
	env := hosttest.NewEnv()
	if _, err := contract.Instantiate(deps, env, hosttest.NewInfo("creator"), contract.InitMsg{}); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}

	// creator -> alice, then alice -> bob
	if _, err := contract.Execute(deps, env, hosttest.NewInfo("creator"), transferMsg("alice")); err != nil {
		t.Fatalf("first transfer: %v", err)
	}
	if _, err := contract.Execute(deps, env, hosttest.NewInfo("alice"), transferMsg("bob")); err != nil {
		t.Fatalf("second transfer: %v", err)
	}
	if owner := queryOwnerOf(t, deps); owner != "bob" {
		t.Errorf("owner = %q, want bob", owner)
	}

	// The original owner has no standing left
	_, err := contract.Execute(deps, env, hosttest.NewInfo("creator"), transferMsg("creator"))
	if !errors.IsUnauthorized(err) {
		t.Errorf("got %v, want unauthorized kind", err)
	}
}

func TestExecute_MalformedUnion(t *testing.T) {
	tests := []struct {
		name string
		msg  contract.ExecuteMsg
	}{
		{"no variant", contract.ExecuteMsg{}},
		{"both variants", contract.ExecuteMsg{
			Forward:           &contract.ForwardMsg{Msg: types.NewCosmosMsg([]byte(`{}`))},
			TransferOwnership: &contract.TransferMsg{Owner: "bob"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := hosttest.NewDeps()
			env := hosttest.NewEnv()
			if _, err := contract.Instantiate(deps, env, hosttest.NewInfo("creator"), contract.InitMsg{}); err != nil {
				t.Fatalf("Instantiate: %v", err)
			}

			_, err := contract.Execute(deps, env, hosttest.NewInfo("creator"), tt.msg)
			if !errors.IsDeserialize(err) {
				t.Errorf("got %v, want deserialize kind", err)
			}
			if owner := queryOwnerOf(t, deps); owner != "creator" {
				t.Errorf("owner = %q, want creator", owner)
			}
		})
	}
}

func TestQuery_MalformedUnion(t *testing.T) {
	deps := hosttest.NewDeps()

	_, err := contract.Query(deps, hosttest.NewEnv(), contract.QueryMsg{})
	if !errors.IsDeserialize(err) {
		t.Errorf("got %v, want deserialize kind", err)
	}
}

// TestLifecycle walks the whole ownership story end to end: initialize,
// forward as owner, hand off, then verify the old owner is locked out and
// the new owner is in.
func TestLifecycle(t *testing.T) {
	deps := hosttest.NewDeps()
	env := hosttest.NewEnv()
	raw := `{"custom":{"ping":{}}}`

	if _, err := contract.Instantiate(deps, env, hosttest.NewInfo("creator"), contract.InitMsg{}); err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if owner := queryOwnerOf(t, deps); owner != "creator" {
		t.Fatalf("owner = %q, want creator", owner)
	}

	res, err := contract.Execute(deps, env, hosttest.NewInfo("creator"), forwardMsg(raw))
	if err != nil {
		t.Fatalf("forward as creator: %v", err)
	}
	if len(res.Messages) != 1 || !bytes.Equal(res.Messages[0].Raw(), []byte(raw)) {
		t.Fatalf("forward response = %+v", res)
	}

	if _, err := contract.Execute(deps, env, hosttest.NewInfo("creator"), transferMsg("bob")); err != nil {
		t.Fatalf("transfer to bob: %v", err)
	}

	_, err = contract.Execute(deps, env, hosttest.NewInfo("creator"), forwardMsg(raw))
	if !errors.IsUnauthorized(err) {
		t.Fatalf("forward as old owner: got %v, want unauthorized", err)
	}

	res, err = contract.Execute(deps, env, hosttest.NewInfo("bob"), forwardMsg(raw))
	if err != nil {
		t.Fatalf("forward as bob: %v", err)
	}
	if len(res.Messages) != 1 || !bytes.Equal(res.Messages[0].Raw(), []byte(raw)) {
		t.Fatalf("forward response = %+v", res)
	}
}
