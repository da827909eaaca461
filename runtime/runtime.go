package runtime

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/confio/mask/codec"
	"github.com/confio/mask/contract"
	"github.com/confio/mask/errors"
	"github.com/confio/mask/storage"
	"github.com/confio/mask/types"
)

// Runtime binds a store and an address capability into the three contract
// entry points over raw encoded payloads.
type Runtime struct {
	store storage.Storage
	api   contract.Api
	codec codec.Codec
}

// Option configures a Runtime
type Option func(*Runtime)

// WithCodec replaces the default JSON codec
func WithCodec(c codec.Codec) Option {
	return func(r *Runtime) {
		r.codec = c
	}
}

// New creates a Runtime over the given store and address capability
func New(store storage.Storage, api contract.Api, opts ...Option) *Runtime {
	r := &Runtime{
		store: store,
		api:   api,
		codec: codec.JSON{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runtime) deps() contract.Deps {
	return contract.Deps{
		Storage: r.store,
		Api:     r.api,
		Codec:   r.codec,
	}
}

// Instantiate decodes an init payload and creates the owner record
func (r *Runtime) Instantiate(env types.Env, info types.MessageInfo, msg []byte) (*types.Response, error) {
	call := newCall("instantiate")

	var initMsg contract.InitMsg
	if err := r.codec.Unmarshal(msg, &initMsg); err != nil {
		return nil, call.fail(errors.DeserializeFailed(errors.PhaseInstantiate, "InitMsg", err))
	}

	res, err := contract.Instantiate(r.deps(), env, info, initMsg)
	if err != nil {
		return nil, call.fail(err)
	}
	call.done()
	return res, nil
}

// Execute decodes a mutation request and dispatches it
func (r *Runtime) Execute(env types.Env, info types.MessageInfo, msg []byte) (*types.Response, error) {
	call := newCall("execute")

	var execMsg contract.ExecuteMsg
	if err := r.codec.Unmarshal(msg, &execMsg); err != nil {
		return nil, call.fail(errors.DeserializeFailed(errors.PhaseExecute, "ExecuteMsg", err))
	}

	res, err := contract.Execute(r.deps(), env, info, execMsg)
	if err != nil {
		return nil, call.fail(err)
	}
	call.done()
	return res, nil
}

// Query decodes a read-only request and returns the serialized result
func (r *Runtime) Query(env types.Env, msg []byte) ([]byte, error) {
	call := newCall("query")

	var queryMsg contract.QueryMsg
	if err := r.codec.Unmarshal(msg, &queryMsg); err != nil {
		return nil, call.fail(errors.DeserializeFailed(errors.PhaseQuery, "QueryMsg", err))
	}

	data, err := contract.Query(r.deps(), env, queryMsg)
	if err != nil {
		return nil, call.fail(err)
	}
	call.done()
	return data, nil
}

// call carries the correlation id for one entry-point invocation
type call struct {
	op string
	id string
}

func newCall(op string) call {
	c := call{op: op, id: uuid.NewString()}
	Logger().Debug("call started",
		zap.String("op", c.op),
		zap.String("call_id", c.id),
	)
	return c
}

func (c call) done() {
	Logger().Debug("call completed",
		zap.String("op", c.op),
		zap.String("call_id", c.id),
	)
}

// fail logs the typed error and returns it unchanged
func (c call) fail(err error) error {
	Logger().Debug("call failed",
		zap.String("op", c.op),
		zap.String("call_id", c.id),
		zap.Error(err),
	)
	return err
}
