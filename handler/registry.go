package handler

import (
	"reflect"
	"sync"

	"github.com/dmitrymomot/bindkit/wire"
)

// policyRegistry maps request types to projector policies. Bindings are
// established during service initialization and treated as immutable
// process-wide configuration afterwards; the lock only guards against
// misuse, not steady-state contention.
var policyRegistry = struct {
	mu sync.RWMutex
	m  map[reflect.Type]wire.Policy
}{m: make(map[reflect.Type]wire.Policy)}

// RegisterPolicy binds a projector policy to request type R. Every
// handler wrapped for R picks the policy up automatically unless it
// overrides it with WithPolicy. Call during service setup, before any
// request is served; registering the same type twice replaces the
// earlier binding.
//
//	func main() {
//		handler.RegisterPolicy[CreateUserRequest](apiV2Policy)
//		...
//	}
func RegisterPolicy[R any](p wire.Policy) {
	if p == nil {
		return
	}
	policyRegistry.mu.Lock()
	defer policyRegistry.mu.Unlock()
	policyRegistry.m[reflect.TypeFor[R]()] = p
}

// registeredPolicy looks up the policy bound to R. When R is an
// Intercepted wrapper, a policy registered for the payload type applies
// as well.
func registeredPolicy[R any]() (wire.Policy, bool) {
	policyRegistry.mu.RLock()
	defer policyRegistry.mu.RUnlock()
	t := reflect.TypeFor[R]()
	if p, ok := policyRegistry.m[t]; ok {
		return p, true
	}
	if payload, ok := interceptedPayload(t); ok {
		p, ok := policyRegistry.m[payload]
		return p, ok
	}
	return nil, false
}

var rawCaptureType = reflect.TypeFor[rawCapture]()

// interceptedPayload returns T when t is Intercepted[T] or a struct
// embedding it.
func interceptedPayload(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() != reflect.Struct || !reflect.PointerTo(t).Implements(rawCaptureType) {
		return nil, false
	}
	target := reflect.New(t).Interface().(rawCapture).bindTarget()
	return reflect.TypeOf(target).Elem(), true
}
