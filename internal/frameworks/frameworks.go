package frameworks

import "github.com/stencilhq/cli/internal/scaffold"

// All returns every family blueprint in registration order. The order is
// part of the discovery contract: identifier listings follow it.
func All() []*scaffold.Blueprint {
	return []*scaffold.Blueprint{
		Vite(),
		React(),
		NextJS(),
		Vue(),
		Svelte(),
		Angular(),
		Express(),
		NestJS(),
		FastAPI(),
		Flask(),
		Django(),
		Spring(),
	}
}

// RegisterAll registers every family blueprint. An identifier collision
// here is a startup configuration fault and aborts the process.
func RegisterAll(r *scaffold.Registry) error {
	for _, bp := range All() {
		if err := r.Register(bp); err != nil {
			return err
		}
	}
	return nil
}
