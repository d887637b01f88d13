package auth

import "context"

type chain []Verifier

// Chain tries each verifier in order and accepts the first identity returned.
// It returns nil when no verifier is configured.
func Chain(vs ...Verifier) Verifier {
	out := make(chain, 0, len(vs))
	for _, v := range vs {
		if v != nil {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

func (c chain) Verify(ctx context.Context, token string) (*Identity, error) {
	for _, v := range c {
		if id, err := v.Verify(ctx, token); err == nil {
			return id, nil
		}
	}
	return nil, ErrInvalidToken
}
