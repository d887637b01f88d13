package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rejectAll struct{}

func (rejectAll) Verify(context.Context, string) (*Identity, error) { return nil, ErrInvalidToken }

func TestChain(t *testing.T) {
	assert.Nil(t, Chain())
	assert.Nil(t, Chain(nil, nil))

	jwtm := NewJWTManager("secret", time.Hour)
	assert.Equal(t, Verifier(jwtm), Chain(nil, jwtm))

	v := Chain(rejectAll{}, jwtm)
	token, err := jwtm.Generate("t1", "a@b.c")
	require.NoError(t, err)

	id, err := v.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "t1", id.TenantID)

	_, err = v.Verify(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
