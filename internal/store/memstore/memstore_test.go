package memstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	s := New()
	ctx := context.Background()

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)

	in := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'X'

	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(v), "stored value must not alias the caller's slice")

	v[0] = 'Y'
	v, _ = s.Get(ctx, "k")
	assert.Equal(t, "abc", string(v), "returned value must not alias the stored slice")

	require.NoError(t, s.Delete(ctx, "k"))
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.NoError(t, s.Close())
}
