package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hongminglow/dataflow-be/internal/storage"
	"github.com/hongminglow/dataflow-be/internal/storage/storagetest"
)

func TestStoreContract(t *testing.T) {
	storagetest.Run(t, New())
}

func TestStoreCopiesBuffers(t *testing.T) {
	s := New()
	buf := []byte(`"a"`)
	require.NoError(t, s.Set(context.Background(), storage.KeyUsers, buf))
	buf[1] = 'b'

	got, err := s.Get(context.Background(), storage.KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, `"a"`, string(got))
}
