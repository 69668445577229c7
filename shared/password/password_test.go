package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hms/shared/password"
)

func TestHash(t *testing.T) {
	hash, err := password.Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	other, err := password.Hash("s3cret!")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "salted hashes differ")

	_, err = password.Hash("")
	assert.ErrorIs(t, err, password.ErrEmptyPassword)
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("s3cret!")
	require.NoError(t, err)

	tests := []struct {
		name    string
		plain   string
		hash    string
		wantErr error
	}{
		{name: "match", plain: "s3cret!", hash: hash},
		{name: "mismatch", plain: "wrong", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", plain: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", plain: "s3cret!", hash: "", wantErr: password.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.plain, tt.hash)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}

	assert.Error(t, password.Verify("s3cret!", "not-a-bcrypt-hash"))
}
