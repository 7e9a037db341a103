package digest_test

import (
	"testing"

	"github.com/payswitch-intl/payswitch-go/digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonical = "MERCH123:TXN-1:100.00:PHP:Widget order:payer@example.com"

func TestKeyedSigner_KnownVector(t *testing.T) {
	signer, err := digest.NewKeyedSigner(digest.SHA1, "secret")
	require.NoError(t, err)

	sig, err := signer.Sign(canonical)
	require.NoError(t, err)
	assert.Equal(t, "3997b9fe2b2fa1cec56a3970af1228fb53e1749c", sig)
}

func TestKeyedSigner_Deterministic(t *testing.T) {
	signer, err := digest.NewKeyedSigner(digest.SHA1, "secret")
	require.NoError(t, err)

	first, err := signer.Sign(canonical)
	require.NoError(t, err)
	second, err := signer.Sign(canonical)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestKeyedSigner_SingleFieldChange(t *testing.T) {
	signer, err := digest.NewKeyedSigner(digest.SHA1, "secret")
	require.NoError(t, err)

	// one cent more changes the digest
	changed, err := signer.Sign("MERCH123:TXN-1:100.01:PHP:Widget order:payer@example.com")
	require.NoError(t, err)
	assert.Equal(t, "1e49e24a5a28fb20b5cff7950ab5cdd4b32e01f1", changed)

	// a one character key change does too
	other, err := digest.NewKeyedSigner(digest.SHA1, "secre7")
	require.NoError(t, err)
	sig, err := other.Sign(canonical)
	require.NoError(t, err)
	assert.Equal(t, "9cb9b165e61ce687e68e5b22d83fbff589dabb25", sig)
}

func TestKeyedSigner_Verify(t *testing.T) {
	signer, err := digest.NewKeyedSigner(digest.SHA1, "secret")
	require.NoError(t, err)

	sig, err := signer.Sign(canonical)
	require.NoError(t, err)
	assert.True(t, signer.Verify(canonical, sig))
	assert.False(t, signer.Verify(canonical, "deadbeef"))
	assert.False(t, signer.Verify(canonical+":tampered", sig))
}

func TestNewKeyedSigner_MissingKey(t *testing.T) {
	_, err := digest.NewKeyedSigner(digest.SHA1, "")
	assert.Error(t, err)
}

func TestAlgorithm_TextRoundTrip(t *testing.T) {
	text, err := digest.SHA1.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "SHA-1", string(text))

	var alg digest.Algorithm
	require.NoError(t, alg.UnmarshalText([]byte("SHA-256")))
	assert.Equal(t, "SHA-256", alg.String())

	assert.Error(t, alg.UnmarshalText([]byte("MD5")))
}
