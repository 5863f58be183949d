package dh

import (
	"errors"
	"fmt"
	"math/big"
	"testing"

	"ClassiCrypt"
	"ClassiCrypt/modarith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v4/ring"
)

func testString(opName string, p Parameter) string {
	return fmt.Sprintf("%s/Bits=%d/Generator=%v", opName, p.GetBitSize(), p.GetGenerator())
}

func TestTextbookExchange(t *testing.T) {
	params, err := NewParameter(big.NewInt(23), big.NewInt(5))
	require.NoError(t, err)

	alice, err := NewPartyFromPrivate(params, big.NewInt(6))
	require.NoError(t, err)
	bob, err := NewPartyFromPrivate(params, big.NewInt(15))
	require.NoError(t, err)
	assert.Equal(t, int64(8), alice.PublicKey().Int64())
	assert.Equal(t, int64(19), bob.PublicKey().Int64())

	s1, err := alice.SharedSecret(bob.PublicKey())
	require.NoError(t, err)
	s2, err := bob.SharedSecret(alice.PublicKey())
	require.NoError(t, err)
	assert.Equal(t, int64(2), s1.Int64())
	assert.Equal(t, 0, s1.Cmp(s2))
}

func TestAgreement(t *testing.T) {
	logger := ClassiCrypt.NewLogger(ClassiCrypt.DEBUG)
	xof := ClassiCrypt.NewXOF([]byte("dh/agreement"))

	small, err := GenerateParameter(xof, 64)
	require.NoError(t, err)

	for _, params := range []Parameter{small, MODP2048} {
		params := params
		t.Run(testString("DH/Agreement", params), func(t *testing.T) {
			for i := 0; i < 4; i++ {
				alice, err := NewParty(params, xof)
				require.NoError(t, err)
				bob, err := NewParty(params, xof)
				require.NoError(t, err)

				s1, err := alice.SharedSecret(bob.PublicKey())
				require.NoError(t, err)
				s2, err := bob.SharedSecret(alice.PublicKey())
				require.NoError(t, err)
				require.Equal(t, 0, s1.Cmp(s2))

				k1, err := alice.SessionKey(bob.PublicKey(), []byte("session"), 32)
				require.NoError(t, err)
				k2, err := bob.SessionKey(alice.PublicKey(), []byte("session"), 32)
				require.NoError(t, err)
				require.Equal(t, k1, k2)
				require.Len(t, k1, 32)
				logger.PrintMessage("Both parties derived the same session key.")
			}
			logger.PrintMemUsage("DHAgreementTest")
		})
	}
}

func TestGenerateParameter(t *testing.T) {
	xof := ClassiCrypt.NewXOF([]byte("dh/generate"))
	params, err := GenerateParameter(xof, 48)
	require.NoError(t, err)
	require.Equal(t, 48, params.GetBitSize())

	p := params.GetPrime().Uint64()
	q := (p - 1) / 2
	assert.True(t, ring.IsPrime(p))
	assert.True(t, ring.IsPrime(q))

	// the generator has order p-1: g^2 != 1 and g^q != 1
	g := params.GetGenerator()
	sq, err := modarith.ModExp(g, big.NewInt(2), params.GetPrime())
	require.NoError(t, err)
	assert.NotEqual(t, int64(1), sq.Int64())
	gq, err := modarith.ModExp(g, new(big.Int).SetUint64(q), params.GetPrime())
	require.NoError(t, err)
	assert.NotEqual(t, int64(1), gq.Int64())

	_, err = GenerateParameter(xof, 8)
	assert.True(t, errors.Is(err, ClassiCrypt.ErrInvalidModulus))
}

func TestParameterValidation(t *testing.T) {
	for _, p := range []*big.Int{nil, big.NewInt(0), big.NewInt(-7), big.NewInt(3), big.NewInt(24), big.NewInt(25)} {
		_, err := NewParameter(p, big.NewInt(2))
		assert.True(t, errors.Is(err, ClassiCrypt.ErrInvalidModulus), "prime %v", p)
	}
	for _, g := range []*big.Int{nil, big.NewInt(1), big.NewInt(22), big.NewInt(30)} {
		_, err := NewParameter(big.NewInt(23), g)
		assert.True(t, errors.Is(err, ClassiCrypt.ErrInvalidKey), "generator %v", g)
	}
}

func TestKeyValidation(t *testing.T) {
	params, err := NewParameter(big.NewInt(23), big.NewInt(5))
	require.NoError(t, err)

	for _, priv := range []*big.Int{nil, big.NewInt(0), big.NewInt(-1), big.NewInt(23), big.NewInt(100)} {
		_, err := params.PublicKey(priv)
		assert.True(t, errors.Is(err, ClassiCrypt.ErrInvalidKey), "private %v", priv)
	}
	_, err = params.PublicKey(big.NewInt(22))
	assert.NoError(t, err)

	for _, pub := range []*big.Int{nil, big.NewInt(0), big.NewInt(1), big.NewInt(22), big.NewInt(23)} {
		_, err := params.SharedSecret(big.NewInt(6), pub)
		assert.True(t, errors.Is(err, ClassiCrypt.ErrInvalidKey), "public %v", pub)
	}

	_, err = params.SharedSecret(big.NewInt(0), big.NewInt(8))
	assert.True(t, errors.Is(err, ClassiCrypt.ErrInvalidKey))
}

func TestPrivateKeyRange(t *testing.T) {
	xof := ClassiCrypt.NewXOF([]byte("dh/range"))
	params, err := NewParameter(big.NewInt(23), big.NewInt(5))
	require.NoError(t, err)
	for i := 0; i < 200; i++ {
		priv, err := params.GeneratePrivateKey(xof)
		require.NoError(t, err)
		require.True(t, priv.Cmp(big.NewInt(2)) >= 0 && priv.Cmp(big.NewInt(21)) <= 0, "private %v", priv)
	}
}

func TestPartyDoesNotShareState(t *testing.T) {
	xof := ClassiCrypt.NewXOF([]byte("dh/copy"))
	alice, err := NewParty(MODP2048, xof)
	require.NoError(t, err)
	pub := alice.PublicKey()
	pub.SetInt64(0)
	assert.NotEqual(t, int64(0), alice.PublicKey().Int64())
	assert.Equal(t, MODP2048.GetPrime(), alice.Params().GetPrime())
}
