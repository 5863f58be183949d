// Package dh implements finite-field Diffie-Hellman key agreement over
// modarith.ModExp.
package dh

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"ClassiCrypt"
	"ClassiCrypt/kdf"
	"ClassiCrypt/modarith"
)

// GeneratePrivateKey draws a private exponent uniformly from [2, p-2].
// A nil random uses crypto/rand.
func (params Parameter) GeneratePrivateKey(random io.Reader) (*big.Int, error) {
	if random == nil {
		random = rand.Reader
	}
	hi := new(big.Int).Sub(params.Prime, big.NewInt(2))
	priv, err := modarith.RandomInRange(random, big.NewInt(2), hi)
	if err != nil {
		return nil, fmt.Errorf("failed to generate private key: %w", err)
	}
	return priv, nil
}

// PublicKey returns g^private mod p for a private exponent in [1, p-1]
func (params Parameter) PublicKey(private *big.Int) (*big.Int, error) {
	if private == nil || private.Sign() <= 0 || private.Cmp(params.Prime) >= 0 {
		return nil, fmt.Errorf("%w: private exponent must lie in [1, p-1]", ClassiCrypt.ErrInvalidKey)
	}
	return modarith.ModExp(params.Generator, private, params.Prime)
}

// ValidatePublicKey rejects 0, 1, p-1 and anything outside the group,
// which would force the shared secret into a trivial subgroup
func (params Parameter) ValidatePublicKey(public *big.Int) error {
	pMinusOne := new(big.Int).Sub(params.Prime, big.NewInt(1))
	if public == nil || public.Cmp(big.NewInt(1)) <= 0 || public.Cmp(pMinusOne) >= 0 {
		return fmt.Errorf("%w: peer public value must lie in [2, p-2]", ClassiCrypt.ErrInvalidKey)
	}
	return nil
}

// SharedSecret returns peerPublic^private mod p
func (params Parameter) SharedSecret(private, peerPublic *big.Int) (*big.Int, error) {
	if err := params.ValidatePublicKey(peerPublic); err != nil {
		return nil, err
	}
	if private == nil || private.Sign() <= 0 || private.Cmp(params.Prime) >= 0 {
		return nil, fmt.Errorf("%w: private exponent must lie in [1, p-1]", ClassiCrypt.ErrInvalidKey)
	}
	return modarith.ModExp(peerPublic, private, params.Prime)
}

// Party is one side of an exchange. It keeps only its own key pair;
// secrets derived from a peer are returned, never stored.
type Party struct {
	params  Parameter
	private *big.Int
	public  *big.Int
}

func NewParty(params Parameter, random io.Reader) (*Party, error) {
	priv, err := params.GeneratePrivateKey(random)
	if err != nil {
		return nil, err
	}
	return NewPartyFromPrivate(params, priv)
}

// NewPartyFromPrivate rebuilds a party from a known private exponent
func NewPartyFromPrivate(params Parameter, private *big.Int) (*Party, error) {
	pub, err := params.PublicKey(private)
	if err != nil {
		return nil, err
	}
	return &Party{
		params:  params,
		private: new(big.Int).Set(private),
		public:  pub,
	}, nil
}

func (p *Party) Params() Parameter {
	return p.params
}

// PublicKey returns a copy of the value sent to the peer
func (p *Party) PublicKey() *big.Int {
	return new(big.Int).Set(p.public)
}

func (p *Party) SharedSecret(peerPublic *big.Int) (*big.Int, error) {
	return p.params.SharedSecret(p.private, peerPublic)
}

// SessionKey derives a symmetric key of length bytes from the shared secret
func (p *Party) SessionKey(peerPublic *big.Int, info []byte, length int) (ClassiCrypt.Key, error) {
	secret, err := p.SharedSecret(peerPublic)
	if err != nil {
		return nil, err
	}
	return kdf.SharedKey(secret, p.params.Prime, info, length)
}
