// Copyright (C) 2025 SAGE-X Project
//
// This file is part of sage-did-go.
//
// sage-did-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sage-did-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with sage-did-go.  If not, see <https://www.gnu.org/licenses/>.

package signer

import (
	"context"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEVMSigner(t *testing.T) (*EVMSigner, string) {
	t.Helper()
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)

	s, err := NewEVMSigner(hex.EncodeToString(ethcrypto.FromECDSA(key)))
	require.NoError(t, err)
	return s, ethcrypto.PubkeyToAddress(key.PublicKey).Hex()
}

func TestEVMSigner_SignVerify_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s, address := newTestEVMSigner(t)

	sig, err := s.Sign(ctx, "evm message")
	require.NoError(t, err)

	assert.True(t, VerifyEVM("evm message", sig, address))
	assert.False(t, VerifyEVM("tampered message", sig, address))
	assert.Equal(t, address, s.PublicMaterial())
}

func TestEVMSigner_SignatureShape(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestEVMSigner(t)

	sig, err := s.Sign(ctx, "msg")
	require.NoError(t, err)

	raw, err := hexutil.Decode(sig)
	require.NoError(t, err)
	require.Len(t, raw, 65)
	// Recovery byte is serialized wallet-style.
	assert.Contains(t, []byte{27, 28}, raw[64])
}

func TestEVMSigner_ZeroXPrefixAccepted(t *testing.T) {
	key, err := ethcrypto.GenerateKey()
	require.NoError(t, err)
	keyHex := hex.EncodeToString(ethcrypto.FromECDSA(key))

	bare, err := NewEVMSigner(keyHex)
	require.NoError(t, err)
	prefixed, err := NewEVMSigner("0x" + keyHex)
	require.NoError(t, err)

	assert.Equal(t, bare.Address(), prefixed.Address())
}

func TestVerifyEVM_WrongAddress(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestEVMSigner(t)
	_, otherAddress := newTestEVMSigner(t)

	sig, err := s.Sign(ctx, "msg")
	require.NoError(t, err)

	assert.False(t, VerifyEVM("msg", sig, otherAddress))
}

func TestVerifyEVM_CaseInsensitiveAddress(t *testing.T) {
	ctx := context.Background()
	s, address := newTestEVMSigner(t)

	sig, err := s.Sign(ctx, "msg")
	require.NoError(t, err)

	assert.True(t, VerifyEVM("msg", sig, strings.ToLower(address)))
	assert.True(t, VerifyEVM("msg", sig, strings.ToUpper(strings.TrimPrefix(address, "0x"))))
}

func TestVerifyEVM_MalformedInput(t *testing.T) {
	_, address := newTestEVMSigner(t)

	assert.False(t, VerifyEVM("msg", "not-a-signature", address))
	assert.False(t, VerifyEVM("msg", "0x1234", address))
	assert.False(t, VerifyEVM("msg", "0x"+strings.Repeat("00", 65), address))
	assert.False(t, VerifyEVM("msg", "0x"+strings.Repeat("ab", 65), "not-an-address"))
}

func TestNewEVMSigner_InvalidKey(t *testing.T) {
	_, err := NewEVMSigner("not-hex")
	assert.Error(t, err)

	_, err = NewEVMSigner("abcd")
	assert.Error(t, err)
}
