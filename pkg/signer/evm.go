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
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"

	"github.com/sage-x-project/sage-did-go/pkg/did"
)

// EVMSigner signs messages with a secp256k1 key using the EIP-191
// personal-message scheme. Signatures are 65-byte [R || S || V] with V in
// {27, 28}, 0x-hex encoded.
type EVMSigner struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

// NewEVMSigner creates a signer from a hex private key, with or without
// the 0x prefix.
func NewEVMSigner(privateKeyHex string) (*EVMSigner, error) {
	key, err := ethcrypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse evm private key: %w", err)
	}
	return &EVMSigner{
		key:     key,
		address: ethcrypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Provider returns did.ProviderEVM.
func (s *EVMSigner) Provider() did.Provider {
	return did.ProviderEVM
}

// Sign signs the EIP-191 hash of message and returns the serialized
// signature.
func (s *EVMSigner) Sign(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}
	hash := accounts.TextHash([]byte(message))
	sig, err := ethcrypto.Sign(hash, s.key)
	if err != nil {
		return "", fmt.Errorf("sign message: %w", err)
	}
	// geth yields V in {0, 1}; wallets serialize 27/28.
	sig[64] += 27
	return hexutil.Encode(sig), nil
}

// PublicMaterial returns the EIP-55 checksummed address.
func (s *EVMSigner) PublicMaterial() string {
	return s.address.Hex()
}

// Address returns the signer's account address.
func (s *EVMSigner) Address() common.Address {
	return s.address
}

// VerifyEVM recovers the signer address from an EIP-191 signature and
// compares it, case-insensitively, to expectedAddress. Any recovery
// failure returns false, never an error.
func VerifyEVM(message, signature, expectedAddress string) bool {
	if !common.IsHexAddress(expectedAddress) {
		logVerify(did.ProviderEVM, outcomeMalformed, "expected address is not a hex address")
		return false
	}
	sig, err := hexutil.Decode(signature)
	if err != nil || len(sig) != ethcrypto.SignatureLength {
		logVerify(did.ProviderEVM, outcomeMalformed, "signature is not 65 0x-hex bytes")
		return false
	}

	recoverable := make([]byte, len(sig))
	copy(recoverable, sig)
	if recoverable[64] >= 27 {
		recoverable[64] -= 27
	}

	pub, err := ethcrypto.SigToPub(accounts.TextHash([]byte(message)), recoverable)
	if err != nil {
		logVerify(did.ProviderEVM, outcomeMalformed, "public key recovery failed")
		return false
	}
	if ethcrypto.PubkeyToAddress(*pub) != common.HexToAddress(expectedAddress) {
		logVerify(did.ProviderEVM, outcomeMismatch, "recovered address does not match")
		return false
	}
	return true
}
