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

package did

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// evmNetworks maps did:ethr network names to chain ids.
var evmNetworks = map[string]int64{
	"mainnet":  1,
	"goerli":   5,
	"sepolia":  11155111,
	"polygon":  137,
	"optimism": 10,
	"arbitrum": 42161,
}

// EthrOptions selects the network segment of a did:ethr DID.
// Network takes precedence over ChainID; mainnet (by either name or
// chain id 1) is elided, producing the 3-segment form.
type EthrOptions struct {
	ChainID int64
	Network string
}

// IsEVMAddress reports whether s is a syntactically valid hex EVM address.
func IsEVMAddress(s string) bool {
	return common.IsHexAddress(s)
}

// EthrDIDFromAddress converts an EVM address to a did:ethr DID.
// The address is lower-cased. opts may be nil for the mainnet form.
func EthrDIDFromAddress(address string, opts *EthrOptions) (string, error) {
	if !IsEVMAddress(address) {
		return "", fmt.Errorf("%w: %q is not a valid EVM address", ErrInvalidAddress, address)
	}
	addr := strings.ToLower(address)

	if opts != nil {
		if opts.Network != "" && opts.Network != "mainnet" {
			return fmt.Sprintf("did:ethr:%s:%s", opts.Network, addr), nil
		}
		if opts.ChainID != 0 && opts.ChainID != 1 {
			return fmt.Sprintf("did:ethr:0x%x:%s", opts.ChainID, addr), nil
		}
	}
	return EthrPrefix + addr, nil
}

// PkhDIDFromAddress converts an EVM address to a did:pkh:eip155 DID.
// chainID defaults to 1 (mainnet) when zero.
func PkhDIDFromAddress(address string, chainID int64) (string, error) {
	if !IsEVMAddress(address) {
		return "", fmt.Errorf("%w: %q is not a valid EVM address", ErrInvalidAddress, address)
	}
	if chainID == 0 {
		chainID = 1
	}
	return fmt.Sprintf("did:pkh:eip155:%d:%s", chainID, strings.ToLower(address)), nil
}

// EVMAddressFromDID extracts the address from a did:ethr or
// did:pkh:eip155 DID.
func EVMAddressFromDID(did string) (string, error) {
	parts := strings.Split(did, ":")

	switch {
	case strings.HasPrefix(did, EthrPrefix):
		var address string
		switch len(parts) {
		case 3:
			address = parts[2]
		case 4:
			address = parts[3]
		default:
			return "", fmt.Errorf("%w: did:ethr expects 3 or 4 segments, got %d", ErrInvalidFormat, len(parts))
		}
		if !IsEVMAddress(address) {
			return "", fmt.Errorf("%w: %q is not a valid EVM address", ErrInvalidAddress, address)
		}
		return address, nil

	case strings.HasPrefix(did, PkhEIP155Prefix):
		if len(parts) != 5 {
			return "", fmt.Errorf("%w: did:pkh:eip155 expects 5 segments, got %d", ErrInvalidFormat, len(parts))
		}
		address := parts[4]
		if !IsEVMAddress(address) {
			return "", fmt.Errorf("%w: %q is not a valid EVM address", ErrInvalidAddress, address)
		}
		return address, nil

	default:
		return "", fmt.Errorf("%w: %q is not an EVM DID", ErrInvalidFormat, did)
	}
}

// ChainIDFromDID resolves the chain id encoded in an EVM DID. The second
// return value is false when the DID carries no recognizable chain id
// (unknown network name, malformed hex, or a non-EVM DID). A 3-segment
// did:ethr implies mainnet.
func ChainIDFromDID(did string) (int64, bool) {
	parts := strings.Split(did, ":")

	switch {
	case strings.HasPrefix(did, EthrPrefix):
		switch len(parts) {
		case 3:
			return 1, true
		case 4:
			seg := parts[2]
			if strings.HasPrefix(seg, "0x") {
				id, err := strconv.ParseInt(seg[2:], 16, 64)
				if err != nil {
					return 0, false
				}
				return id, true
			}
			id, ok := evmNetworks[seg]
			return id, ok
		default:
			return 0, false
		}

	case strings.HasPrefix(did, PkhEIP155Prefix):
		if len(parts) != 5 {
			return 0, false
		}
		id, err := strconv.ParseInt(parts[3], 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true

	default:
		return 0, false
	}
}
