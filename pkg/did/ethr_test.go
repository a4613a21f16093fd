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
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb7"

func TestEthrDIDFromAddress(t *testing.T) {
	lower := strings.ToLower(testAddress)

	tests := []struct {
		name string
		opts *EthrOptions
		want string
	}{
		{"nil options", nil, "did:ethr:" + lower},
		{"explicit mainnet network", &EthrOptions{Network: "mainnet"}, "did:ethr:" + lower},
		{"explicit chain id 1", &EthrOptions{ChainID: 1}, "did:ethr:" + lower},
		{"named network", &EthrOptions{Network: "polygon"}, "did:ethr:polygon:" + lower},
		{"chain id", &EthrOptions{ChainID: 137}, "did:ethr:0x89:" + lower},
		{"network wins over chain id", &EthrOptions{Network: "sepolia", ChainID: 137}, "did:ethr:sepolia:" + lower},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := EthrDIDFromAddress(testAddress, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d)
		})
	}
}

func TestEthrDIDFromAddress_InvalidAddress(t *testing.T) {
	_, err := EthrDIDFromAddress("0x1234", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidAddress))
}

func TestPkhDIDFromAddress(t *testing.T) {
	lower := strings.ToLower(testAddress)

	d, err := PkhDIDFromAddress(testAddress, 137)
	require.NoError(t, err)
	assert.Equal(t, "did:pkh:eip155:137:"+lower, d)

	// Zero chain id defaults to mainnet.
	d, err = PkhDIDFromAddress(testAddress, 0)
	require.NoError(t, err)
	assert.Equal(t, "did:pkh:eip155:1:"+lower, d)
}

func TestEVMAddressFromDID_RoundTrip(t *testing.T) {
	lower := strings.ToLower(testAddress)

	// Bare, network-qualified, chain-qualified and pkh forms all
	// reproduce the (lower-cased) address.
	for _, opts := range []*EthrOptions{nil, {Network: "polygon"}, {ChainID: 42161}} {
		d, err := EthrDIDFromAddress(testAddress, opts)
		require.NoError(t, err)

		got, err := EVMAddressFromDID(d)
		require.NoError(t, err)
		assert.Equal(t, lower, got)
	}

	d, err := PkhDIDFromAddress(testAddress, 10)
	require.NoError(t, err)
	got, err := EVMAddressFromDID(d)
	require.NoError(t, err)
	assert.Equal(t, lower, got)
}

func TestEVMAddressFromDID_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"not an evm did", "did:key:z6Mk", ErrInvalidFormat},
		{"ethr too many segments", "did:ethr:a:b:" + testAddress, ErrInvalidFormat},
		{"ethr bad address", "did:ethr:0x1234", ErrInvalidAddress},
		{"eip155 too few segments", "did:pkh:eip155:" + testAddress, ErrInvalidFormat},
		{"eip155 bad address", "did:pkh:eip155:1:nothex", ErrInvalidAddress},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EVMAddressFromDID(tt.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestChainIDFromDID(t *testing.T) {
	lower := strings.ToLower(testAddress)

	tests := []struct {
		name   string
		in     string
		want   int64
		wantOK bool
	}{
		{"named network", "did:ethr:polygon:" + lower, 137, true},
		{"hex chain id", "did:ethr:0xa4b1:" + lower, 42161, true},
		{"implicit mainnet", "did:ethr:" + lower, 1, true},
		{"unknown network", "did:ethr:unknownnet:" + lower, 0, false},
		{"bad hex", "did:ethr:0xzz:" + lower, 0, false},
		{"eip155 decimal", "did:pkh:eip155:11155111:" + lower, 11155111, true},
		{"eip155 bad decimal", "did:pkh:eip155:abc:" + lower, 0, false},
		{"not an evm did", "did:key:z6Mk", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := ChainIDFromDID(tt.in)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, id)
		})
	}
}
