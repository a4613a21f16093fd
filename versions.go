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

// Package sagedid provides version information for sage-did-go.
package sagedid

const (
	// Version is the current version of sage-did-go
	Version = "1.0.0-dev"

	// DIDCoreVersion is the W3C DID Core specification version this library targets
	// See: https://www.w3.org/TR/did-core/
	DIDCoreVersion = "1.0"

	// CAIPVersion is the Chain Agnostic Improvement Proposal set used for
	// did:pkh account identifiers (CAIP-2 chains, CAIP-10 accounts)
	CAIPVersion = "CAIP-10"
)

// SupportedDIDMethods lists the DID methods this library can encode, decode
// and sign for.
var SupportedDIDMethods = []string{"did:key", "did:pkh", "did:ethr"}

// VersionInfo contains detailed version information
type VersionInfo struct {
	SageDIDVersion      string
	DIDCoreVersion      string
	CAIPVersion         string
	SupportedDIDMethods []string
}

// GetVersionInfo returns detailed version information
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		SageDIDVersion:      Version,
		DIDCoreVersion:      DIDCoreVersion,
		CAIPVersion:         CAIPVersion,
		SupportedDIDMethods: SupportedDIDMethods,
	}
}
