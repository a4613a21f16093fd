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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sage-x-project/sage-did-go/pkg/did"
	"github.com/sage-x-project/sage-did-go/pkg/keygen"
	"github.com/sage-x-project/sage-did-go/pkg/resolver"
)

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv(resolver.EnvDID, "did:key:zTest")
	t.Setenv(resolver.EnvPrivateKey, "secret")

	cfg, err := Load()
	require.NoError(t, err)

	lookup := cfg.Lookup()
	v, ok := lookup(resolver.EnvDID)
	assert.True(t, ok)
	assert.Equal(t, "did:key:zTest", v)

	// Unset variables are reported absent, not empty-present.
	_, ok = lookup(resolver.EnvEVMDID)
	assert.False(t, ok)
}

func TestLoad_FileUnderneathEnvironment(t *testing.T) {
	cred, err := keygen.Ed25519()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "agent.yaml")
	content := resolver.EnvDID + ": " + cred.DID + "\n" +
		resolver.EnvPrivateKey + ": " + cred.PrivateKey + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(WithFile(path))
	require.NoError(t, err)

	resolved, err := cfg.Resolver().Resolve(did.ProviderKey)
	require.NoError(t, err)
	assert.Equal(t, cred.DID, resolved.DID)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load(WithFile(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, err)
}
