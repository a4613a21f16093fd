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

// Example: generate a credential, export it to the environment, then sign
// and verify a message through the toolkit — the same flow a protocol
// adapter uses, minus the network.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/sage-x-project/sage-did-go/pkg/keygen"
	"github.com/sage-x-project/sage-did-go/pkg/resolver"
	"github.com/sage-x-project/sage-did-go/pkg/signer"
	"github.com/sage-x-project/sage-did-go/pkg/toolkit"
)

func main() {
	ctx := context.Background()

	// Pretend the operator configured a Solana identity.
	cred, err := keygen.Solana()
	if err != nil {
		log.Fatal(err)
	}
	os.Setenv(resolver.EnvSolanaDID, cred.DID)
	os.Setenv(resolver.EnvSolanaPrivateKey, cred.PrivateKey)

	tk := toolkit.New()
	res, err := tk.CreateDIDSignature(ctx, "hello from sage-did-go", "")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("did:      ", res.DID)
	fmt.Println("provider: ", res.Provider)
	fmt.Println("signature:", res.Signature)

	ok := signer.VerifySolana(res.Message, res.Signature, cred.Public)
	fmt.Println("verified: ", ok)
}
