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

// Example: build an authentication payload and verify it the way a remote
// service would, including nonce replay rejection.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sage-x-project/sage-did-go/pkg/auth"
	"github.com/sage-x-project/sage-did-go/pkg/keygen"
	"github.com/sage-x-project/sage-did-go/pkg/nonce"
	"github.com/sage-x-project/sage-did-go/pkg/resolver"
)

func main() {
	ctx := context.Background()

	cred, err := keygen.Ed25519()
	if err != nil {
		log.Fatal(err)
	}
	os.Setenv(resolver.EnvDID, cred.DID)
	os.Setenv(resolver.EnvPrivateKey, cred.PrivateKey)

	resolved, err := resolver.New().Resolve("")
	if err != nil {
		log.Fatal(err)
	}

	payload, err := auth.BuildPayload(ctx, resolved)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("payload: did=%s ts=%d nonce=%s\n", payload.DID, payload.Timestamp, payload.Nonce)

	// Remote-verifier side: check the signature, freshness, and nonce reuse.
	tracker := nonce.NewTracker(time.Minute)
	defer tracker.Stop()
	opts := &auth.VerifyOptions{MaxAge: 30 * time.Second, Tracker: tracker}

	fmt.Println("first verify: ", auth.VerifyPayload(ctx, payload, cred.Public, opts))
	fmt.Println("replayed:     ", auth.VerifyPayload(ctx, payload, cred.Public, opts))
}
