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

// sage-did is a local credential-signing helper: it resolves an agent DID
// and private key from the environment (or a config file) and produces
// signatures and authentication payloads. Private keys never leave the
// process.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sage-x-project/sage-did-go/pkg/config"
	"github.com/sage-x-project/sage-did-go/pkg/resolver"
	"github.com/sage-x-project/sage-did-go/pkg/signer"
	"github.com/sage-x-project/sage-did-go/pkg/toolkit"
)

var (
	flagConfig   string
	flagProvider string
	flagVerbose  bool

	logger = zap.NewNop()
)

func main() {
	root := &cobra.Command{
		Use:           "sage-did",
		Short:         "Sign messages and build auth payloads with agent DIDs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flagVerbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = l
				signer.SetLogger(logger.Named("signer"))
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "optional config file with AGENT_* keys")
	root.PersistentFlags().StringVarP(&flagProvider, "provider", "p", "", "restrict to a provider: key, solana or evm")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newKeygenCmd(), newSignCmd(), newVerifyCmd(), newAuthCmd(), newResolveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// newToolkit builds a toolkit honoring --config.
func newToolkit() (*toolkit.Toolkit, error) {
	opts := []toolkit.Option{toolkit.WithLogger(logger)}
	if flagConfig != "" {
		cfg, err := config.Load(config.WithFile(flagConfig))
		if err != nil {
			return nil, err
		}
		opts = append(opts, toolkit.WithResolver(cfg.Resolver(resolver.WithLogger(logger.Named("resolver")))))
	}
	return toolkit.New(opts...), nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
