// Package resolver materializes signing credentials from environment
// variables.
//
// A credential is resolved from a (DID, private key) variable pair.
// Provider-scoped variables (AGENT_SOLANA_*, AGENT_EVM_*) take precedence
// over the generic AGENT_DID / AGENT_PRIVATE_KEY pair, which every branch
// accepts as a fallback. Branches run in fixed order — solana, evm, key —
// and the first satisfied one wins:
//
//	r := resolver.New()
//	cred, err := r.Resolve("")                  // any provider
//	cred, err := r.Resolve(did.ProviderSolana)  // restrict to solana
//
// The resolved Credential carries a ready-to-use signer.MessageSigner;
// key material is validated once, at resolve time. Credentials live only
// in process memory and are re-read from the environment on every call.
package resolver
