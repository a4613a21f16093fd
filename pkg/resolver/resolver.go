package resolver

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/sage-x-project/sage-did-go/pkg/did"
	"github.com/sage-x-project/sage-did-go/pkg/signer"
)

// Environment variables read by the resolver.
const (
	EnvDID        = "AGENT_DID"
	EnvPrivateKey = "AGENT_PRIVATE_KEY"

	EnvSolanaDID        = "AGENT_SOLANA_DID"
	EnvSolanaPrivateKey = "AGENT_SOLANA_PRIVATE_KEY"

	EnvEVMDID        = "AGENT_EVM_DID"
	EnvEVMPrivateKey = "AGENT_EVM_PRIVATE_KEY"
)

// ErrNoCredentials reports that no environment variable combination
// satisfied the resolver for the requested (or any) provider.
var ErrNoCredentials = errors.New("no credentials found")

// Credential is a resolved signing identity. The signer is constructed,
// and the key material validated, at resolve time; call sites never branch
// on the provider again.
type Credential struct {
	DID      string
	Provider did.Provider
	Signer   signer.MessageSigner
}

// Lookup reads one environment variable, os.LookupEnv-shaped.
type Lookup func(key string) (string, bool)

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookup replaces the environment source. Tests and config layers pass
// their own snapshot here.
func WithLookup(l Lookup) Option {
	return func(r *Resolver) {
		if l != nil {
			r.lookup = l
		}
	}
}

// WithLogger sets the resolver's logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// Resolver materializes credentials from the process environment. It holds
// no state beyond its configuration; every Resolve call re-reads the
// environment.
type Resolver struct {
	lookup Lookup
	logger *zap.Logger
}

// New creates a Resolver backed by os.LookupEnv unless overridden.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		lookup: os.LookupEnv,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the first credential whose environment variables are
// present and whose DID validates for its provider. Providers are checked
// in fixed order: solana, evm, key. hint, when non-empty, restricts the
// scan to that provider.
//
// The generic AGENT_DID / AGENT_PRIVATE_KEY pair is a fallback for every
// branch, so an unscoped pair that happens to validate as a Solana or EVM
// identity is claimed by those branches first. Callers that need
// disambiguation pass hint.
func (r *Resolver) Resolve(hint did.Provider) (*Credential, error) {
	if hint == "" || hint == did.ProviderSolana {
		cred, err := r.resolveSolana()
		if err != nil {
			return nil, err
		}
		if cred != nil {
			return cred, nil
		}
	}

	if hint == "" || hint == did.ProviderEVM {
		cred, err := r.resolveEVM()
		if err != nil {
			return nil, err
		}
		if cred != nil {
			return cred, nil
		}
	}

	if hint == "" || hint == did.ProviderKey {
		cred, err := r.resolveKey()
		if err != nil {
			return nil, err
		}
		if cred != nil {
			return cred, nil
		}
	}

	if hint != "" {
		return nil, fmt.Errorf("%w for provider %q", ErrNoCredentials, hint)
	}
	return nil, ErrNoCredentials
}

func (r *Resolver) resolveSolana() (*Credential, error) {
	d := r.get(EnvSolanaDID, EnvDID)
	key := r.get(EnvSolanaPrivateKey, EnvPrivateKey)
	if d == "" || key == "" {
		return nil, nil
	}
	if !strings.HasPrefix(d, did.SolanaPrefix) && !did.IsSolanaAddress(d) {
		return nil, nil
	}

	s, err := signer.NewSolanaSigner(key)
	if err != nil {
		return nil, fmt.Errorf("solana credential: %w", err)
	}
	r.logger.Debug("resolved credential", zap.String("provider", "solana"), zap.String("did", d))
	return &Credential{DID: d, Provider: did.ProviderSolana, Signer: s}, nil
}

func (r *Resolver) resolveEVM() (*Credential, error) {
	d := r.get(EnvEVMDID, EnvDID)
	key := r.get(EnvEVMPrivateKey, EnvPrivateKey)
	if d == "" || key == "" {
		return nil, nil
	}
	if !strings.HasPrefix(d, did.EthrPrefix) &&
		!strings.HasPrefix(d, did.PkhEIP155Prefix) &&
		!did.IsEVMAddress(d) {
		return nil, nil
	}

	s, err := signer.NewEVMSigner(key)
	if err != nil {
		return nil, fmt.Errorf("evm credential: %w", err)
	}
	r.logger.Debug("resolved credential", zap.String("provider", "evm"), zap.String("did", d))
	return &Credential{DID: d, Provider: did.ProviderEVM, Signer: s}, nil
}

func (r *Resolver) resolveKey() (*Credential, error) {
	d := r.get(EnvDID)
	key := r.get(EnvPrivateKey)
	if d == "" || key == "" {
		return nil, nil
	}
	if !strings.HasPrefix(d, did.KeyPrefix) {
		return nil, nil
	}

	s, err := signer.NewEd25519Signer(key)
	if err != nil {
		return nil, fmt.Errorf("key credential: %w", err)
	}
	r.logger.Debug("resolved credential", zap.String("provider", "key"), zap.String("did", d))
	return &Credential{DID: d, Provider: did.ProviderKey, Signer: s}, nil
}

// get returns the first non-empty value among the named variables.
func (r *Resolver) get(names ...string) string {
	for _, name := range names {
		if v, ok := r.lookup(name); ok && v != "" {
			return v
		}
	}
	return ""
}
