// Package llm defines the contract between the evaluation pipeline and the
// external language-model providers: the evaluator and arbiter interfaces,
// the provider failure taxonomy, and the shared prompt/parse helpers that
// keep every provider's output in the standardized definition shape.
package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/neologe-backend/internal/domain"
)

// FailureKind classifies why a provider attempt produced no usable definition.
type FailureKind string

const (
	FailureTimeout         FailureKind = "timeout"
	FailureHTTPError       FailureKind = "http_error"
	FailureMalformedOutput FailureKind = "malformed_output"
	FailureAuthError       FailureKind = "auth_error"
)

// ErrArbiter marks a failure of the arbitration call itself. The pipeline
// treats it as fatal for the submission: an undetected conflict is worse
// than a visible failure.
var ErrArbiter = errors.New("arbiter failure")

// ProviderFailure is the typed outcome of a failed provider attempt.
// It is recorded per provider and never propagated as a pipeline error.
type ProviderFailure struct {
	Provider string
	Kind     FailureKind
	Detail   string
}

func (f *ProviderFailure) Error() string {
	return fmt.Sprintf("provider %s: %s: %s", f.Provider, f.Kind, f.Detail)
}

// Evaluator is one external language-model provider. Evaluate sends a single
// request and returns the parsed standardized definition plus the raw payload
// it was parsed from. On failure the error is a *ProviderFailure; raw may
// still carry the offending payload for inspection. Adapters do not retry;
// retry policy belongs to the caller.
type Evaluator interface {
	Name() string
	Evaluate(ctx context.Context, word, userDefinition string, wordContext *string) (def *domain.StandardizedDefinition, raw string, err error)
}

// Arbiter judges whether a set of successful definitions materially disagree.
// Any call or parse failure wraps ErrArbiter.
type Arbiter interface {
	Judge(ctx context.Context, word string, defs []domain.StandardizedDefinition) (*domain.Verdict, error)
}
