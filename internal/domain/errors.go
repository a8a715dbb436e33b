package domain

import "errors"

var (
	// ErrUnknownDomain signals a domain name with no configuration.
	ErrUnknownDomain = errors.New("unknown domain")
	// ErrCorpusUnavailable signals that the corpus provider has no data for a known domain.
	ErrCorpusUnavailable = errors.New("corpus data unavailable")
	// ErrAestheticProviderError signals an aesthetic generator failure.
	ErrAestheticProviderError = errors.New("aesthetic provider error")
)
