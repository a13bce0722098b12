package query_language

import (
	"go.uber.org/zap"
)

type options struct {
	logger *zap.Logger
	strict bool
}

type Option func(*options)

// WithLogger receives recoverable diagnostics, such as ignored wildcards.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithStrictWildcards makes a '*' inside a term a syntax error.
func WithStrictWildcards(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

// ParseUserQuery normalizes, tokenizes, parses and simplifies a user query.
// Failures are reported as *SyntaxError.
func ParseUserQuery(query string, opts ...Option) (Query, error) {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	// smart quotes must be replaced before normalization turns them into spaces
	unquoted := DrainCodePoints(FilterCodePoints(NewStringSource(query), SmartQuotes))
	nt := Normalize(unquoted)
	if nt.Removed != 0 {
		o.logger.Debug(
			"normalized query",
			zap.String("query", query),
			zap.String("normalized", nt.Normalized),
			zap.Stringer("removed", nt.Removed),
		)
	}

	tokens := FilterTokens(
		NewTokenizer(NewStringSource(nt.Normalized), o.strict, o.logger),
		DefaultTokenFilters(o.logger)...,
	)
	q, err := Parse(tokens)
	if err != nil {
		return nil, &SyntaxError{Query: query, Err: err}
	}
	return Simplify(q), nil
}
