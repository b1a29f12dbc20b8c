package schedule

import (
	"strings"

	"github.com/rs/zerolog"

	"schedexpr.dev/internal/perr"
)

// Parser translates schedule expressions into cron expressions.
// A Parser holds no per-call state and is safe for concurrent use.
type Parser struct {
	log zerolog.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger makes the parser trace its decisions to log.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// New returns a Parser. By default it does not log.
func New(opts ...Option) *Parser {
	p := &Parser{log: zerolog.Nop()}
	for _, o := range opts {
		o(p)
	}
	return p
}

var defaultParser = New()

// Parse translates expression into a five-field cron expression
// using a parser that does not log. See (*Parser).Parse.
func Parse(expression string) (string, error) {
	return defaultParser.Parse(expression)
}

// Validate reports every problem in expression
// using a parser that does not log. See (*Parser).Validate.
func Validate(expression string) []Diagnostic {
	return defaultParser.Validate(expression)
}

// MustParse is like Parse but panics if the expression cannot be parsed.
func MustParse(expression string) string {
	cron, err := Parse(expression)
	if err != nil {
		panic(err)
	}
	return cron
}

// Parse translates expression into a five-field cron expression.
//
// An expression that already has the shape of a cron expression is returned
// unchanged, apart from surrounding whitespace. Otherwise the expression is
// read as a loose English description such as "every day at 9am",
// "mon, wed, fri at 8am" or "on the 15th at noon".
//
// On failure the error is an *Error describing the first problem found.
func (p *Parser) Parse(expression string) (string, error) {
	cron, errs := p.run(expression, false)
	if errs.Len() > 0 {
		return "", &Error{Diagnostic: diagnosticFrom(errs.At(0)), Expression: expression}
	}
	return cron, nil
}

// Validate checks expression with the same rules as Parse but reports
// every independent problem instead of stopping at the first one.
// It returns nil if the expression is acceptable.
func (p *Parser) Validate(expression string) []Diagnostic {
	_, errs := p.run(expression, true)
	if errs.Len() == 0 {
		return nil
	}
	var diags []Diagnostic
	for _, t := range errs.Errors() {
		diags = append(diags, diagnosticFrom(t))
	}
	return diags
}

// run parses expression, reporting problems to the returned list.
// Unless collect is set the list bails out on the first problem.
func (p *Parser) run(expression string, collect bool) (cron string, errs *perr.List) {
	trimmed := strings.TrimSpace(expression)
	norm := normalize(trimmed)
	errs = perr.NewList().SetIgnoreBailouts(collect)

	defer func() {
		if _, ok := perr.CatchBailout(recover()); ok {
			cron = ""
		}
	}()

	if trimmed == "" {
		errs.Assert(errEmptyExpression)
		return "", errs
	}

	if isCronLiteral(trimmed) {
		p.log.Debug().Str("expression", trimmed).Msg("cron expression passed through")
		return trimmed, errs
	}

	if word, span, ok := screenTypos(norm); ok {
		errs.Assert(errDidYouMean(trimmed, word).AtSpan(span.Start, span.End))
	}

	toks := tokenize(norm)
	ps := &pass{log: p.log, errs: errs}
	ps.prescan(norm)
	ps.classify(toks)
	if errs.Len() > 0 {
		return "", errs
	}

	fields, ok := ps.frags.fields()
	if !ok {
		if word, tok, ok := closestKeyword(toks); ok {
			errs.Assert(errDidYouMean(trimmed, word).AtSpan(tok.start, tok.end))
		} else {
			errs.Assert(errCouldNotParse(trimmed))
		}
		return "", errs
	}

	cron = fields.String()
	p.log.Debug().Str("expression", trimmed).Str("cron", cron).Msg("parsed schedule expression")
	return cron, errs
}
