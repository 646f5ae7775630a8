package g4

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/gramorpher"
	"github.com/npillmayer/gramorpher/scanner"
	"github.com/npillmayer/gramorpher/syntax"
)

// ParseFile reads an ANTLR v4 grammar from a file.
func ParseFile(path string) (*syntax.Grammar, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gramorpher.ErrGrammarLoad, err)
	}
	return Parse(path, string(text))
}

// Parse reads an ANTLR v4 grammar from a string. sourceID is used for error
// messages only.
//
// Errors wrap gramorpher.ErrGrammarLoad.
func Parse(sourceID string, input string) (*syntax.Grammar, error) {
	lex, err := Lexer()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot create lexer: %v", gramorpher.ErrGrammarLoad, err)
	}
	scan, err := lex.Scanner(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", gramorpher.ErrGrammarLoad, err)
	}
	p := &parser{source: sourceID, input: input}
	var scanErr error
	scan.SetErrorHandler(func(e error) {
		tracer().Errorf("%s: %v", sourceID, e)
		if scanErr == nil {
			scanErr = e
		}
	})
	for {
		tok := scan.NextToken()
		p.tokens = append(p.tokens, tok)
		if tok.TokType() == scanner.EOF {
			break
		}
	}
	if scanErr != nil {
		return nil, fmt.Errorf("%w: %s: %v", gramorpher.ErrGrammarLoad, sourceID, scanErr)
	}
	g, err := p.grammarSpec()
	if err != nil {
		return nil, err
	}
	tracer().Infof("grammar %s: %d parser rules, %d lexer rules", g.Name,
		len(g.ListRules()), len(g.LexerRules()))
	return g, nil
}

// --- Recursive descent parser ----------------------------------------------

type parser struct {
	source string
	input  string
	tokens []gramorpher.Token
	pos    int
	g      *syntax.Grammar
}

func (p *parser) peek() gramorpher.Token {
	return p.tokens[p.pos]
}

func (p *parser) peekAt(n int) gramorpher.Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}

func (p *parser) next() gramorpher.Token {
	tok := p.tokens[p.pos]
	if tok.TokType() != scanner.EOF {
		p.pos++
	}
	return tok
}

func (p *parser) is(tok gramorpher.Token, lit string) bool {
	return int(tok.TokType()) == tokenID(lit)
}

func (p *parser) isKeyword(tok gramorpher.Token, kw string) bool {
	return tok.TokType() == tokRuleRef && tok.Lexeme() == kw
}

func (p *parser) isIdent(tok gramorpher.Token) bool {
	return tok.TokType() == tokRuleRef || tok.TokType() == tokTokenRef
}

func (p *parser) atEOF() bool {
	return p.peek().TokType() == scanner.EOF
}

func (p *parser) expect(lit string) (gramorpher.Token, error) {
	tok := p.next()
	if !p.is(tok, lit) {
		return tok, p.errorf(tok, "expected %q", lit)
	}
	return tok, nil
}

func (p *parser) expectIdent() (gramorpher.Token, error) {
	tok := p.next()
	if !p.isIdent(tok) {
		return tok, p.errorf(tok, "expected identifier")
	}
	return tok, nil
}

func (p *parser) errorf(tok gramorpher.Token, format string, args ...interface{}) error {
	line, col := p.position(tok.Span().From())
	have := tok.Lexeme()
	if tok.TokType() == scanner.EOF {
		have = "end of input"
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%w: %s:%d:%d: %s, have %q", gramorpher.ErrGrammarLoad,
		p.source, line, col, msg, have)
}

// position converts a byte offset to line and column, both starting at 1.
func (p *parser) position(offset uint64) (int, int) {
	if offset > uint64(len(p.input)) {
		offset = uint64(len(p.input))
	}
	prefix := p.input[:offset]
	line := strings.Count(prefix, "\n") + 1
	col := int(offset) - strings.LastIndex(prefix, "\n")
	return line, col
}

// text concatenates the lexemes of tokens [from…to), the way ANTLR's getText() does.
func (p *parser) text(from, to int) string {
	var b strings.Builder
	for i := from; i < to; i++ {
		b.WriteString(p.tokens[i].Lexeme())
	}
	return b.String()
}

func (p *parser) span(from, to int) gramorpher.Span {
	if to <= from {
		return p.tokens[from].Span()
	}
	return gramorpher.Span{p.tokens[from].Span().From(), p.tokens[to-1].Span().To()}
}

// grammarSpec : ('lexer'|'parser')? 'grammar' ident ';' prequel* ruleSpec* EOF
func (p *parser) grammarSpec() (*syntax.Grammar, error) {
	typ := syntax.Combined
	if p.isKeyword(p.peek(), "lexer") {
		typ = syntax.LexerGrammar
		p.next()
	} else if p.isKeyword(p.peek(), "parser") {
		typ = syntax.ParserGrammar
		p.next()
	}
	if tok := p.next(); !p.isKeyword(tok, "grammar") {
		return nil, p.errorf(tok, "expected grammar declaration")
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(";"); err != nil {
		return nil, err
	}
	p.g = syntax.NewGrammar(name.Lexeme(), typ)
	tracer().Debugf("reading grammar %s", name.Lexeme())
	for !p.atEOF() {
		if err = p.topLevel(); err != nil {
			return nil, err
		}
	}
	return p.g, nil
}

func (p *parser) topLevel() error {
	tok := p.peek()
	switch {
	case p.isKeyword(tok, "options") || p.isKeyword(tok, "channels"):
		p.next()
		_, err := p.expectAction()
		return err
	case p.isKeyword(tok, "tokens"):
		p.next()
		action, err := p.expectAction()
		if err != nil {
			return err
		}
		return p.declareTokens(action)
	case p.isKeyword(tok, "import"):
		return p.skipPast(";")
	case p.is(tok, "@"):
		return p.namedAction()
	case p.isKeyword(tok, "mode"):
		p.next()
		if _, err := p.expectIdent(); err != nil {
			return err
		}
		_, err := p.expect(";")
		return err
	case p.isKeyword(tok, "fragment"):
		p.next()
		return p.lexerRule(true)
	case tok.TokType() == tokTokenRef:
		return p.lexerRule(false)
	case tok.TokType() == tokRuleRef:
		return p.parserRule()
	}
	return p.errorf(tok, "expected rule or grammar prequel")
}

func (p *parser) expectAction() (gramorpher.Token, error) {
	tok := p.next()
	if tok.TokType() != tokAction {
		return tok, p.errorf(tok, "expected {…} block")
	}
	return tok, nil
}

// namedAction : '@' (ident '::')? ident ACTION
func (p *parser) namedAction() error {
	p.next()
	if _, err := p.expectIdent(); err != nil {
		return err
	}
	if p.is(p.peek(), "::") {
		p.next()
		if _, err := p.expectIdent(); err != nil {
			return err
		}
	}
	_, err := p.expectAction()
	return err
}

// declareTokens registers the tokens of a 'tokens { A, B }' prequel as lexer rules.
func (p *parser) declareTokens(action gramorpher.Token) error {
	body := strings.Trim(action.Lexeme(), "{}")
	for _, name := range strings.Split(body, ",") {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		if err := p.g.AddRule(&syntax.Rule{Name: name, Lexer: true, Span: action.Span()}); err != nil {
			return p.errorf(action, "%v", err)
		}
	}
	return nil
}

func (p *parser) skipPast(lit string) error {
	for !p.atEOF() {
		if tok := p.next(); p.is(tok, lit) {
			return nil
		}
	}
	return p.errorf(p.peek(), "expected %q", lit)
}

// lexerRule : 'fragment'? TOKEN_REF ':' … ';'
//
// The body of a lexer rule is irrelevant for us. Actions, strings and sets
// are single tokens, so the first ';' terminates the rule.
func (p *parser) lexerRule(fragment bool) error {
	name := p.next()
	if name.TokType() != tokTokenRef {
		return p.errorf(name, "expected lexer rule name")
	}
	if _, err := p.expect(":"); err != nil {
		return err
	}
	start := p.pos
	if err := p.skipPast(";"); err != nil {
		return err
	}
	r := &syntax.Rule{Name: name.Lexeme(), Lexer: true, Fragment: fragment, Span: name.Span()}
	if p.pos-start == 2 && p.tokens[start].TokType() == tokString {
		r.Literal = p.tokens[start].Lexeme() // e.g. SEMI : ';' ;
	}
	if declared, ok := p.g.Rule(r.Name); ok && declared.Lexer && len(declared.Alternatives) == 0 && declared.Literal == "" {
		*declared = *r // defined after a tokens{…} declaration
		return nil
	}
	if err := p.g.AddRule(r); err != nil {
		return p.errorf(name, "%v", err)
	}
	return nil
}

// parserRule : RULE_REF ARGUMENT? ('returns' ARGUMENT)? ('throws' ident (',' ident)*)?
//              ('locals' ARGUMENT)? rulePrequel* ':' ruleAltList ';' exceptionGroup
func (p *parser) parserRule() error {
	name := p.next()
	if p.peek().TokType() == tokArgument {
		p.next()
	}
	for {
		tok := p.peek()
		if p.isKeyword(tok, "returns") || p.isKeyword(tok, "locals") {
			p.next()
			if arg := p.next(); arg.TokType() != tokArgument {
				return p.errorf(arg, "expected […] after %s", tok.Lexeme())
			}
		} else if p.isKeyword(tok, "throws") {
			p.next()
			if _, err := p.expectIdent(); err != nil {
				return err
			}
			for p.is(p.peek(), ",") {
				p.next()
				if _, err := p.expectIdent(); err != nil {
					return err
				}
			}
		} else if p.isKeyword(tok, "options") {
			p.next()
			if _, err := p.expectAction(); err != nil {
				return err
			}
		} else if p.is(tok, "@") {
			if err := p.namedAction(); err != nil {
				return err
			}
		} else {
			break
		}
	}
	if _, err := p.expect(":"); err != nil {
		return err
	}
	alts, err := p.altList(true)
	if err != nil {
		return err
	}
	if _, err = p.expect(";"); err != nil {
		return err
	}
	if err = p.exceptionGroup(); err != nil {
		return err
	}
	r := &syntax.Rule{Name: name.Lexeme(), Alternatives: alts, Span: name.Span()}
	if err = p.g.AddRule(r); err != nil {
		return p.errorf(name, "%v", err)
	}
	tracer().Debugf("rule %s : %s ;", r.Name, syntax.AlternativesText(alts))
	return nil
}

// exceptionGroup : ('catch' ARGUMENT ACTION)* ('finally' ACTION)?
func (p *parser) exceptionGroup() error {
	for p.isKeyword(p.peek(), "catch") {
		p.next()
		if arg := p.next(); arg.TokType() != tokArgument {
			return p.errorf(arg, "expected […] after catch")
		}
		if _, err := p.expectAction(); err != nil {
			return err
		}
	}
	if p.isKeyword(p.peek(), "finally") {
		p.next()
		if _, err := p.expectAction(); err != nil {
			return err
		}
	}
	return nil
}

// altList : alternative ('#' ident)? ('|' alternative ('#' ident)?)*
//
// Alternative labels are allowed for rule level alternatives only.
func (p *parser) altList(labeled bool) ([][]*syntax.Element, error) {
	var alts [][]*syntax.Element
	for {
		alt, err := p.alternative()
		if err != nil {
			return nil, err
		}
		if labeled && p.is(p.peek(), "#") {
			p.next()
			if _, err = p.expectIdent(); err != nil {
				return nil, err
			}
		}
		alts = append(alts, alt)
		if !p.is(p.peek(), "|") {
			return alts, nil
		}
		p.next()
	}
}

// alternative : elementOptions? element*
func (p *parser) alternative() ([]*syntax.Element, error) {
	if err := p.elementOptions(); err != nil {
		return nil, err
	}
	elems := []*syntax.Element{}
	for {
		tok := p.peek()
		if tok.TokType() == scanner.EOF || p.is(tok, "|") || p.is(tok, ";") ||
			p.is(tok, ")") || p.is(tok, "#") {
			return elems, nil
		}
		e, err := p.element()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
}

// elementOptions : '<' … '>'
func (p *parser) elementOptions() error {
	if !p.is(p.peek(), "<") {
		return nil
	}
	return p.skipPast(">")
}

// element : labeledElement ebnfSuffix?
//         | atom ebnfSuffix?
//         | block blockSuffix?
//         | ACTION '?'? elementOptions?
func (p *parser) element() (*syntax.Element, error) {
	start := p.pos
	tok := p.peek()
	switch {
	case tok.TokType() == tokAction:
		p.next()
		if p.is(p.peek(), "?") { // semantic predicate
			p.next()
		}
		if err := p.elementOptions(); err != nil {
			return nil, err
		}
		return &syntax.Element{
			Kind: syntax.Action,
			Text: p.text(start, p.pos),
			Name: tok.Lexeme(),
			Span: p.span(start, p.pos),
		}, nil
	case p.isIdent(tok) && (p.is(p.peekAt(1), "=") || p.is(p.peekAt(1), "+=")):
		return p.labeledElement()
	case p.is(tok, "("):
		e, err := p.block()
		if err != nil {
			return nil, err
		}
		e.Suffix = p.ebnfSuffix()
		return e, nil
	}
	e, err := p.atom()
	if err != nil {
		return nil, err
	}
	e.Suffix = p.ebnfSuffix()
	return e, nil
}

// labeledElement : ident ('=' | '+=') (atom | block)
func (p *parser) labeledElement() (*syntax.Element, error) {
	start := p.pos
	label := p.next()
	p.next() // '=' or '+='
	var inner *syntax.Element
	var err error
	if p.is(p.peek(), "(") {
		inner, err = p.block()
	} else {
		inner, err = p.atom()
	}
	if err != nil {
		return nil, err
	}
	e := &syntax.Element{
		Kind:  syntax.Labeled,
		Text:  p.text(start, p.pos),
		Name:  label.Lexeme(),
		Inner: inner,
		Span:  p.span(start, p.pos),
	}
	e.Suffix = p.ebnfSuffix()
	return e, nil
}

// block : '(' (optionsSpec? ruleAction* ':')? altList ')'
func (p *parser) block() (*syntax.Element, error) {
	start := p.pos
	p.next()
	if p.isKeyword(p.peek(), "options") || p.is(p.peek(), "@") {
		for p.isKeyword(p.peek(), "options") || p.is(p.peek(), "@") {
			if p.is(p.peek(), "@") {
				if err := p.namedAction(); err != nil {
					return nil, err
				}
				continue
			}
			p.next()
			if _, err := p.expectAction(); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(":"); err != nil {
			return nil, err
		}
	}
	alts, err := p.altList(false)
	if err != nil {
		return nil, err
	}
	if _, err = p.expect(")"); err != nil {
		return nil, err
	}
	return &syntax.Element{
		Kind:         syntax.Block,
		Text:         p.text(start, p.pos),
		Alternatives: alts,
		Span:         p.span(start, p.pos),
	}, nil
}

// atom : TOKEN_REF elementOptions?
//      | STRING ('..' STRING)? elementOptions?
//      | RULE_REF ARGUMENT? elementOptions?
//      | '~' (setElement | '(' … ')')
//      | '.' elementOptions?
func (p *parser) atom() (*syntax.Element, error) {
	start := p.pos
	tok := p.next()
	e := &syntax.Element{Kind: syntax.Terminal}
	switch {
	case tok.TokType() == tokTokenRef:
		e.Name = tok.Lexeme()
	case tok.TokType() == tokString:
		e.Name = tok.Lexeme()
		if p.is(p.peek(), "..") {
			p.next()
			to := p.next()
			if to.TokType() != tokString {
				return nil, p.errorf(to, "expected string literal to end range")
			}
			e.Name = p.text(start, p.pos)
		}
	case tok.TokType() == tokRuleRef:
		e.Kind = syntax.RuleReference
		e.Name = tok.Lexeme()
		if p.peek().TokType() == tokArgument {
			p.next()
		}
	case p.is(tok, "~"):
		if err := p.notSet(); err != nil {
			return nil, err
		}
		e.Name = p.text(start, p.pos)
	case p.is(tok, "."):
		e.Name = tok.Lexeme()
	default:
		return nil, p.errorf(tok, "expected grammar element")
	}
	e.Span = p.span(start, p.pos)
	if err := p.elementOptions(); err != nil {
		return nil, err
	}
	e.Text = e.Name
	return e, nil
}

func (p *parser) notSet() error {
	tok := p.next()
	switch {
	case tok.TokType() == tokTokenRef || tok.TokType() == tokArgument:
		return nil
	case tok.TokType() == tokString:
		if p.is(p.peek(), "..") {
			p.next()
			p.next()
		}
		return nil
	case p.is(tok, "("):
		depth := 1
		for depth > 0 {
			t := p.next()
			switch {
			case t.TokType() == scanner.EOF:
				return p.errorf(t, "unbalanced set")
			case p.is(t, "("):
				depth++
			case p.is(t, ")"):
				depth--
			}
		}
		return nil
	}
	return p.errorf(tok, "expected set after '~'")
}

// ebnfSuffix : ('?' | '*' | '+') '?'?
func (p *parser) ebnfSuffix() string {
	tok := p.peek()
	if !p.is(tok, "?") && !p.is(tok, "*") && !p.is(tok, "+") {
		return ""
	}
	p.next()
	suffix := tok.Lexeme()
	if p.is(p.peek(), "?") {
		suffix += p.next().Lexeme()
	}
	return suffix
}
