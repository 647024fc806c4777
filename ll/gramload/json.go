package gramload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/ll1/ll"
	"github.com/tidwall/gjson"
)

// FromJSON reads a grammar definition in JSON format.
func FromJSON(data []byte) (*ll.Grammar, error) {
	return fromJSON(data, "")
}

// fromJSON reads a JSON grammar definition. The definition's name, if present,
// overrides name.
func fromJSON(data []byte, name string) (*ll.Grammar, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: grammar definition is not valid JSON", ll.ErrInvalidGrammar)
	}
	def := gjson.ParseBytes(data)
	if n := def.Get("name"); n.Exists() {
		name = n.String()
	}
	prods := def.Get("productions")
	if !prods.IsArray() {
		return nil, fmt.Errorf("%w: grammar %q: productions have to be an array",
			ll.ErrInvalidGrammar, name)
	}
	var rules []rule
	var err error
	prods.ForEach(func(_, p gjson.Result) bool {
		lhs := p.Get("lhs")
		if lhs.Type != gjson.String || lhs.String() == "" {
			err = fmt.Errorf("%w: grammar %q: production without left hand side: %s",
				ll.ErrInvalidGrammar, name, p.Raw)
			return false
		}
		r := rule{lhs: lhs.String()}
		for _, sym := range p.Get("rhs").Array() {
			switch {
			case sym.IsObject():
				r.rhs = append(r.rhs, item{name: sym.Get("t").String(), terminal: true})
			case sym.String() == "ε" || sym.String() == "":
				r.rhs = append(r.rhs, item{epsilon: true})
			default:
				r.rhs = append(r.rhs, item{name: sym.String()})
			}
		}
		rules = append(rules, r)
		return true
	})
	if err != nil {
		return nil, err
	}
	return buildGrammar(name, def.Get("start").String(), rules)
}

// LoadFile reads a grammar definition from a file. Files with suffix ".json" are
// read as JSON, all other files are expected to be in text format.
// The grammar is named after the file, unless a JSON definition gives a name.
func LoadFile(path string) (*ll.Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return fromJSON(data, name)
	}
	return Parse(name, string(data))
}
