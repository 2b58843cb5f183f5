// Package nfafile reads NFA definitions from YAML or JSON documents.
//
// States may be given as bare names or as {name, accepting} maps; transitions as
// {symbol, from, to} maps or in the compact form "p -a-> q".
//
//	start: p
//	accepting: [s]
//	states: [p, q, {name: s, accepting: true}, r]
//	transitions:
//	  - p -a-> q
//	  - {symbol: b, from: q, to: s}
package nfafile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/geange/powerset"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrEmpty is returned for a document without content.
var ErrEmpty = errors.New("nfafile: empty document")

// Load reads the definition stored at path.
func Load(path string) (powerset.Definition, error) {
	f, err := os.Open(path)
	if err != nil {
		return powerset.Definition{}, err
	}
	defer f.Close()

	def, err := Decode(f)
	if err != nil {
		return powerset.Definition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// Decode reads one definition from r.
func Decode(r io.Reader) (powerset.Definition, error) {
	var def powerset.Definition

	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return def, ErrEmpty
		}
		return def, fmt.Errorf("nfafile: %w", err)
	}
	if raw == nil {
		return def, ErrEmpty
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			scalarStringHook,
			stateNameHook,
			compactTransitionHook,
		),
		ErrorUnused: true,
		Result:      &def,
	})
	if err != nil {
		return def, err
	}
	if err := dec.Decode(raw); err != nil {
		return def, fmt.Errorf("nfafile: %w", err)
	}
	return def, nil
}

var (
	stateDefType      = reflect.TypeOf(powerset.StateDef{})
	transitionDefType = reflect.TypeOf(powerset.TransitionDef{})
)

// scalarStringHook lets unquoted numbers and booleans stand for names and symbols,
// as in `states: [0, 1]` or `{symbol: 0, from: x, to: y}`.
func scalarStringHook(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String || !isScalar(from.Kind()) {
		return data, nil
	}
	return fmt.Sprint(data), nil
}

// stateNameHook turns a bare name into a non-accepting state.
func stateNameHook(from, to reflect.Type, data any) (any, error) {
	if to != stateDefType {
		return data, nil
	}
	switch {
	case from.Kind() == reflect.String:
		return map[string]any{"name": data}, nil
	case isScalar(from.Kind()):
		return map[string]any{"name": fmt.Sprint(data)}, nil
	}
	return data, nil
}

func isScalar(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// compactTransitionHook turns "p -a-> q" into a transition.
func compactTransitionHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != transitionDefType {
		return data, nil
	}
	s := data.(string)
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return nil, fmt.Errorf("transition %q: want \"from -symbol-> to\"", s)
	}
	arrow := fields[1]
	if len(arrow) < 4 || !strings.HasPrefix(arrow, "-") || !strings.HasSuffix(arrow, "->") {
		return nil, fmt.Errorf("transition %q: malformed arrow %q", s, arrow)
	}
	return map[string]any{
		"symbol": arrow[1 : len(arrow)-2],
		"from":   fields[0],
		"to":     fields[2],
	}, nil
}
