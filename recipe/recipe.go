package recipe

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"go.dw1.io/rex/builder"
	"go.dw1.io/rex/internal/logging"
	"go.dw1.io/rex/json"
	"go.dw1.io/rex/regexp"
)

// Format is a recipe serialization.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("recipe: cannot infer format of %q", path)
	}
}

// Recipe is a named builder program.
type Recipe struct {
	Name        string  `yaml:"name" toml:"name" json:"name"`
	Description string  `yaml:"description" toml:"description" json:"description"`
	Engine      string  `yaml:"engine" toml:"engine" json:"engine"`
	Steps       []any   `yaml:"steps" toml:"steps" json:"steps"`
	Samples     Samples `yaml:"samples" toml:"samples" json:"samples"`
}

// Samples are inputs the compiled pattern must match or must not match.
type Samples struct {
	Match  []string `yaml:"match" toml:"match" json:"match"`
	Reject []string `yaml:"reject" toml:"reject" json:"reject"`
}

// Parse decodes a recipe and checks that its steps can be replayed.
func Parse(data []byte, format Format) (*Recipe, error) {
	var r Recipe

	var err error
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&r)
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&r)
	case FormatJSON:
		err = json.Unmarshal(data, &r)
	default:
		return nil, fmt.Errorf("recipe: unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("recipe: decode %s: %w", format, err)
	}

	if len(r.Steps) == 0 {
		return nil, fmt.Errorf("recipe %q: no steps", r.Name)
	}

	if _, err := r.Builder(); err != nil {
		return nil, err
	}

	if _, err := regexp.ParseEngine(r.Engine); err != nil {
		return nil, fmt.Errorf("recipe %q: %w", r.Name, err)
	}

	return &r, nil
}

// LoadFile reads and parses the recipe at path. The format comes from the
// file extension. An unnamed recipe is named after the file.
func LoadFile(path string) (*Recipe, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("recipe: %w", err)
	}

	r, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if r.Name == "" {
		r.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	logger := logging.Get("recipe")
	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Str("name", r.Name).
		Int("steps", len(r.Steps)).
		Msg("Loaded recipe")

	return r, nil
}

// Builder replays the steps on a fresh builder.
func (r *Recipe) Builder() (*builder.Builder, error) {
	b := builder.New()
	if err := applySteps(b, r.Steps, "steps"); err != nil {
		return nil, err
	}

	return b, nil
}

// Pattern returns the pattern the recipe builds.
func (r *Recipe) Pattern() (string, error) {
	b, err := r.Builder()
	if err != nil {
		return "", err
	}

	return b.String(), nil
}

// Compile builds the pattern and compiles it with the recipe's engine. opts
// are applied afterwards and so take precedence.
func (r *Recipe) Compile(opts ...regexp.Option) (*regexp.Regexp, error) {
	b, err := r.Builder()
	if err != nil {
		return nil, err
	}

	engine, err := regexp.ParseEngine(r.Engine)
	if err != nil {
		return nil, err
	}

	return b.Compile(append([]regexp.Option{regexp.WithEngine(engine)}, opts...)...)
}

// Check runs the samples against re and returns a *SampleError describing
// every sample that behaved unexpectedly.
func (r *Recipe) Check(re *regexp.Regexp) error {
	serr := &SampleError{Recipe: r.Name}
	for _, s := range r.Samples.Match {
		if !re.MatchString(s) {
			serr.Missed = append(serr.Missed, s)
		}
	}
	for _, s := range r.Samples.Reject {
		if re.MatchString(s) {
			serr.Matched = append(serr.Matched, s)
		}
	}

	if len(serr.Missed) == 0 && len(serr.Matched) == 0 {
		return nil
	}

	return serr
}
