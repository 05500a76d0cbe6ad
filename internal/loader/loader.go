// Package loader reads generator configuration from any location supported
// by viant/afs.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/viant/afs"
	"github.com/viant/shortid"
	"gopkg.in/yaml.v3"
)

// Loader fetches and decodes Config documents.
type Loader struct {
	fs afs.Service
}

// New creates a Loader backed by fs; nil uses afs.New().
func New(fs afs.Service) *Loader {
	if fs == nil {
		fs = afs.New()
	}
	return &Loader{fs: fs}
}

// Load reads the document at URL. The format follows the extension: .yaml,
// .yml, .toml or .json. Fields absent from the document keep the
// shortid.DefaultConfig values.
func (l *Loader) Load(ctx context.Context, URL string) (*shortid.Config, error) {
	data, err := l.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config %v: %w", URL, err)
	}
	cfg := shortid.DefaultConfig()
	if err = Decode(URL, data, cfg); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %v: %w", URL, err)
	}
	return cfg, nil
}

// Decode unmarshals data into cfg using the format implied by name.
func Decode(name string, data []byte, cfg *shortid.Config) error {
	var err error
	switch ext := strings.ToLower(path.Ext(name)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".json":
		err = json.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("unsupported config format %q: %v", ext, name)
	}
	if err != nil {
		return fmt.Errorf("failed to decode config %v: %w", name, err)
	}
	return nil
}

// Load reads URL using a default Loader.
func Load(ctx context.Context, URL string) (*shortid.Config, error) {
	return New(nil).Load(ctx, URL)
}
