package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jsphweid/melowave/constants"
	"github.com/jsphweid/melowave/util"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Song struct {
	Path  string `yaml:"path" validate:"required"`
	Title string `yaml:"title"`
}

type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	LogLevel   string `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat  string `yaml:"log_format" validate:"omitempty,oneof=json text"`
	MediaDir   string `yaml:"media_dir"`
	Songs      []Song `yaml:"songs" validate:"dive"`
}

var validate = newValidator()

// newValidator reports fields by their yaml names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

func Default() *Config {
	return &Config{
		ListenAddr: constants.GetListenAddr(),
		LogLevel:   constants.GetLogLevel(),
		LogFormat:  constants.GetLogFormat(),
		MediaDir:   constants.GetMediaDir(),
	}
}

// Load reads the catalogue file at path. A missing file is not an error:
// defaults are used and songs are discovered under the media directory.
func Load(path string) (*Config, error) {
	c := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parsing config %v: %w", path, err)
		}
		base := filepath.Dir(path)
		for i, s := range c.Songs {
			if s.Path != "" && !filepath.IsAbs(s.Path) {
				c.Songs[i].Path = filepath.Join(base, s.Path)
			}
		}
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	if len(c.Songs) == 0 {
		if err := c.discover(); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Config) validate() error {
	err := validate.Struct(c)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%v %v", fieldPath(e.Namespace()), friendlyMessage(e)))
	}
	return fmt.Errorf("%w: %v", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// fieldPath drops the root struct name: "Config.songs[1].path" -> "songs[1].path".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "is invalid"
	}
}

func (c *Config) discover() error {
	paths, err := util.GatherAllMidiPaths(c.MediaDir, 0)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("discovering songs in %v: %w", c.MediaDir, err)
	}
	for _, p := range paths {
		c.Songs = append(c.Songs, Song{Path: p})
	}
	return nil
}

// Titles falls back to the file name without extension.
func (c *Config) Titles() []string {
	res := make([]string, len(c.Songs))
	for i, s := range c.Songs {
		res[i] = s.Title
		if res[i] == "" {
			base := filepath.Base(s.Path)
			res[i] = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}
	return res
}

func (c *Config) Paths() []string {
	res := make([]string, len(c.Songs))
	for i, s := range c.Songs {
		res[i] = s.Path
	}
	return res
}
