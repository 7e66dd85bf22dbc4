package app

import (
	"dario.cat/mergo"
	"fmt"
	"github.com/blaubaer/cw-keyer/pkg/common"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"path/filepath"
	"reflect"
)

func (this *Configuration) loadFrom(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(this); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func (this *Configuration) loadFromFile(fn string, ignoreNotFound bool) error {
	f, err := os.Open(fn)
	if os.IsNotExist(err) && ignoreNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot open configuration file %q: %w", fn, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := this.loadFrom(f); err != nil {
		return fmt.Errorf("cannot load configuration file %q: %w", fn, err)
	}

	return nil
}

func (this *Configuration) saveTo(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(this); err != nil {
		return err
	}
	return enc.Close()
}

// mergeFrom overrides every value of this configuration which is set in
// other.
func (this *Configuration) mergeFrom(other Configuration) error {
	return mergo.Merge(this, other, mergo.WithOverride, mergo.WithTransformers(regexpTransformer{}))
}

type regexpTransformer struct{}

func (regexpTransformer) Transformer(t reflect.Type) func(dst, src reflect.Value) error {
	if t != reflect.TypeOf(common.Regexp{}) {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if v, ok := src.Interface().(common.Regexp); ok && v.HasContent() && dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}

func defaultConfigurationFile() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "cw-keyer", "configuration.yml")
	}
	return "configuration.yml"
}
