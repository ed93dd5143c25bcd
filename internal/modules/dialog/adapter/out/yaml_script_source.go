package out

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"landing/internal/modules/dialog/domain"
	dialogout "landing/internal/modules/dialog/port/out"
	apperrors "landing/internal/platform/errors"
)

type YAMLScriptSource struct {
	fsys fs.FS
	name string
}

func NewYAMLScriptSource(fsys fs.FS, name string) dialogout.ScriptSource {
	return &YAMLScriptSource{fsys: fsys, name: name}
}

func (s *YAMLScriptSource) LoadScript(_ context.Context) (domain.Script, error) {
	b, err := fs.ReadFile(s.fsys, s.name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Script{}, fmt.Errorf("dialog script %s: %w", s.name, apperrors.ErrNotFound)
		}
		return domain.Script{}, fmt.Errorf("read dialog script: %w", err)
	}
	var script domain.Script
	decoder := yaml.NewDecoder(bytes.NewReader(b))
	decoder.KnownFields(true)
	if err := decoder.Decode(&script); err != nil {
		return domain.Script{}, fmt.Errorf("decode dialog script: %w", err)
	}
	return script, nil
}
