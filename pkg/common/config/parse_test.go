// Copyright (c) 2019 Uber Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testConfig struct {
	Name     string  `yaml:"name"`
	Workers  int     `yaml:"workers" validate:"min=1"`
	Fraction float64 `yaml:"fraction"`
}

func writeConfigFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseMergesFilesInOrder(t *testing.T) {
	base := writeConfigFile(t, "base.yaml", "name: base\nworkers: 4\nfraction: 0.5\n")
	override := writeConfigFile(t, "override.yaml", "workers: 8\n")

	var cfg testConfig
	assert.NoError(t, Parse(&cfg, base, override))
	assert.Equal(t, "base", cfg.Name)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 0.5, cfg.Fraction)
}

func TestParseNoFiles(t *testing.T) {
	var cfg testConfig
	assert.Error(t, Parse(&cfg))
}

func TestParseMissingFile(t *testing.T) {
	var cfg testConfig
	assert.Error(t, Parse(&cfg, filepath.Join(t.TempDir(), "absent.yaml")))
}

func TestParseInvalidYAML(t *testing.T) {
	bad := writeConfigFile(t, "bad.yaml", "name: [unclosed\n")

	var cfg testConfig
	assert.Error(t, Parse(&cfg, bad))
}

func TestParseValidationFailure(t *testing.T) {
	bad := writeConfigFile(t, "bad.yaml", "name: bad\nworkers: 0\n")

	var cfg testConfig
	err := Parse(&cfg, bad)
	assert.Error(t, err)

	verr, ok := err.(ValidationError)
	assert.True(t, ok)
	assert.Error(t, verr.ErrForField("Workers"))
	assert.Contains(t, verr.Error(), "validation failed")
}
