// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"errors"
	"fmt"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const fileExtension = ".json"

// FileStore keeps every record as <baseDir>/<namespace>/<key>.json.
type FileStore struct {
	fs      afero.Fs
	baseDir string
}

func NewFileStore(fs afero.Fs, baseDir string) *FileStore {
	log.Debug().Msgf("Using file store in directory %s", baseDir)
	return &FileStore{fs: fs, baseDir: baseDir}
}

func (s *FileStore) path(namespace string, key string) string {
	return filepath.Join(s.baseDir, namespace, key+fileExtension)
}

func (s *FileStore) List(ctx context.Context, namespace string) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, filepath.Join(s.baseDir, namespace))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, namespace)
		}
		return nil, fmt.Errorf("could not list namespace %s: %w", namespace, err)
	}

	var keys []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExtension) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(entry.Name(), fileExtension))
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, namespace)
	}

	sort.Strings(keys)
	return keys, nil
}

func (s *FileStore) Read(ctx context.Context, namespace string, key string) (Record, error) {
	data, err := afero.ReadFile(s.fs, s.path(namespace, key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, namespace, key)
		}
		return nil, fmt.Errorf("could not read %s/%s: %w", namespace, key, err)
	}

	return decodeRecord(data)
}

func (s *FileStore) Create(ctx context.Context, namespace string, key string, record any) error {
	data, err := encodeRecord(record)
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Join(s.baseDir, namespace), 0o755); err != nil {
		return fmt.Errorf("could not create namespace %s: %w", namespace, err)
	}

	file, err := s.fs.OpenFile(s.path(namespace, key), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s/%s", ErrAlreadyExists, namespace, key)
		}
		return fmt.Errorf("could not create %s/%s: %w", namespace, key, err)
	}

	return writeAndClose(file, data)
}

// Update overwrites an existing record. It never creates a missing one.
func (s *FileStore) Update(ctx context.Context, namespace string, key string, record any) error {
	data, err := encodeRecord(record)
	if err != nil {
		return err
	}

	file, err := s.fs.OpenFile(s.path(namespace, key), os.O_RDWR|os.O_TRUNC, 0)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s/%s", ErrNotFound, namespace, key)
		}
		return fmt.Errorf("could not open %s/%s for updating: %w", namespace, key, err)
	}

	return writeAndClose(file, data)
}

func (s *FileStore) Delete(ctx context.Context, namespace string, key string) error {
	if err := s.fs.Remove(s.path(namespace, key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s/%s", ErrNotFound, namespace, key)
		}
		return fmt.Errorf("could not delete %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (s *FileStore) Close(ctx context.Context) error {
	return nil
}

func writeAndClose(file afero.File, data []byte) error {
	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("could not write file %s: %w", file.Name(), err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("could not close file %s: %w", file.Name(), err)
	}
	return nil
}
