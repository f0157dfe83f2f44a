// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package assets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AnomalyFi/token-logos/consts"
)

// Repository is a checkout of the logos repository rooted at a directory.
type Repository struct {
	root string
}

func NewRepository(root string) (*Repository, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	return &Repository{root: abs}, nil
}

func (r *Repository) Root() string {
	return r.root
}

// TokenImage is the generic image for a token name.
func (r *Repository) TokenImage(name string) string {
	return filepath.Join(r.root, consts.TokenDir, name+consts.ImageExt)
}

func (r *Repository) NetworkDir(network string) string {
	return filepath.Join(r.root, consts.NetworkDir, network)
}

// NetworkImage is the per-network image for a token file base name.
func (r *Repository) NetworkImage(network, token string) string {
	return filepath.Join(r.NetworkDir(network), token+consts.ImageExt)
}

// Exists reports whether path exists. Any stat error other than not-exist
// counts as present so callers surface the real error on access.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// RequireExists returns ErrNotFound when path is absent.
func RequireExists(path string) error {
	if !Exists(path) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return nil
}

// ListNetwork returns the names of the regular files in a network directory
// in lexical order.
func (r *Repository) ListNetwork(network string) ([]string, error) {
	dir := r.NetworkDir(network)
	if err := RequireExists(dir); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// CopyFile copies from into to, creating the parent directory and
// overwriting any existing file.
func CopyFile(from, to string) error {
	src, err := os.Open(from)
	if err != nil {
		return err
	}
	defer src.Close()

	if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		return err
	}
	dst, err := os.OpenFile(to, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}
