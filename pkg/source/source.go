// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package source fetches the template repository a project is scaffolded
// from.
package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// LatestRelease is the ref that selects the newest published release
const LatestRelease = "latest-release"

// ErrDestinationNotEmpty is returned when cloning into a directory that
// already has content
var ErrDestinationNotEmpty = errors.Base("destination exists and is not empty")

// 📦 Source is a git repository and the ref to check out. An empty Ref
// selects the default branch.
type Source struct {
	Repository string
	Ref        string
}

func (s Source) String() string {
	if s.Ref == "" {
		return s.Repository
	}
	return s.Repository + "@" + s.Ref
}

// 🔍 Resolver looks up the tag of a repository's latest release
type Resolver interface {
	LatestRelease(ctx context.Context, repository string) (string, error)
}

// 🎯 Cloner checks out template repositories
type Cloner struct {
	resolver Resolver
}

// NewCloner creates a cloner. resolver may be nil when no source uses
// LatestRelease.
func NewCloner(resolver Resolver) *Cloner {
	return &Cloner{resolver: resolver}
}

// 🚀 Clone checks out src into dest and returns the ref that was checked
// out. dest is created if missing and must otherwise be empty. A failed
// clone leaves dest as it found it.
func (c *Cloner) Clone(ctx context.Context, src Source, dest string) (_ string, err error) {
	logger := zerolog.Ctx(ctx)

	created, err := ensureEmptyDir(dest)
	if err != nil {
		return "", err
	}
	if created {
		defer func() {
			if err == nil {
				return
			}
			if rerr := os.RemoveAll(dest); rerr != nil {
				logger.Warn().Err(rerr).Str("dest", dest).Msg("removing destination after failed clone")
			}
		}()
	}

	ref := src.Ref
	if ref == LatestRelease {
		if c.resolver == nil {
			return "", errors.Errorf("resolving %s for %s: no release resolver", LatestRelease, src.Repository)
		}
		tag, err := c.resolver.LatestRelease(ctx, src.Repository)
		if err != nil {
			return "", errors.Errorf("resolving %s for %s: %w", LatestRelease, src.Repository, err)
		}
		logger.Debug().Str("repository", src.Repository).Str("tag", tag).Msg("resolved latest release")
		ref = tag
	}

	var errs []error
	for _, name := range candidates(ref) {
		logger.Debug().Str("repository", src.Repository).Str("ref", name.String()).Str("dest", dest).Msg("cloning template")

		opts := &git.CloneOptions{
			URL:           src.Repository,
			ReferenceName: name,
			SingleBranch:  name != "",
		}
		if isRemote(src.Repository) {
			opts.Depth = 1
		}

		_, err := git.PlainCloneContext(ctx, dest, false, opts)
		if err == nil {
			return ref, nil
		}
		errs = append(errs, errors.Errorf("cloning %s: %w", name, err))

		if cerr := clearDir(dest); cerr != nil {
			return "", errors.Errorf("cleaning up failed clone: %w", cerr)
		}
		if ctx.Err() != nil {
			break
		}
	}

	return "", errors.Errorf("cloning %s: %w", src, errors.Join(errs...))
}

// candidates lists the references ref may name, branch before tag. The
// empty ref is the remote HEAD.
func candidates(ref string) []plumbing.ReferenceName {
	if ref == "" {
		return []plumbing.ReferenceName{""}
	}
	if strings.HasPrefix(ref, "refs/") {
		return []plumbing.ReferenceName{plumbing.ReferenceName(ref)}
	}
	return []plumbing.ReferenceName{
		plumbing.NewBranchReferenceName(ref),
		plumbing.NewTagReferenceName(ref),
	}
}

// isRemote reports whether the repository is reached over the network.
// Local clones are never shallow.
func isRemote(repository string) bool {
	if strings.Contains(repository, "://") {
		return !strings.HasPrefix(repository, "file://")
	}
	if _, err := os.Stat(repository); err == nil {
		return false
	}
	// scp-like syntax: git@github.com:owner/repo.git
	return strings.Contains(repository, "@") && strings.Contains(repository, ":")
}

// ensureEmptyDir reports whether it had to create dest
func ensureEmptyDir(dest string) (bool, error) {
	entries, err := os.ReadDir(dest)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return false, errors.Errorf("creating destination: %w", err)
			}
			return true, nil
		}
		return false, errors.Errorf("reading destination: %w", err)
	}
	if len(entries) != 0 {
		return false, errors.Errorf("%q: %w", dest, ErrDestinationNotEmpty)
	}
	return false, nil
}

func clearDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
