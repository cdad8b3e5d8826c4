// Package source locates the vocabulary file to open. A file may live in a
// git repository, which is cloned or updated before the file is read.
package source

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// Resolve returns the local path of file. Without a git URL file is returned
// as is. With one, the repository is synced into reposDir and file is taken
// relative to the checkout.
func Resolve(gitURL, reposDir, file string) (string, error) {
	if gitURL == "" {
		if file == "" {
			return "", fmt.Errorf("no vocabulary file given")
		}
		return file, nil
	}
	if file == "" {
		return "", fmt.Errorf("no vocabulary file given for repository %s", gitURL)
	}
	if filepath.IsAbs(file) || strings.HasPrefix(filepath.Clean(file), "..") {
		return "", fmt.Errorf("file %s must be relative to the repository", file)
	}

	local, err := LocalPath(reposDir, gitURL)
	if err != nil {
		return "", err
	}
	if err := Sync(gitURL, local); err != nil {
		return "", err
	}
	return filepath.Join(local, file), nil
}

// LocalPath maps a git URL to its checkout directory under baseDir:
// https://host/user/repo.git and git@host:user/repo.git both become
// baseDir/host/user/repo.
func LocalPath(baseDir, repoURL string) (string, error) {
	parsedURL, err := url.Parse(repoURL)
	if err != nil || (parsedURL.Scheme != "https" && parsedURL.Scheme != "http" && parsedURL.Scheme != "ssh") {
		if strings.Contains(repoURL, "@") {
			parts := strings.Split(repoURL, ":")
			if len(parts) == 2 {
				hostAndUser := strings.Split(parts[0], "@")
				if len(hostAndUser) == 2 {
					host := hostAndUser[1]
					repoPath := strings.TrimSuffix(parts[1], ".git")
					return filepath.Join(baseDir, host, repoPath), nil
				}
			}
		}
		return "", fmt.Errorf("could not parse git URL: %s", repoURL)
	}

	sanitizedPath := strings.TrimSuffix(parsedURL.Path, ".git")
	return filepath.Join(baseDir, parsedURL.Hostname(), sanitizedPath), nil
}
