package build

import (
	"flag"
	"strings"
)

var (
	// These flags override values in build env.
	GitCommitFlag = flag.String("git-commit", "", `Overrides git commit hash embedded into executables`)
	GitDateFlag   = flag.String("git-date", "", `Overrides git commit date embedded into executables`)
)

// Environment contains metadata provided by the build environment.
type Environment struct {
	Commit string
	Date   string
}

func (env Environment) String() string {
	return "commit=" + env.Commit + " date=" + env.Date
}

// Env returns metadata about the current build environment.
func Env() *Environment {
	env := &Environment{
		Commit: *GitCommitFlag,
		Date:   *GitDateFlag,
	}
	if env.Commit == "" {
		env.Commit = commitFromGit()
	}
	if env.Date == "" && env.Commit != "" {
		env.Date = RunGit("show", "-s", "--format=%cd", "--date=format:%Y%m%d", env.Commit)
	}
	return env
}

// commitFromGit reads HEAD from the .git directory, following one level
// of symbolic reference, and falls back to asking git.
func commitFromGit() string {
	head := readGitFile("HEAD")
	if strings.HasPrefix(head, "ref: ") {
		head = readGitFile(strings.TrimPrefix(head, "ref: "))
	}
	if len(head) == 40 {
		return head
	}
	return RunGit("rev-parse", "HEAD")
}
