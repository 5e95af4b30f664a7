package git_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/papercomputeco/lineage/pkg/analysis/git"
	"github.com/papercomputeco/lineage/pkg/run"
)

const lsRemote = "a1b2c3\tHEAD\n" +
	"a1b2c3\trefs/heads/main\n" +
	"d4e5f6\trefs/heads/dev\n" +
	"0a0a0a\trefs/pull/1/head\n" +
	"111111\trefs/tags/v1.0.0\n" +
	"222222\trefs/tags/v1.0.0^{}\n" +
	"333333\trefs/tags/v1.1.0\n"

var _ = Describe("ParseLsRemote", func() {
	It("counts branches and tags and reports HEAD", func() {
		payload, err := git.ParseLsRemote([]byte(lsRemote))
		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(Equal(map[string]any{
			"branches": 2,
			"tags":     2,
			"head":     "a1b2c3",
		}))
	})

	It("rejects empty output", func() {
		_, err := git.ParseLsRemote(nil)
		Expect(err).To(HaveOccurred())
	})

	It("rejects garbage", func() {
		_, err := git.ParseLsRemote([]byte("not ls-remote output"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("RemoteURL", func() {
	DescribeTable("resolves targets",
		func(target, expected string) {
			url, err := git.RemoteURL(run.Target(target))
			Expect(err).NotTo(HaveOccurred())
			Expect(url).To(Equal(expected))
		},
		Entry("owner/name", "octo/alpha", "https://github.com/octo/alpha.git"),
		Entry("url", "https://example.com/x.git", "https://example.com/x.git"),
		Entry("absolute path", "/srv/repo.git", "/srv/repo.git"),
		Entry("ssh", "git@example.com:x/y.git", "git@example.com:x/y.git"),
	)

	It("rejects malformed targets", func() {
		_, err := git.RemoteURL("alpha")
		Expect(errors.Is(err, run.ErrMalformedTarget)).To(BeTrue())
	})
})

var _ = Describe("Analyzer", func() {
	// fakeGit writes an executable that prints script output in place of git.
	fakeGit := func(script string) string {
		path := filepath.Join(GinkgoT().TempDir(), "git")
		Expect(os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755)).To(Succeed())
		return path
	}

	It("runs ls-remote against the resolved URL", func() {
		bin := fakeGit(`[ "$1" = "ls-remote" ] || exit 2
[ "$2" = "https://github.com/octo/alpha.git" ] || exit 3
printf 'a1b2c3\tHEAD\na1b2c3\trefs/heads/main\n'
`)
		a := git.New(git.Config{Binary: bin})
		Expect(a.Name()).To(Equal("git"))

		payload, err := a.Analyze(context.Background(), "octo/alpha")
		Expect(err).NotTo(HaveOccurred())
		Expect(payload).To(HaveKeyWithValue("head", "a1b2c3"))
		Expect(payload).To(HaveKeyWithValue("branches", 1))
	})

	It("surfaces git failures with stderr", func() {
		bin := fakeGit("echo 'repository not found' >&2\nexit 128\n")
		_, err := git.New(git.Config{Binary: bin}).Analyze(context.Background(), "octo/alpha")
		Expect(err).To(MatchError(ContainSubstring("repository not found")))
	})
})
