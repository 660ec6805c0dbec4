package main

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var home, dir string

	BeforeEach(func() {
		var err error
		home, err = os.UserHomeDir()
		Ω(err).ShouldNot(HaveOccurred())
		dir, err = os.MkdirTemp("", "lispr-config")
		Ω(err).ShouldNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	Describe("LoadConfig", func() {
		It("returns the defaults when the file does not exist", func() {
			cfg, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
			Ω(err).ShouldNot(HaveOccurred())
			Ω(cfg).Should(Equal(DefaultConfig()))
			Ω(cfg.Prompt).Should(Equal("user> "))
			Ω(cfg.HistoryFile).Should(Equal(filepath.Join(home, ".lispr_history")))
		})

		It("reads a YAML file", func() {
			path := filepath.Join(dir, "lispr.yaml")
			src := "prompt: \"λ> \"\nhistory_file: /tmp/hist\npreload:\n  - ~/lib.lisp\n  - /abs/other.lisp\n"
			Ω(os.WriteFile(path, []byte(src), 0o644)).Should(Succeed())

			cfg, err := LoadConfig(path)
			Ω(err).ShouldNot(HaveOccurred())
			Ω(cfg.Prompt).Should(Equal("λ> "))
			Ω(cfg.HistoryFile).Should(Equal("/tmp/hist"))
			Ω(cfg.Preload).Should(Equal([]string{filepath.Join(home, "lib.lisp"), "/abs/other.lisp"}))
		})

		It("fails when the path is a directory", func() {
			_, err := LoadConfig(dir)
			Ω(err).Should(HaveOccurred())
		})
	})

	Describe("parseConfig", func() {
		It("keeps defaults for omitted keys", func() {
			cfg, err := parseConfig([]byte("preload: [a.lisp]\n"))
			Ω(err).ShouldNot(HaveOccurred())
			Ω(cfg.Prompt).Should(Equal(defaultPrompt))
			Ω(cfg.HistoryFile).Should(Equal(filepath.Join(home, ".lispr_history")))
			Ω(cfg.Preload).Should(Equal([]string{"a.lisp"}))
		})

		It("restores the default prompt when it is set empty", func() {
			cfg, err := parseConfig([]byte("prompt: \"\"\n"))
			Ω(err).ShouldNot(HaveOccurred())
			Ω(cfg.Prompt).Should(Equal(defaultPrompt))
		})

		It("rejects malformed YAML", func() {
			_, err := parseConfig([]byte("prompt: [unclosed\n"))
			Ω(err).Should(MatchError(ContainSubstring("config:")))
		})
	})

	Describe("expandHome", func() {
		It("expands a leading tilde", func() {
			Ω(expandHome("~")).Should(Equal(home))
			Ω(expandHome("~/x/y")).Should(Equal(filepath.Join(home, "x", "y")))
		})

		It("leaves other paths alone", func() {
			Ω(expandHome("/a/~/b")).Should(Equal("/a/~/b"))
			Ω(expandHome("~user/x")).Should(Equal("~user/x"))
			Ω(expandHome("rel")).Should(Equal("rel"))
		})
	})
})
