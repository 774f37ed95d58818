package main

import (
	"bytes"
	"context"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Root command", func() {
	var configHome string

	BeforeEach(func() {
		configHome = GinkgoT().TempDir()
		GinkgoT().Setenv("XDG_CONFIG_HOME", configHome)
		GinkgoT().Setenv("HOME", configHome)
	})

	// run executes one command on a fresh root, like a separate process would.
	run := func(args ...string) (string, error) {
		root := NewRootCommand()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&out)
		root.SetArgs(append(args, "--log-level", "error"))
		err := root.ExecuteContext(context.Background())
		return out.String(), err
	}

	// Given the default configuration
	// When credentials and a collection are saved by one command
	// Then a later command reads them back from the per-user data folder
	It("should keep mutations across runs with default flags", func() {
		// Arrange
		_, err := run("credentials", "set", "--api-key", "ABCDEFGH", "--steam-id", "7656")
		Expect(err).NotTo(HaveOccurred())
		_, err = run("collections", "create", "Speedruns")
		Expect(err).NotTo(HaveOccurred())

		// Act
		shown, showErr := run("credentials", "show")
		listed, listErr := run("collections", "list")

		// Assert
		Expect(showErr).NotTo(HaveOccurred())
		Expect(shown).To(ContainSubstring("7656"))
		Expect(listErr).NotTo(HaveOccurred())
		Expect(listed).To(ContainSubstring("Speedruns (0)"))
		Expect(filepath.Join(configHome, "achievement-tracker", "tracker.duckdb")).To(BeAnExistingFile())
	})

	It("should use an explicit data folder", func() {
		folder := filepath.Join(GinkgoT().TempDir(), "data")

		_, err := run("collections", "create", "Speedruns", "--data-folder", folder)
		Expect(err).NotTo(HaveOccurred())
		listed, err := run("collections", "list", "--data-folder", folder)

		Expect(err).NotTo(HaveOccurred())
		Expect(listed).To(ContainSubstring("Speedruns"))
		Expect(filepath.Join(configHome, "achievement-tracker")).NotTo(BeADirectory())
	})

	It("should forget everything with the memory backend", func() {
		_, err := run("collections", "create", "Speedruns", "--storage-backend", "memory")
		Expect(err).NotTo(HaveOccurred())

		listed, err := run("collections", "list", "--storage-backend", "memory")

		Expect(err).NotTo(HaveOccurred())
		Expect(listed).To(ContainSubstring("no collections"))
	})

	It("should refuse an upstream url pointing at the server itself", func() {
		_, err := run("collections", "list", "--upstream-url", "http://localhost:8000", "--storage-backend", "memory")

		Expect(err).To(MatchError(ContainSubstring("own port")))
	})
})
