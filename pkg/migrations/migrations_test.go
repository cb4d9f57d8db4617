package migrations

import (
	"io/fs"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("migration sources", func() {
	It("uses the embedded migrations when no folder is configured", func() {
		fsys, err := migrationFS("")
		Expect(err).To(BeNil())

		entries, err := fs.ReadDir(fsys, ".")
		Expect(err).To(BeNil())
		Expect(entries).NotTo(BeEmpty())
		Expect(entries[0].Name()).To(Equal("00001_initial_schema.sql"))
	})

	It("uses the configured folder", func() {
		dir, err := os.MkdirTemp("", "migrations")
		Expect(err).To(BeNil())
		defer os.RemoveAll(dir)

		Expect(os.WriteFile(filepath.Join(dir, "00002_extra.sql"), []byte("-- +goose Up\n"), 0o600)).To(Succeed())

		fsys, err := migrationFS(dir)
		Expect(err).To(BeNil())

		entries, err := fs.ReadDir(fsys, ".")
		Expect(err).To(BeNil())
		Expect(entries).To(HaveLen(1))
	})

	It("rejects a file passed as folder", func() {
		f, err := os.CreateTemp("", "not-a-folder")
		Expect(err).To(BeNil())
		defer os.Remove(f.Name())
		f.Close()

		_, err = migrationFS(f.Name())
		Expect(err).To(MatchError(ContainSubstring("is not a folder")))
	})
})
