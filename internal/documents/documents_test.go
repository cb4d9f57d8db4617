package documents_test

import (
	"bytes"
	"context"
	"strings"

	"github.com/hireloop/identity/internal/documents"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("documents", func() {
	Context("validation", func() {
		DescribeTable("accepts resumes",
			func(fileName, contentType string) {
				Expect(documents.Validate(fileName, contentType, 1024)).To(Succeed())
			},
			Entry("pdf", "cv.pdf", "application/pdf"),
			Entry("doc by extension", "cv.DOC", ""),
			Entry("docx with generic type", "cv.docx", "application/octet-stream"),
			Entry("pdf with parameters", "cv", "application/pdf; charset=binary"),
		)

		It("rejects other types", func() {
			Expect(documents.Validate("cv.png", "image/png", 10)).To(MatchError(documents.ErrUnsupportedType))
			Expect(documents.Validate("cv.txt", "", 10)).To(MatchError(documents.ErrUnsupportedType))
		})

		It("enforces the size limit", func() {
			Expect(documents.Validate("cv.pdf", "", documents.MaxSize)).To(Succeed())
			Expect(documents.Validate("cv.pdf", "", documents.MaxSize+1)).To(MatchError(documents.ErrTooLarge))
			Expect(documents.Validate("cv.pdf", "", 0)).To(MatchError(documents.ErrEmpty))
		})
	})

	Context("memory store", func() {
		It("stores, reads and deletes objects", func() {
			store := documents.NewMemoryStore()
			Expect(store.Put(context.TODO(), "u/1/cv.pdf", strings.NewReader("pdf"), 3, documents.ContentTypePDF)).To(Succeed())
			Expect(store.Len()).To(Equal(1))

			var buf bytes.Buffer
			Expect(store.Get(context.TODO(), "u/1/cv.pdf", &buf)).To(Succeed())
			Expect(buf.String()).To(Equal("pdf"))

			Expect(store.Delete(context.TODO(), "u/1/cv.pdf")).To(Succeed())
			Expect(store.Get(context.TODO(), "u/1/cv.pdf", &buf)).To(MatchError(documents.ErrObjectNotFound))
		})
	})
})
