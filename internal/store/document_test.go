package store_test

import (
	"context"

	"github.com/google/uuid"
	st "github.com/hireloop/identity/internal/store"
	"github.com/hireloop/identity/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("document store", Ordered, func() {
	var (
		store  st.Store
		gormDB *gorm.DB
	)

	newDocument := func(accountID uuid.UUID, docType string) model.Document {
		id := uuid.New()
		return model.Document{
			ID:           id,
			AccountID:    accountID,
			DocumentType: docType,
			FileName:     "cv.pdf",
			ContentType:  "application/pdf",
			Size:         42,
			ObjectKey:    model.ObjectKeyFor("user", id, "cv.pdf"),
		}
	}

	BeforeAll(func() {
		store, gormDB = newTestStore()
	})

	AfterAll(func() {
		store.Close()
	})

	AfterEach(func() {
		gormDB.Exec("DELETE FROM documents;")
	})

	It("creates and gets a document", func() {
		doc := newDocument(uuid.New(), model.DocumentTypeResume)
		_, err := store.Document().Create(context.TODO(), doc)
		Expect(err).To(BeNil())

		got, err := store.Document().Get(context.TODO(), doc.ID)
		Expect(err).To(BeNil())
		Expect(got.ObjectKey).To(Equal("user/" + doc.ID.String() + "/cv.pdf"))
		Expect(got.Size).To(Equal(int64(42)))
	})

	It("lists documents filtered by account and type", func() {
		owner := uuid.New()
		for _, doc := range []model.Document{
			newDocument(owner, model.DocumentTypeResume),
			newDocument(owner, "cover_letter"),
			newDocument(uuid.New(), model.DocumentTypeResume),
		} {
			_, err := store.Document().Create(context.TODO(), doc)
			Expect(err).To(BeNil())
		}

		docs, err := store.Document().List(context.TODO(), st.NewDocumentQueryFilter().ByAccountID(owner))
		Expect(err).To(BeNil())
		Expect(docs).To(HaveLen(2))

		docs, err = store.Document().List(context.TODO(), st.NewDocumentQueryFilter().ByAccountID(owner).ByType(model.DocumentTypeResume))
		Expect(err).To(BeNil())
		Expect(docs).To(HaveLen(1))
	})

	It("deletes a document and ignores unknown ids", func() {
		doc := newDocument(uuid.New(), model.DocumentTypeResume)
		_, err := store.Document().Create(context.TODO(), doc)
		Expect(err).To(BeNil())

		Expect(store.Document().Delete(context.TODO(), doc.ID)).To(Succeed())
		Expect(store.Document().Delete(context.TODO(), uuid.New())).To(Succeed())

		_, err = store.Document().Get(context.TODO(), doc.ID)
		Expect(err).To(MatchError(st.ErrRecordNotFound))
	})
})
