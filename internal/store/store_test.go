package store_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/hireloop/identity/internal/config"
	st "github.com/hireloop/identity/internal/store"
	"github.com/hireloop/identity/internal/store/model"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

func newTestStore() (st.Store, *gorm.DB) {
	db, err := st.InitDB(config.NewDefault())
	Expect(err).To(BeNil())

	store := st.NewStore(db)
	Expect(store.InitialMigration()).To(Succeed())
	return store, db
}

var _ = Describe("Store", Ordered, func() {
	var (
		store  st.Store
		gormDB *gorm.DB
	)

	BeforeAll(func() {
		store, gormDB = newTestStore()
	})

	AfterAll(func() {
		store.Close()
	})

	AfterEach(func() {
		gormDB.Exec("DELETE FROM accounts;")
	})

	Context("transaction", func() {
		It("commits an account", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			account, err := store.Account().Create(ctx, model.NewAccount("user-tx-1", "tx@example.com", "Ada", "Lovelace"))
			Expect(err).To(BeNil())

			_, err = st.Commit(ctx)
			Expect(err).To(BeNil())

			var count int64
			tx := gormDB.Raw("SELECT COUNT(*) FROM accounts WHERE id = ?", account.ID).Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(int64(1)))
		})

		It("rolls back an account", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			account, err := store.Account().Create(ctx, model.NewAccount("user-tx-2", "tx@example.com", "Ada", "Lovelace"))
			Expect(err).To(BeNil())

			_, err = st.Rollback(ctx)
			Expect(err).To(BeNil())

			var count int64
			tx := gormDB.Raw("SELECT COUNT(*) FROM accounts WHERE id = ?", account.ID).Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(BeZero())
		})

		It("reuses the transaction already in the context", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			nested, err := store.NewTransactionContext(ctx)
			Expect(err).To(BeNil())
			Expect(st.FromContext(nested)).To(BeIdenticalTo(st.FromContext(ctx)))

			_, err = st.Rollback(ctx)
			Expect(err).To(BeNil())
		})
	})

	Context("account", func() {
		It("gets an account by external id", func() {
			created, err := store.Account().Create(context.TODO(), model.NewAccount("user-1", "user1@example.com", "Grace", "Hopper"))
			Expect(err).To(BeNil())

			account, err := store.Account().GetByExternalID(context.TODO(), "user-1")
			Expect(err).To(BeNil())
			Expect(account.ID).To(Equal(created.ID))
			Expect(account.Role).To(Equal(model.RoleCandidate))
			Expect(account.OnboardingStatus).To(Equal("pending"))
		})

		It("returns ErrRecordNotFound for unknown accounts", func() {
			_, err := store.Account().Get(context.TODO(), uuid.New())
			Expect(err).To(MatchError(st.ErrRecordNotFound))

			_, err = store.Account().GetByExternalID(context.TODO(), "missing")
			Expect(err).To(MatchError(st.ErrRecordNotFound))
		})

		It("rejects a second account for the same external id", func() {
			_, err := store.Account().Create(context.TODO(), model.NewAccount("user-dup", "", "", ""))
			Expect(err).To(BeNil())

			_, err = store.Account().Create(context.TODO(), model.NewAccount("user-dup", "", "", ""))
			Expect(err).To(MatchError(st.ErrDuplicateKey))
		})

		It("updates only the selected fields", func() {
			created, err := store.Account().Create(context.TODO(), model.NewAccount("user-2", "user2@example.com", "Alan", "Turing"))
			Expect(err).To(BeNil())

			update := model.Account{
				ID:                 created.ID,
				Email:              "ignored@example.com",
				OnboardingStatus:   "in_progress",
				OnboardingMetadata: []byte(`{"current_step":2}`),
			}
			account, err := store.Account().Update(context.TODO(), update, "onboarding_status", "onboarding_metadata")
			Expect(err).To(BeNil())
			Expect(account.OnboardingStatus).To(Equal("in_progress"))
			Expect(string(account.OnboardingMetadata)).To(MatchJSON(`{"current_step":2}`))
			Expect(account.Email).To(Equal("user2@example.com"))
			Expect(account.UpdatedAt).NotTo(BeNil())
		})
	})
})
