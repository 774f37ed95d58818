package store_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/achievement-tracker/internal/models"
	"github.com/tupyy/achievement-tracker/internal/store"
	srvErrors "github.com/tupyy/achievement-tracker/pkg/errors"
)

var _ = Describe("CollectionStore", func() {
	var (
		ctx context.Context
		kv  *store.MemoryKV
		s   *store.Store
	)

	BeforeEach(func() {
		ctx = context.Background()
		kv = store.NewMemoryKV()
		s = store.NewStore(kv)
	})

	It("should return an empty list when nothing is persisted", func() {
		collections, err := s.Collections().List(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(collections).NotTo(BeNil())
		Expect(collections).To(BeEmpty())
	})

	// Given saved collections
	// When we list them
	// Then order and entries are preserved
	It("should preserve collection order and entries", func() {
		// Arrange
		saved := []models.Collection{
			{Name: "Speedruns", Entries: []models.CollectionEntry{{AppID: 10, APIName: "a1", DisplayName: "A"}}},
			{Name: "Later", Entries: []models.CollectionEntry{}},
		}
		Expect(s.Collections().Save(ctx, saved)).To(Succeed())

		// Act
		collections, err := s.Collections().List(ctx)

		// Assert
		Expect(err).NotTo(HaveOccurred())
		Expect(collections).To(Equal(saved))
	})

	It("should default missing entries to an empty list", func() {
		Expect(kv.Set(ctx, "collections", []byte(`[{"name":"Old"}]`))).To(Succeed())

		collections, err := s.Collections().List(ctx)

		Expect(err).NotTo(HaveOccurred())
		Expect(collections).To(HaveLen(1))
		Expect(collections[0].Entries).To(Equal([]models.CollectionEntry{}))
	})

	It("should report corrupt collections", func() {
		Expect(kv.Set(ctx, "collections", []byte("nope"))).To(Succeed())

		_, err := s.Collections().List(ctx)

		Expect(srvErrors.IsCacheCorruptError(err)).To(BeTrue())
	})
})
