package db_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/consolehq/console/core/types"
	"github.com/consolehq/console/db"
	models "github.com/consolehq/console/dbmodels"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Chat rows", func() {
	var (
		tmpDir string
		store  *db.Store
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "console_chats_test_*")
		Expect(err).ToNot(HaveOccurred())
		store, err = db.Connect("sqlite", filepath.Join(tmpDir, "test.db"))
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	It("returns a not-found error for a missing chat", func() {
		_, err := store.FetchChat("chat-missing")
		Expect(err).To(MatchError(types.ErrChatNotFound))
	})

	It("inserts and then updates the same row", func() {
		row := &models.Chat{
			ID:           "chat-1",
			Name:         "First",
			LastModified: time.Now().UTC(),
			ChatData:     `{"id":"chat-1"}`,
		}
		Expect(store.UpsertChat(row)).To(Succeed())

		row.Name = "Renamed"
		Expect(store.UpsertChat(row)).To(Succeed())

		fetched, err := store.FetchChat("chat-1")
		Expect(err).ToNot(HaveOccurred())
		Expect(fetched.Name).To(Equal("Renamed"))

		listed, err := store.ListChats()
		Expect(err).ToNot(HaveOccurred())
		Expect(listed).To(HaveLen(1))
	})

	It("lists rows without loading transcript bodies", func() {
		Expect(store.UpsertChat(&models.Chat{
			ID: "chat-a", Name: "A", LastModified: time.Now().UTC(), ChatData: `{"id":"chat-a"}`,
		})).To(Succeed())

		listed, err := store.ListChats()
		Expect(err).ToNot(HaveOccurred())
		Expect(listed).To(HaveLen(1))
		Expect(listed[0].ChatData).To(BeEmpty())
	})

	It("deletes a row and ignores unknown ids", func() {
		Expect(store.UpsertChat(&models.Chat{
			ID: "chat-gone", Name: "Gone", LastModified: time.Now().UTC(), ChatData: `{}`,
		})).To(Succeed())

		Expect(store.DeleteChat("chat-gone")).To(Succeed())
		_, err := store.FetchChat("chat-gone")
		Expect(err).To(MatchError(types.ErrChatNotFound))

		Expect(store.DeleteChat("chat-never-was")).To(Succeed())
	})
})
