package db_test

import (
	"os"
	"path/filepath"

	"github.com/consolehq/console/core/types"
	"github.com/consolehq/console/db"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Status rows", func() {
	var (
		tmpDir string
		store  *db.Store
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "console_status_test_*")
		Expect(err).ToNot(HaveOccurred())
		store, err = db.Connect("sqlite", filepath.Join(tmpDir, "test.db"))
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	It("defaults to enabled when no row exists", func() {
		status, err := store.GetStatus(types.KindAgent, "agent_x")
		Expect(err).ToNot(HaveOccurred())
		Expect(status).To(Equal(types.StatusEnabled))
	})

	It("prefers the local row over the global one", func() {
		Expect(store.SetStatus(types.KindAgent, "agent_x", types.StatusDisabled, true)).To(Succeed())
		Expect(store.SetStatus(types.KindAgent, "agent_x", types.StatusEnabled, false)).To(Succeed())

		status, err := store.GetStatus(types.KindAgent, "agent_x")
		Expect(err).ToNot(HaveOccurred())
		Expect(status).To(Equal(types.StatusEnabled))
	})

	It("falls back to the global row once the local override is reset", func() {
		Expect(store.SetStatus(types.KindAgent, "agent_x", types.StatusDisabled, true)).To(Succeed())
		Expect(store.SetStatus(types.KindAgent, "agent_x", types.StatusEnabled, false)).To(Succeed())
		Expect(store.ResetStatus(types.KindAgent, "agent_x")).To(Succeed())

		status, err := store.GetStatus(types.KindAgent, "agent_x")
		Expect(err).ToNot(HaveOccurred())
		Expect(status).To(Equal(types.StatusDisabled))
	})

	It("overwrites an existing row in the same scope", func() {
		Expect(store.SetStatus(types.KindMaterial, "material_y", types.StatusDisabled, false)).To(Succeed())
		Expect(store.SetStatus(types.KindMaterial, "material_y", types.StatusEnabled, false)).To(Succeed())

		status, err := store.GetStatus(types.KindMaterial, "material_y")
		Expect(err).ToNot(HaveOccurred())
		Expect(status).To(Equal(types.StatusEnabled))
	})

	It("keys rows by kind as well as id", func() {
		Expect(store.SetStatus(types.KindAgent, "shared_id", types.StatusDisabled, false)).To(Succeed())

		status, err := store.GetStatus(types.KindMaterial, "shared_id")
		Expect(err).ToNot(HaveOccurred())
		Expect(status).To(Equal(types.StatusEnabled))
	})
})
