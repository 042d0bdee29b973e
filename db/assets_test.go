package db_test

import (
	"os"
	"path/filepath"

	"github.com/consolehq/console/core/types"
	"github.com/consolehq/console/db"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newAgent(name string) *types.Asset {
	return &types.Asset{
		Name:          name,
		Usage:         "helps with " + name,
		UsageExamples: []string{"example one", "example two"},
		DefinedIn:     types.LocationProject,
		DefaultStatus: types.StatusEnabled,
		Kind:          types.KindAgent,
		Agent: &types.AgentSpec{
			System:        "You are " + name,
			GPTMode:       types.GPTModeQuality,
			ExecutionMode: types.DefaultExecutionMode,
		},
	}
}

func newMaterial(name string) *types.Asset {
	return &types.Asset{
		Name:          name,
		DefinedIn:     types.LocationProject,
		DefaultStatus: types.StatusEnabled,
		Kind:          types.KindMaterial,
		Material: &types.MaterialSpec{
			ContentType: types.ContentStaticText,
			Content:     "content of " + name,
		},
	}
}

var _ = Describe("Record store", func() {
	var (
		tmpDir string
		store  *db.Store
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "console_db_test_*")
		Expect(err).ToNot(HaveOccurred())
		store, err = db.Connect("sqlite", filepath.Join(tmpDir, "test.db"))
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tmpDir)
	})

	Describe("SaveAsset", func() {
		It("stamps the initial version and a prefixed id on insert", func() {
			saved, err := store.SaveAsset(newAgent("Helper"), "helper")
			Expect(err).ToNot(HaveOccurred())
			Expect(saved.Version).To(Equal("0.0.1"))
			Expect(saved.ID).To(MatchRegexp(`^agent_[0-9a-f]{8}$`))
		})

		It("bumps the version and keeps the id on update", func() {
			saved, err := store.SaveAsset(newAgent("Helper"), "helper")
			Expect(err).ToNot(HaveOccurred())

			update := newAgent("Helper v2")
			update.ID = "some_other_id"
			updated, err := store.SaveAsset(update, saved.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(updated.ID).To(Equal(saved.ID))
			Expect(updated.Version).To(Equal("0.0.2"))
		})

		It("rejects the reserved user id for agents", func() {
			bad := newAgent("Imposter")
			bad.ID = types.ReservedUserID
			_, err := store.SaveAsset(bad, "whatever")
			Expect(err).To(MatchError(types.ErrReservedAgentID))

			_, err = store.SaveAsset(newAgent("Imposter"), types.ReservedUserID)
			Expect(err).To(MatchError(types.ErrReservedAgentID))
		})

		It("accepts the reserved id for materials", func() {
			m := newMaterial("User notes")
			m.ID = types.ReservedUserID
			_, err := store.SaveAsset(m, "notes")
			Expect(err).ToNot(HaveOccurred())
		})
	})

	Describe("LoadAsset", func() {
		It("returns a not-found error for a missing id", func() {
			_, err := store.LoadAsset(types.KindAgent, "agent_missing", nil)
			Expect(err).To(MatchError(types.ErrAssetNotFound))
		})

		It("rejects the reserved user id on agent reads", func() {
			_, err := store.LoadAsset(types.KindAgent, types.ReservedUserID, nil)
			Expect(err).To(MatchError(types.ErrReservedAgentID))
		})

		It("round-trips an agent and tags the location", func() {
			saved, err := store.SaveAsset(newAgent("Helper"), "helper")
			Expect(err).ToNot(HaveOccurred())

			loaded, err := store.LoadAsset(types.KindAgent, saved.ID, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(loaded.Name).To(Equal("Helper"))
			Expect(loaded.DefinedIn).To(Equal(types.LocationProject))
			Expect(loaded.UsageExamples).To(Equal([]string{"example one", "example two"}))
			Expect(loaded.Agent).ToNot(BeNil())
			Expect(loaded.Agent.System).To(Equal("You are Helper"))
			Expect(loaded.Agent.GPTMode).To(Equal(types.GPTModeQuality))

			system := types.LocationSystem
			tagged, err := store.LoadAsset(types.KindAgent, saved.ID, &system)
			Expect(err).ToNot(HaveOccurred())
			Expect(tagged.DefinedIn).To(Equal(types.LocationSystem))
		})

		It("round-trips a material", func() {
			saved, err := store.SaveAsset(newMaterial("Docs"), "docs")
			Expect(err).ToNot(HaveOccurred())
			Expect(saved.ID).To(HavePrefix("material_"))

			loaded, err := store.LoadAsset(types.KindMaterial, saved.ID, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(loaded.Material).ToNot(BeNil())
			Expect(loaded.Material.Content).To(Equal("content of Docs"))
			Expect(loaded.Material.ContentType).To(Equal(types.ContentStaticText))
		})

		It("defaults the agent execution mode when the column is empty", func() {
			a := newAgent("Plain")
			a.Agent.ExecutionMode = ""
			a.Agent.GPTMode = ""
			saved, err := store.SaveAsset(a, "plain")
			Expect(err).ToNot(HaveOccurred())

			loaded, err := store.LoadAsset(types.KindAgent, saved.ID, nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(loaded.Agent.ExecutionMode).To(Equal(types.DefaultExecutionMode))
		})
	})

	Describe("ListAssets and DeleteAsset", func() {
		It("lists only rows of the requested kind", func() {
			_, err := store.SaveAsset(newAgent("A"), "a")
			Expect(err).ToNot(HaveOccurred())
			_, err = store.SaveAsset(newAgent("B"), "b")
			Expect(err).ToNot(HaveOccurred())
			_, err = store.SaveAsset(newMaterial("M"), "m")
			Expect(err).ToNot(HaveOccurred())

			agents, err := store.ListAssets(types.KindAgent)
			Expect(err).ToNot(HaveOccurred())
			Expect(agents).To(HaveLen(2))

			materials, err := store.ListAssets(types.KindMaterial)
			Expect(err).ToNot(HaveOccurred())
			Expect(materials).To(HaveLen(1))
		})

		It("deletes a row and ignores unknown ids", func() {
			saved, err := store.SaveAsset(newAgent("Gone"), "gone")
			Expect(err).ToNot(HaveOccurred())

			Expect(store.DeleteAsset(saved.ID)).To(Succeed())
			_, err = store.LoadAsset(types.KindAgent, saved.ID, nil)
			Expect(err).To(MatchError(types.ErrAssetNotFound))

			Expect(store.DeleteAsset("agent_never_was")).To(Succeed())
		})
	})
})
