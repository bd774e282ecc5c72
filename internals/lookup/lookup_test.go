package lookup

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	profileModel "deeco_backend/internals/features/users/profiles/model"
)

func profile(name string) profileModel.ProfileModel {
	return profileModel.ProfileModel{ID: uuid.New(), FirstName: &name}
}

func TestResolve(t *testing.T) {
	id := uuid.New()
	names := map[uuid.UUID]string{id: "Asha Rao"}

	assert.Equal(t, "Asha Rao", ResolveID(names, id))
	assert.Equal(t, MissingName, ResolveID(names, uuid.New()))

	assert.Equal(t, "Asha Rao", Resolve(names, &id))
	assert.Equal(t, MissingName, Resolve(names, nil))
	nilID := uuid.Nil
	assert.Equal(t, MissingName, Resolve(names, &nilID))
}

func TestEligibleProfiles(t *testing.T) {
	a := profile("Asha")
	b := profile("Bilal")
	c := profile("Chitra")
	all := []profileModel.ProfileModel{a, b, c}

	// duplicates and nil ids in the enrollment list are harmless
	enrolled := []uuid.UUID{c.ID, a.ID, a.ID, uuid.Nil}

	got := EligibleProfiles(all, enrolled)
	require.Len(t, got, 2)
	// the profiles' own order wins, not the enrollment order
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, c.ID, got[1].ID)
}

func TestEligibleProfilesEmpty(t *testing.T) {
	all := []profileModel.ProfileModel{profile("Asha")}
	assert.Empty(t, EligibleProfiles(all, nil))
	assert.Empty(t, EligibleProfiles(nil, []uuid.UUID{uuid.New()}))
}
