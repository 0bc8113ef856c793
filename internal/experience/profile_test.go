package experience

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWork_PrependsWithNextID(t *testing.T) {
	p := Sample()
	id := p.AddWork(Work{Role: "Director of Product", Company: "Acme"})
	assert.Equal(t, 4, id)

	s := p.Snapshot()
	require.Len(t, s.Work, 4)
	assert.Equal(t, "Director of Product", s.Work[0].Role)
	assert.NotNil(t, s.Work[0].Achievements)
}

func TestAdd_EmptyStartsAtOne(t *testing.T) {
	p := New(Snapshot{})
	assert.Equal(t, 1, p.AddEducation(Education{Degree: "PhD"}))
	assert.Equal(t, 1, p.AddCertification(Certification{Name: "PMP"}))
	assert.Equal(t, 2, p.AddCertification(Certification{Name: "CSM"}))
}

func TestUpdateAndDelete(t *testing.T) {
	p := Sample()

	require.NoError(t, p.UpdateWork(Work{ID: 2, Role: "Group PM", Company: "InnovateSoft"}))
	assert.Equal(t, "Group PM", p.Snapshot().Work[1].Role)
	assert.ErrorIs(t, p.UpdateWork(Work{ID: 99}), ErrNotFound)

	require.NoError(t, p.DeleteWork(1))
	assert.Len(t, p.Snapshot().Work, 2)
	assert.ErrorIs(t, p.DeleteWork(1), ErrNotFound)

	require.NoError(t, p.UpdateEducation(Education{ID: 1, Degree: "MBA"}))
	require.NoError(t, p.DeleteEducation(2))
	assert.Len(t, p.Snapshot().Education, 1)
	assert.ErrorIs(t, p.DeleteEducation(2), ErrNotFound)

	require.NoError(t, p.UpdateCertification(Certification{ID: 3, Name: "SLP"}))
	require.NoError(t, p.DeleteCertification(1))
	assert.ErrorIs(t, p.UpdateCertification(Certification{ID: 1}), ErrNotFound)
}

func TestAddSkill(t *testing.T) {
	p := Sample()

	require.NoError(t, p.AddSkill("Technical", "Go"))
	require.NoError(t, p.AddSkill("Technical", "SQL"))
	s := p.Snapshot()
	assert.Len(t, s.Skills[0].Items, 9)
	assert.Equal(t, "Go", s.Skills[0].Items[8])

	require.NoError(t, p.AddSkill("Languages", "Spanish"))
	s = p.Snapshot()
	require.Len(t, s.Skills, 4)
	assert.Equal(t, SkillGroup{Category: "Languages", Items: []string{"Spanish"}}, s.Skills[3])

	assert.ErrorIs(t, p.AddSkill("", "x"), ErrEmpty)
}

func TestDeleteSkill_RemovesEmptyGroup(t *testing.T) {
	p := Sample()
	require.NoError(t, p.AddSkill("Languages", "Spanish"))
	require.NoError(t, p.DeleteSkill("Languages", "Spanish"))
	assert.Len(t, p.Snapshot().Skills, 3)

	require.NoError(t, p.DeleteSkill("Technical", "Figma"))
	assert.NotContains(t, p.Snapshot().Skills[0].Items, "Figma")

	assert.ErrorIs(t, p.DeleteSkill("Technical", "Figma"), ErrNotFound)
	assert.ErrorIs(t, p.DeleteSkill("Cooking", "Pasta"), ErrNotFound)
}

func TestSnapshot_IsCopy(t *testing.T) {
	p := Sample()
	s := p.Snapshot()
	s.Work[0].Achievements[0] = "changed"
	s.Skills[0].Items[0] = "changed"

	fresh := p.Snapshot()
	assert.NotEqual(t, "changed", fresh.Work[0].Achievements[0])
	assert.Equal(t, "SQL", fresh.Skills[0].Items[0])
}
