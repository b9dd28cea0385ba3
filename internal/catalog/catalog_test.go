package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentoraqua/guardianes-api/internal/models"
)

func TestBaseModulesOrderedAndStable(t *testing.T) {
	modules := BaseModules()
	require.Equal(t, BaseModuleCount(), len(modules))

	for i := 1; i < len(modules); i++ {
		assert.Greater(t, modules[i].ID, modules[i-1].ID)
	}
	for _, module := range modules {
		assert.True(t, IsBaseModuleID(module.ID))
		assert.NotEmpty(t, module.Title)
		assert.NotEmpty(t, module.Fields)
	}
	assert.False(t, IsBaseModuleID(110))
	assert.False(t, IsBaseModuleID(0))
}

func TestModulesForUnknownProjectFailsClosed(t *testing.T) {
	assert.Len(t, ModulesFor(""), BaseModuleCount())
	assert.Len(t, ModulesFor("no-such-project"), BaseModuleCount())
}

func TestModulesForAppendsExtensionTrack(t *testing.T) {
	for _, project := range Projects() {
		modules := ModulesFor(project.ID)
		require.Greater(t, len(modules), BaseModuleCount(), project.ID)

		for _, module := range modules[BaseModuleCount():] {
			assert.False(t, IsBaseModuleID(module.ID), "extension module %d reuses a base ID", module.ID)
			assert.GreaterOrEqual(t, module.ID, 100)
		}
	}
}

func TestExtensionIDRangesAreDisjoint(t *testing.T) {
	seen := map[int]string{}
	for _, project := range Projects() {
		for _, module := range project.Modules {
			owner, dup := seen[module.ID]
			require.False(t, dup, "module ID %d used by %s and %s", module.ID, owner, project.ID)
			seen[module.ID] = project.ID
		}
	}
}

func TestProjectByID(t *testing.T) {
	project, ok := ProjectByID("project1")
	require.True(t, ok)
	assert.Equal(t, "Enfermedades relacionadas con el agua", project.Title)

	_, ok = ProjectByID("project9")
	assert.False(t, ok)
}

func TestCatalogFieldTypesAreKnown(t *testing.T) {
	known := map[models.FieldType]bool{
		models.FieldTypeHeader:   true,
		models.FieldTypeInfo:     true,
		models.FieldTypeText:     true,
		models.FieldTypeTextarea: true,
		models.FieldTypeSelect:   true,
		models.FieldTypeRadio:    true,
		models.FieldTypeCheckbox: true,
		models.FieldTypeFile:     true,
	}
	check := func(modules []models.ModuleDefinition) {
		for _, module := range modules {
			for _, field := range module.Fields {
				assert.True(t, known[field.Type], "module %d field %s has unknown type %q", module.ID, field.ID, field.Type)
				assert.NotEmpty(t, field.ID)
			}
		}
	}
	check(BaseModules())
	for _, project := range Projects() {
		check(project.Modules)
	}
}
